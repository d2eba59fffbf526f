package editor

// Options configures an Editor at startup.
type Options struct {
	// Path is the file to edit. Required.
	Path string
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}
