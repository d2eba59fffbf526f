// Package config loads editor configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full editor configuration. Key bindings are fixed and
// deliberately not configurable.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Editor  EditorConfig  `toml:"editor"`
}

// LoggingConfig configures diagnostic logging. While the editor owns the
// terminal, stderr is not usable; logging is disabled unless a file is
// given.
type LoggingConfig struct {
	// Level is the minimum level to record: debug, info, warn, error.
	Level string `toml:"level"`
	// File is the log destination. Empty disables logging.
	File string `toml:"file"`
}

// EditorConfig configures editing behavior.
type EditorConfig struct {
	// Backup copies the previous file content to <path>~ on first save.
	Backup bool `toml:"backup"`
	// WatchFile surfaces a header notice when the open file changes on
	// disk.
	WatchFile bool `toml:"watch_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Editor:  EditorConfig{WatchFile: true},
	}
}

// DefaultPath returns the conventional config location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "keylite", "config.toml")
}

// Load reads configuration from path, applying defaults for anything not
// set. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
