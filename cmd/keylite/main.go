// Package main is the entry point for the keylite editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keylite/internal/editor"
	"github.com/dshills/keylite/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	// The file argument is validated before any terminal state is touched.
	if opts.Path == "" {
		fmt.Println("no file specified")
		return 1
	}

	ed, err := editor.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer ed.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	// SIGTERM quits cleanly through the event queue; unsaved changes are
	// dropped, matching Ctrl-Q.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM)
	go func() {
		<-signals
		term.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlQ})
	}()

	if err := ed.Run(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() editor.Options {
	var opts editor.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keylite - minimal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keylite [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("keylite %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file argument")
		os.Exit(1)
	}
	if flag.NArg() == 1 {
		opts.Path = flag.Arg(0)
	}

	return opts
}
