// Package main is the entry point for the markpane terminal demo: a
// split-pane markdown editor with a live rendered preview.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/markpane/markpane/internal/editor"
	"github.com/markpane/markpane/internal/tui"
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
	opts, logFile := parseFlags()
	if logFile != nil {
		defer logFile.Close()
	}

	app, err := tui.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (tui.Options, *os.File) {
	var opts tui.Options
	var logPath string
	var logLevel string
	var showVersion bool

	flag.StringVar(&opts.UploadsDir, "uploads", "", "Directory for pasted file uploads (disabled when empty)")
	flag.BoolVar(&opts.UnsafeHTML, "unsafe-html", false, "Pass raw HTML through the renderer")
	flag.StringVar(&logPath, "log", "", "Write diagnostics to this file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "markpane - split-pane markdown editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: markpane [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  ctrl+b/i/k     bold, italic, link\n")
		fmt.Fprintf(os.Stderr, "  ctrl+e/r       toggle editor / preview pane\n")
		fmt.Fprintf(os.Stderr, "  ctrl+f         fullscreen\n")
		fmt.Fprintf(os.Stderr, "  ctrl+s/q       save, quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("markpane %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.File = args[0]
	}

	var logFile *os.File
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			os.Exit(1)
		}
		logFile = f
		opts.Logger = editor.NewLogger(f, parseLogLevel(logLevel))
	}

	return opts, logFile
}

func parseLogLevel(s string) editor.LogLevel {
	switch s {
	case "debug":
		return editor.LogLevelDebug
	case "warn":
		return editor.LogLevelWarn
	case "error":
		return editor.LogLevelError
	default:
		return editor.LogLevelInfo
	}
}
