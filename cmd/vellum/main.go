// Package main is the entry point for the vellum editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vellum-editor/vellum/internal/app"
	"github.com/vellum-editor/vellum/internal/logger"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options
	var logLevel string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vellum - a multi-cursor terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vellum [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("vellum %s\n", version)
		return 0
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one file may be opened")
		return 1
	}
	if flag.NArg() == 1 {
		opts.Path = flag.Arg(0)
	}
	if logLevel == "" {
		logLevel = "info"
	}

	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	a, err := app.New(opts, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
