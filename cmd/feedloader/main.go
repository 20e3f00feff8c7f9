// ABOUTME: Main entry point for the feed loader command line tool
// ABOUTME: Wires configuration, logging and metrics into the load and watch commands

package main

import (
	"fmt"
	"os"

	"feedloader/infrastructure/logger/structured"
	"feedloader/pkg/config"
	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
)

// CLI is the command line grammar
type CLI struct {
	Globals

	Load  LoadCmd  `cmd:"" help:"Load feeds once and print their items as JSON."`
	Watch WatchCmd `cmd:"" help:"Reload a feed on the refresh interval until interrupted."`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("feedloader"),
		kong.Description("Load image feeds over HTTP."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	logger, err := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	err = ctx.Run(&runtime{
		cfg:      cfg,
		logger:   logger,
		out:      os.Stdout,
		registry: prometheus.NewRegistry(),
	})
	ctx.FatalIfErrorf(err)
}
