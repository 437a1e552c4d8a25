package keepnote

import (
	"context"
	"flag"
	"fmt"
)

// Main is the entry point for the keepnote binary: load config, dial
// the store, run the server until ctx is cancelled. Callable directly
// from tests without building the binary.
func Main(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("keepnote", flag.ContinueOnError)
	port := fs.String("port", "", "listen port (overrides PORT)")
	logPath := fs.String("log", "", "log file path (overrides LOG_PATH)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if *port != "" {
		config.ServerPort = *port
	}
	if *logPath != "" {
		config.LogPath = *logPath
	}

	app, err := New(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
