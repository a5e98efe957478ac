package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playhead/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve assembles the application and runs the HTTP server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	if port := cmd.Int("port"); port != 0 {
		config.Server.Port = port
	}
	if !config.Production() {
		r.logger.SetLevel(log.DebugLevel)
	}

	srv, err := server.New(config, r.logger)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
