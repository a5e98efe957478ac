package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playhead/internal/repositories"
	"github.com/desertthunder/playhead/internal/shared"
	"github.com/desertthunder/playhead/internal/tasks"
	"github.com/desertthunder/playhead/internal/ui"
	"github.com/urfave/cli/v3"
)

// ExportPlaylists renders every playlist owned by a user to files on disk.
func (r *Runner) ExportPlaylists(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	email := cmd.String("owner")
	if email == "" {
		return fmt.Errorf("%w: --owner email required", shared.ErrMissingArgument)
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	users := repositories.NewUserRepository(db)
	user, err := users.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to resolve owner %q: %w", email, err)
	}

	engine := tasks.NewExportEngine(repositories.NewPlaylistRepository(db))

	progress := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase.String(), "step", update.Step, "total", update.Total)
		}
	}()

	result, err := engine.Export(ctx, progress, user.ID(), tasks.ExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: cmd.Int("workers"),
	})
	close(progress)
	<-done

	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlainln("%s", ui.Title("Export complete"))
	r.writePlainln("%s", ui.OK(fmt.Sprintf("%d/%d playlists exported to %s",
		result.SuccessfulExports, result.TotalPlaylists, result.OutputDirectory)))
	if result.FailedExports > 0 {
		r.writePlainln("%s", ui.Err(fmt.Sprintf("%d failed", result.FailedExports)))
	}

	return nil
}
