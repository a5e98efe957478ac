// package tasks implements bulk playlist export operations.
//
// The core abstraction is ExportEngine, which renders a user's playlists to
// files on disk. Operations emit progress updates via channels for
// non-blocking status reporting to the CLI layer.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/playhead/internal/formatter"
	"github.com/desertthunder/playhead/internal/models"
	"github.com/desertthunder/playhead/internal/repositories"
	"github.com/desertthunder/playhead/internal/shared"
	"golang.org/x/time/rate"
)

// ExportOpts contains configuration for bulk playlist exports.
type ExportOpts struct {
	Format     string  // Export format: json, csv, markdown, txt
	OutputDir  string  // Base output directory (default: playlist_export_{epoch})
	NumWorkers int     // Concurrent workers (default: 5)
	RateLimit  float64 // Playlists rendered per second (default: 5)
}

// PlaylistExportResult records the outcome for a single playlist.
type PlaylistExportResult struct {
	PlaylistID   string `json:"playlist_id"`
	PlaylistName string `json:"playlist_name"`
	File         string `json:"file,omitempty"`
	Success      bool   `json:"success"`
	Error        error  `json:"-"`
	ErrorMessage string `json:"error,omitempty"`
}

// ExportResult summarizes a bulk export run.
type ExportResult struct {
	TotalPlaylists    int                    `json:"total_playlists"`
	SuccessfulExports int                    `json:"successful_exports"`
	FailedExports     int                    `json:"failed_exports"`
	OutputDirectory   string                 `json:"output_directory"`
	Results           []PlaylistExportResult `json:"results"`
}

type exportJob struct {
	step     int
	playlist *models.Playlist
}

// ExportEngine renders playlists from the repository to files on disk.
type ExportEngine struct {
	playlists *repositories.PlaylistRepository
}

// NewExportEngine creates an ExportEngine backed by the given repository.
func NewExportEngine(playlists *repositories.PlaylistRepository) *ExportEngine {
	return &ExportEngine{playlists: playlists}
}

// Export renders every playlist owned by ownerID concurrently, with rate
// limiting and progress tracking, and writes a manifest file summarizing the
// run. Partial failures are recorded per playlist, not returned as errors.
func (e *ExportEngine) Export(ctx context.Context, prog chan<- ProgressUpdate, ownerID string, opts ExportOpts) (*ExportResult, error) {
	if e.playlists == nil {
		return nil, fmt.Errorf("%w: playlist repository not initialized", shared.ErrServiceUnavailable)
	}
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id required", shared.ErrMissingArgument)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("playlist_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	playlists, err := e.playlists.List(map[string]any{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	e.sendProgress(prog, listingUpdate(len(playlists)))

	result := &ExportResult{
		TotalPlaylists:  len(playlists),
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, len(playlists)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan exportJob, len(playlists))
	results := make(chan PlaylistExportResult, len(playlists))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(&wg, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, playlist := range playlists {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				return
			}

			e.sendProgress(prog, exportingUpdate(i+1, len(playlists), playlist.Name()))
			jobs <- exportJob{step: i + 1, playlist: playlist}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(playlists), res.PlaylistName))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(playlists), res.PlaylistName, res.Error))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := e.writeManifest(manifestPath, result); err != nil {
		return result, fmt.Errorf("failed to write manifest: %w", err)
	}
	e.sendProgress(prog, manifestUpdate(manifestPath))

	return result, nil
}

// exportWorker renders queued playlists to files until the job channel closes.
func (e *ExportEngine) exportWorker(wg *sync.WaitGroup, jobs <-chan exportJob, results chan<- PlaylistExportResult, opts ExportOpts) {
	defer wg.Done()

	for job := range jobs {
		results <- e.exportOne(job.playlist, opts)
	}
}

func (e *ExportEngine) exportOne(playlist *models.Playlist, opts ExportOpts) PlaylistExportResult {
	res := PlaylistExportResult{
		PlaylistID:   playlist.ID(),
		PlaylistName: playlist.Name(),
	}

	data, ext, err := formatter.Export(playlist, opts.Format)
	if err != nil {
		res.Error = err
		res.ErrorMessage = err.Error()
		return res
	}

	filename := fmt.Sprintf("%s_%s.%s", sanitizeFilename(playlist.Name()), playlist.ID()[:8], ext)
	path := filepath.Join(opts.OutputDir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		res.Error = fmt.Errorf("failed to write file: %w", err)
		res.ErrorMessage = res.Error.Error()
		return res
	}

	res.File = filename
	res.Success = true
	return res
}

func (e *ExportEngine) writeManifest(path string, result *ExportResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// sendProgress delivers an update without blocking when no listener is attached.
func (e *ExportEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}

// sanitizeFilename replaces path-hostile characters so playlist names can be
// used as file names.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
		" ", "_",
	)
	sanitized := replacer.Replace(strings.TrimSpace(name))
	if sanitized == "" {
		return "playlist"
	}
	return sanitized
}
