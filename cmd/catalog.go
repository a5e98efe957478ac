package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/desertthunder/playhead/internal/cache"
	"github.com/desertthunder/playhead/internal/models"
	"github.com/desertthunder/playhead/internal/services"
	"github.com/desertthunder/playhead/internal/shared"
	"github.com/desertthunder/playhead/internal/ui"
	"github.com/urfave/cli/v3"
)

// lookup builds a cache-backed catalog client from the effective config.
func (r *Runner) lookup(config *shared.Config) (*services.Lookup, cache.Store, error) {
	if config.Catalog.ProxyURL == "" {
		return nil, nil, fmt.Errorf("%w: catalog proxy_url not configured", shared.ErrMissingConfig)
	}

	store := cache.Open(config.Cache.Path, r.logger)
	catalog := services.NewYTMusicCatalog(config.Catalog.ProxyURL, config.Catalog.Region, r.httpClient)

	return services.NewLookup(catalog, store, r.logger), store, nil
}

// Search queries the catalog and prints matching tracks.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	lookup, store, err := r.lookup(config)
	if err != nil {
		return err
	}
	defer store.Close()

	payload, err := lookup.Search(ctx, cmd.StringArg("query"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		var data any
		if err := json.Unmarshal(payload, &data); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return r.writeJSON(data, cmd.Bool("pretty"))
	}

	var result models.SearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	r.writePlainln("%s", ui.Title(fmt.Sprintf("Results for %q", cmd.StringArg("query"))))
	if len(result.Items) == 0 {
		return r.writePlainln("%s", ui.Warn("No tracks found"))
	}

	for i, track := range result.Items {
		line := fmt.Sprintf("%2d. %s - %s", i+1, track.Artists, ui.OK(track.Title))
		if track.Duration != "" {
			line += " " + ui.Help("["+track.Duration+"]")
		}
		r.writePlainln("%s", line)
	}

	return nil
}

// Track fetches a track's details and related tracks.
func (r *Runner) Track(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	lookup, store, err := r.lookup(config)
	if err != nil {
		return err
	}
	defer store.Close()

	payload, err := lookup.TrackDetail(ctx, cmd.StringArg("videoId"))
	if err != nil {
		return fmt.Errorf("track lookup failed: %w", err)
	}

	if cmd.Bool("json") {
		var data any
		if err := json.Unmarshal(payload, &data); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return r.writeJSON(data, cmd.Bool("pretty"))
	}

	var page models.TrackPage
	if err := json.Unmarshal(payload, &page); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	r.writePlainln("%s", ui.Title(page.Details.Title))
	r.writePlainln("Author: %s", page.Details.Author)
	if page.Details.PublishDate != "" {
		r.writePlainln("Published: %s", page.Details.PublishDate)
	}
	if page.Details.ViewCount != "" {
		r.writePlainln("Views: %s", page.Details.ViewCount)
	}

	if len(page.Related) > 0 {
		r.writePlainln("\n%s", ui.Title("Related"))
		for i, track := range page.Related {
			r.writePlainln("%2d. %s - %s", i+1, track.Artists, ui.OK(track.Title))
		}
	}

	return nil
}
