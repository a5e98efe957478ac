package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playhead/internal/cache"
	"github.com/desertthunder/playhead/internal/models"
	"github.com/desertthunder/playhead/internal/shared"
)

const (
	// SearchLimit caps song results per search.
	SearchLimit = 36
	// RelatedLimit caps related tracks per track lookup.
	RelatedLimit = 40

	searchTTL = 300 * time.Second
	trackTTL  = 600 * time.Second
)

// Lookup fronts the catalog provider with the response cache.
//
// Both operations follow the same template: normalize the key, consult the
// cache, call the provider on a miss, normalize the result, populate the
// cache, respond. Cache hits return the stored payload verbatim.
type Lookup struct {
	catalog Catalog
	store   cache.Store
	logger  *log.Logger
}

// NewLookup creates a Lookup with injected provider and cache.
//
// A nil catalog is tolerated at construction; operations then fail with
// [shared.ErrServiceUnavailable] (mirrors a provider that failed to
// initialize at startup). A nil store degrades to the null cache.
func NewLookup(catalog Catalog, store cache.Store, logger *log.Logger) *Lookup {
	if store == nil {
		store = cache.NewNullStore()
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Lookup{catalog: catalog, store: store, logger: logger}
}

// Search returns normalized song results for the query.
//
// The query is trimmed and case-folded to form the cache key only; the
// provider receives the trimmed query as typed. An empty trimmed query is a
// validation error. Results are cached for five minutes.
func (l *Lookup) Search(ctx context.Context, query string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: q required", shared.ErrValidation)
	}

	key := "search:" + strings.ToLower(trimmed)

	return l.through(ctx, key, searchTTL, func(ctx context.Context) (any, error) {
		raw, err := l.catalog.Search(ctx, trimmed, SearchLimit)
		if err != nil {
			return nil, err
		}
		return models.SearchResult{Items: NormalizeTracks(raw, 0)}, nil
	})
}

// TrackDetail returns the normalized detail and related tracks for a video id.
//
// The combined payload is cached for ten minutes under track:<id>.
func (l *Lookup) TrackDetail(ctx context.Context, videoID string) (json.RawMessage, error) {
	if videoID == "" {
		return nil, fmt.Errorf("%w: video id required", shared.ErrValidation)
	}

	key := "track:" + videoID

	return l.through(ctx, key, trackTTL, func(ctx context.Context) (any, error) {
		song, err := l.catalog.GetTrack(ctx, videoID)
		if err != nil {
			return nil, err
		}

		related, err := l.catalog.WatchPlaylist(ctx, videoID, RelatedLimit)
		if err != nil {
			return nil, err
		}

		return models.TrackPage{
			Details: NormalizeDetail(song),
			Related: NormalizeTracks(related, RelatedLimit),
		}, nil
	})
}

// through runs the cached-fetch template for a single key.
//
// Cache misses and cache failures are treated identically; a Set failure is
// logged and the fresh payload returned anyway.
func (l *Lookup) through(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (any, error)) (json.RawMessage, error) {
	if payload, outcome := l.store.Get(ctx, key); outcome == cache.Hit {
		return payload, nil
	}

	if l.catalog == nil {
		return nil, fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}

	value, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderRequest, err)
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := l.store.Set(ctx, key, payload, ttl); err != nil {
		l.logger.Warn("cache set failed", "key", key, "error", err)
	}

	return payload, nil
}
