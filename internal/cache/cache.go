// Package cache implements the best-effort response cache for catalog lookups.
//
// Caching is an optimization, never a correctness dependency: every store
// failure surfaces as [Unavailable], which callers treat exactly like a miss.
package cache

import (
	"context"
	"time"
)

// Outcome classifies the result of a cache read.
type Outcome int

const (
	// Hit means the key was present and unexpired; the payload is valid.
	Hit Outcome = iota
	// Miss means the key was absent or expired.
	Miss
	// Unavailable means the underlying store failed. Callers proceed as on a miss.
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Store is a key-value cache with per-entry expiry.
//
// Get never returns an error; failures are folded into the [Unavailable]
// outcome. Set errors are returned for logging but callers must not fail a
// request on them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, Outcome)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Close() error
}

// NullStore is the no-op Store used when caching is disabled or the backing
// file could not be opened. Every read is a miss.
type NullStore struct{}

func NewNullStore() *NullStore { return &NullStore{} }

func (s *NullStore) Get(ctx context.Context, key string) ([]byte, Outcome) {
	return nil, Miss
}

func (s *NullStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return nil
}

func (s *NullStore) Close() error { return nil }
