// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/desertthunder/playhead/internal/cache"
	"github.com/desertthunder/playhead/internal/services"
	"github.com/desertthunder/playhead/internal/shared"
)

// MockCatalog is a test double for [services.Catalog] with injectable results.
type MockCatalog struct {
	SearchResults []services.RawTrack
	SearchErr     error
	Song          *services.RawSong
	SongErr       error
	WatchResults  []services.RawTrack
	WatchErr      error

	SearchCalls int
	SongCalls   int
	WatchCalls  int
}

func (m *MockCatalog) Search(ctx context.Context, query string, limit int) ([]services.RawTrack, error) {
	m.SearchCalls++
	return m.SearchResults, m.SearchErr
}

func (m *MockCatalog) GetTrack(ctx context.Context, videoID string) (*services.RawSong, error) {
	m.SongCalls++
	return m.Song, m.SongErr
}

func (m *MockCatalog) WatchPlaylist(ctx context.Context, videoID string, limit int) ([]services.RawTrack, error) {
	m.WatchCalls++
	return m.WatchResults, m.WatchErr
}

func (m *MockCatalog) Name() string { return "mock" }

// MemoryStore is an in-memory [cache.Store] for tests.
type MemoryStore struct {
	Entries  map[string][]byte
	SetCalls int
	SetErr   error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Entries: map[string][]byte{}}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, cache.Outcome) {
	if payload, ok := s.Entries[key]; ok {
		return payload, cache.Hit
	}
	return nil, cache.Miss
}

func (s *MemoryStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	s.SetCalls++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Entries[key] = payload
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// FailingStore reports every lookup as unavailable and fails every write.
type FailingStore struct{}

func (s *FailingStore) Get(ctx context.Context, key string) ([]byte, cache.Outcome) {
	return nil, cache.Unavailable
}

func (s *FailingStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return errors.New("store unavailable")
}

func (s *FailingStore) Close() error { return nil }

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// SetupTestDB opens an in-memory database with migrations applied.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}
