package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestYTMusicCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Search decodes results and forwards params", func(t *testing.T) {
		var gotPath, gotRegion string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.String()
			gotRegion = r.Header.Get("X-Region")
			w.Write([]byte(`[{"videoId":"abc123","title":"Song","artists":[{"name":"Artist"}],"duration":"3:21"}]`))
		}))
		defer server.Close()

		catalog := NewYTMusicCatalog(server.URL, "US", server.Client())

		results, err := catalog.Search(ctx, "test query", 36)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(results) != 1 || results[0].VideoID != "abc123" {
			t.Errorf("unexpected results: %+v", results)
		}
		if !strings.Contains(gotPath, "q=test+query") || !strings.Contains(gotPath, "filter=songs") || !strings.Contains(gotPath, "limit=36") {
			t.Errorf("unexpected request path: %s", gotPath)
		}
		if gotRegion != "US" {
			t.Errorf("expected X-Region US, got %q", gotRegion)
		}
	})

	t.Run("GetTrack decodes the full record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/songs/abc123" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.Write([]byte(`{"videoDetails":{"videoId":"abc123","title":"Song"},"microformat":{"microformatDataRenderer":{"publishDate":"2024-01-15"}}}`))
		}))
		defer server.Close()

		catalog := NewYTMusicCatalog(server.URL, "", server.Client())

		song, err := catalog.GetTrack(ctx, "abc123")
		if err != nil {
			t.Fatalf("get track failed: %v", err)
		}
		if song.VideoDetails.VideoID != "abc123" {
			t.Errorf("unexpected video details: %+v", song.VideoDetails)
		}
		if song.Microformat.Renderer.PublishDate != "2024-01-15" {
			t.Errorf("unexpected microformat: %+v", song.Microformat)
		}
	})

	t.Run("WatchPlaylist unwraps the tracks envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tracks":[{"videoId":"rel1"},{"videoId":"rel2"}]}`))
		}))
		defer server.Close()

		catalog := NewYTMusicCatalog(server.URL, "", server.Client())

		tracks, err := catalog.WatchPlaylist(ctx, "abc123", 40)
		if err != nil {
			t.Fatalf("watch playlist failed: %v", err)
		}
		if len(tracks) != 2 {
			t.Errorf("expected 2 tracks, got %d", len(tracks))
		}
	})

	t.Run("error response surfaces detail message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"detail":"upstream unavailable"}`))
		}))
		defer server.Close()

		catalog := NewYTMusicCatalog(server.URL, "", server.Client())

		_, err := catalog.Search(ctx, "query", 36)
		if err == nil {
			t.Fatal("expected error for 502 response")
		}
		if !strings.Contains(err.Error(), "upstream unavailable") {
			t.Errorf("expected detail in error, got %v", err)
		}
	})

	t.Run("non-JSON error response reports status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		}))
		defer server.Close()

		catalog := NewYTMusicCatalog(server.URL, "", server.Client())

		_, err := catalog.Search(ctx, "query", 36)
		if err == nil || !strings.Contains(err.Error(), "status 500") {
			t.Errorf("expected status in error, got %v", err)
		}
	})
}
