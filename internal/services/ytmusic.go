// YouTube Music [Catalog] implementation
//
// Communicates with the FastAPI proxy server wrapping the ytmusicapi Python
// library. The proxy exposes search, song detail, and watch playlist
// endpoints; the optional region is forwarded on every request.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const defaultProxyURL string = "http://localhost:8080"

// YTMusicCatalog implements the [Catalog] interface for YouTube Music via proxy.
type YTMusicCatalog struct {
	baseURL    string
	region     string
	httpClient *http.Client
}

// NewYTMusicCatalog creates a new YouTube Music catalog client.
//
// An empty region leaves location resolution to the provider.
func NewYTMusicCatalog(baseURL, region string, httpClient *http.Client) *YTMusicCatalog {
	if baseURL == "" {
		baseURL = defaultProxyURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &YTMusicCatalog{
		baseURL:    baseURL,
		region:     region,
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (y *YTMusicCatalog) Name() string {
	return "YouTube Music"
}

func (y *YTMusicCatalog) doRequest(ctx context.Context, endpoint string, result any) error {
	apiURL := y.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if y.region != "" {
		req.Header.Set("X-Region", y.region)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("catalog API error (status %d): %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("catalog API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Search queries the proxy for song-type results.
//
// Calls GET /api/search?q={query}&filter=songs&limit={limit} on the proxy.
func (y *YTMusicCatalog) Search(ctx context.Context, query string, limit int) ([]RawTrack, error) {
	endpoint := fmt.Sprintf("/api/search?q=%s&filter=songs&limit=%d", url.QueryEscape(query), limit)

	var results []RawTrack
	if err := y.doRequest(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// GetTrack fetches the full record for a single track.
//
// Calls GET /api/songs/{videoId} on the proxy.
func (y *YTMusicCatalog) GetTrack(ctx context.Context, videoID string) (*RawSong, error) {
	endpoint := "/api/songs/" + url.PathEscape(videoID)

	var song RawSong
	if err := y.doRequest(ctx, endpoint, &song); err != nil {
		return nil, err
	}

	return &song, nil
}

// WatchPlaylist fetches tracks related to the given track.
//
// Calls GET /api/watch?videoId={id}&limit={limit} on the proxy.
func (y *YTMusicCatalog) WatchPlaylist(ctx context.Context, videoID string, limit int) ([]RawTrack, error) {
	endpoint := "/api/watch?videoId=" + url.QueryEscape(videoID) + "&limit=" + strconv.Itoa(limit)

	var watch struct {
		Tracks []RawTrack `json:"tracks"`
	}
	if err := y.doRequest(ctx, endpoint, &watch); err != nil {
		return nil, err
	}

	return watch.Tracks, nil
}
