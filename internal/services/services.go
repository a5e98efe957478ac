// Package services defines the [Catalog] interface for the external music
// catalog provider and the [Lookup] service that fronts it with a cache.
package services

import (
	"context"
)

// Catalog is the external music catalog provider.
//
// Implementations return raw provider records; normalization into the
// service's stable track shapes happens in this package, not in clients.
type Catalog interface {
	// Search returns up to limit song results for the query.
	Search(ctx context.Context, query string, limit int) ([]RawTrack, error)

	// GetTrack returns the full raw record for a single track.
	GetTrack(ctx context.Context, videoID string) (*RawSong, error)

	// WatchPlaylist returns up to limit tracks related to the given track.
	WatchPlaylist(ctx context.Context, videoID string, limit int) ([]RawTrack, error)

	// Name returns the provider name (e.g., "YouTube Music")
	Name() string
}

// Thumbnail is a provider image entry. Provider thumbnail lists are ordered
// smallest to largest.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Artist is a provider artist entry.
type Artist struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// RawTrack is a raw provider song record, as returned by search and watch
// playlist responses. Entries without a VideoID are dropped during
// normalization.
type RawTrack struct {
	VideoID    string      `json:"videoId"`
	Title      string      `json:"title"`
	Artists    []Artist    `json:"artists"`
	Duration   string      `json:"duration"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

// RawSong is the raw full-track record: player-level video details plus the
// microformat block carrying richer metadata.
type RawSong struct {
	VideoDetails RawVideoDetails `json:"videoDetails"`
	Microformat  RawMicroformat  `json:"microformat"`
}

// RawVideoDetails is the player-level portion of a [RawSong].
type RawVideoDetails struct {
	VideoID          string        `json:"videoId"`
	Title            string        `json:"title"`
	Author           string        `json:"author"`
	ViewCount        string        `json:"viewCount"`
	LengthSeconds    string        `json:"lengthSeconds"`
	ShortDescription string        `json:"shortDescription"`
	Thumbnail        ThumbnailList `json:"thumbnail"`
}

// RawMicroformat wraps the provider's microformatDataRenderer envelope.
type RawMicroformat struct {
	Renderer RawMicroformatData `json:"microformatDataRenderer"`
}

// RawMicroformatData is the microformat payload of a [RawSong].
type RawMicroformatData struct {
	Thumbnail   ThumbnailList `json:"thumbnail"`
	Description string        `json:"description"`
	PublishDate string        `json:"publishDate"`
}

// ThumbnailList wraps a provider thumbnail array.
type ThumbnailList struct {
	Thumbnails []Thumbnail `json:"thumbnails"`
}
