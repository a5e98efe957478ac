package models

// Track is the normalized projection of a catalog song.
//
// The same shape serves search results, related tracks, and playlist items.
// Artists holds the ", "-joined artist names; Thumbnail is the
// highest-resolution thumbnail URL the provider offered, or empty.
type Track struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Artists   string `json:"artists"`
	Duration  string `json:"duration"`
	Thumbnail string `json:"thumbnail"`
}

// TrackDetail is the normalized full-track projection returned by track lookups.
type TrackDetail struct {
	VideoID          string `json:"videoId"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	PublishDate      string `json:"publishDate"`
	ViewCount        string `json:"viewCount"`
	LengthSeconds    string `json:"lengthSeconds"`
	ShortDescription string `json:"shortDescription"`
	Thumbnail        string `json:"thumbnail"`
}

// TrackPage bundles a track's detail with its related tracks.
// This is the unit cached under track:<videoId>.
type TrackPage struct {
	Details TrackDetail `json:"details"`
	Related []Track     `json:"related"`
}

// SearchResult is the normalized search response cached under search:<query>.
type SearchResult struct {
	Items []Track `json:"items"`
}
