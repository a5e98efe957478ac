package services

import (
	"strings"

	"github.com/desertthunder/playhead/internal/models"
)

// joinArtists joins artist names with ", ", skipping entries without a name.
func joinArtists(artists []Artist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

// bestThumbnail picks the highest-resolution thumbnail URL.
//
// Provider thumbnail lists are ordered smallest to largest, so the last
// entry wins. Returns empty for an empty list.
func bestThumbnail(thumbs []Thumbnail) string {
	if len(thumbs) == 0 {
		return ""
	}
	return thumbs[len(thumbs)-1].URL
}

// NormalizeTrack converts a raw provider record into the stable track shape.
func NormalizeTrack(raw RawTrack) models.Track {
	return models.Track{
		VideoID:   raw.VideoID,
		Title:     raw.Title,
		Artists:   joinArtists(raw.Artists),
		Duration:  raw.Duration,
		Thumbnail: bestThumbnail(raw.Thumbnails),
	}
}

// NormalizeTracks converts raw records, dropping entries without a VideoID
// and capping the result at limit (no cap when limit <= 0).
func NormalizeTracks(raw []RawTrack, limit int) []models.Track {
	tracks := make([]models.Track, 0, len(raw))
	for _, r := range raw {
		if r.VideoID == "" {
			continue
		}
		tracks = append(tracks, NormalizeTrack(r))
		if limit > 0 && len(tracks) >= limit {
			break
		}
	}
	return tracks
}

// NormalizeDetail converts a raw full-track record into [models.TrackDetail].
//
// The thumbnail falls back from the microformat thumbnail list to the
// player-level one; the description falls back from the microformat
// description to the player-level short description.
func NormalizeDetail(song *RawSong) models.TrackDetail {
	video := song.VideoDetails
	micro := song.Microformat.Renderer

	thumbnail := bestThumbnail(micro.Thumbnail.Thumbnails)
	if thumbnail == "" {
		thumbnail = bestThumbnail(video.Thumbnail.Thumbnails)
	}

	description := micro.Description
	if description == "" {
		description = video.ShortDescription
	}

	return models.TrackDetail{
		VideoID:          video.VideoID,
		Title:            video.Title,
		Author:           video.Author,
		PublishDate:      micro.PublishDate,
		ViewCount:        video.ViewCount,
		LengthSeconds:    video.LengthSeconds,
		ShortDescription: description,
		Thumbnail:        thumbnail,
	}
}
