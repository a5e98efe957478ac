package models

import (
	"fmt"
	"time"
)

// DefaultPlaylistName is used when a create request omits a name.
const DefaultPlaylistName = "New Playlist"

// Playlist represents a per-user named list of tracks.
//
// Items are stored as an ordered slice of [Track]; only the owner may mutate
// a playlist.
type Playlist struct {
	id        string
	sequence  int
	ownerID   string
	name      string
	items     []Track
	public    bool
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// PlaylistDTO is the client-facing projection of a Playlist.
type PlaylistDTO struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Items []Track `json:"items"`
}

// NewPlaylist creates a Playlist owned by ownerID.
//
// An empty name falls back to [DefaultPlaylistName]; nil items become an
// empty slice so the serialized form is always a JSON array.
func NewPlaylist(sequence int, ownerID, name string, items []Track) *Playlist {
	if name == "" {
		name = DefaultPlaylistName
	}
	if items == nil {
		items = []Track{}
	}

	now := time.Now()
	return &Playlist{
		sequence:  sequence,
		ownerID:   ownerID,
		name:      name,
		items:     items,
		createdAt: now,
		updatedAt: now,
	}
}

func (p *Playlist) ID() string            { return p.id }
func (p *Playlist) Sequence() int         { return p.sequence }
func (p *Playlist) OwnerID() string       { return p.ownerID }
func (p *Playlist) Name() string          { return p.name }
func (p *Playlist) Items() []Track        { return p.items }
func (p *Playlist) Public() bool          { return p.public }
func (p *Playlist) CreatedAt() time.Time  { return p.createdAt }
func (p *Playlist) UpdatedAt() time.Time  { return p.updatedAt }
func (p *Playlist) DeletedAt() *time.Time { return p.deletedAt }

func (p *Playlist) SetID(id string)           { p.id = id }
func (p *Playlist) SetName(name string)       { p.name = name }
func (p *Playlist) SetItems(items []Track)    { p.items = items }
func (p *Playlist) SetPublic(public bool)     { p.public = public }
func (p *Playlist) SetCreatedAt(t time.Time)  { p.createdAt = t }
func (p *Playlist) SetUpdatedAt(t time.Time)  { p.updatedAt = t }
func (p *Playlist) SetDeletedAt(t *time.Time) { p.deletedAt = t }

// OwnedBy reports whether userID is the playlist owner.
func (p *Playlist) OwnedBy(userID string) bool {
	return userID != "" && p.ownerID == userID
}

// Validate checks that the playlist has an owner and a name.
func (p *Playlist) Validate() error {
	if p.ownerID == "" {
		return fmt.Errorf("playlist owner is required")
	}
	if p.name == "" {
		return fmt.Errorf("playlist name is required")
	}
	return nil
}

// DTO returns the client-facing projection of the playlist.
func (p *Playlist) DTO() PlaylistDTO {
	items := p.items
	if items == nil {
		items = []Track{}
	}
	return PlaylistDTO{ID: p.id, Name: p.name, Items: items}
}
