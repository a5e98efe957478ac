// Package playlists implements ownership-checked playlist CRUD.
//
// Every method takes the resolved caller identity (empty string means
// anonymous). Only the owner may mutate a playlist; anonymous callers can
// list (always empty) but never create or mutate.
package playlists

import (
	"fmt"

	"github.com/desertthunder/playhead/internal/models"
	"github.com/desertthunder/playhead/internal/repositories"
	"github.com/desertthunder/playhead/internal/shared"
)

// UpdateRequest carries the mutable playlist fields; nil fields are left
// unchanged.
type UpdateRequest struct {
	Name  *string
	Items []models.Track
}

// Service mediates playlist access with ownership checks.
type Service struct {
	playlists *repositories.PlaylistRepository
}

// NewService creates a playlist Service backed by the given repository.
func NewService(playlists *repositories.PlaylistRepository) *Service {
	return &Service{playlists: playlists}
}

// List returns the caller's playlists ordered by sequence.
//
// Anonymous callers always get an empty slice, never an error.
func (s *Service) List(userID string) ([]models.PlaylistDTO, error) {
	if userID == "" {
		return []models.PlaylistDTO{}, nil
	}

	playlists, err := s.playlists.List(map[string]any{"owner_id": userID})
	if err != nil {
		return nil, err
	}

	dtos := make([]models.PlaylistDTO, 0, len(playlists))
	for _, p := range playlists {
		dtos = append(dtos, p.DTO())
	}
	return dtos, nil
}

// Create attaches a new playlist to the caller.
//
// Anonymous creation is rejected; there is no ownerless playlist state.
func (s *Service) Create(userID, name string, items []models.Track) (models.PlaylistDTO, error) {
	if userID == "" {
		return models.PlaylistDTO{}, fmt.Errorf("%w: playlist creation requires a signed-in user", shared.ErrNotAuthenticated)
	}

	playlist := models.NewPlaylist(0, userID, name, items)
	if err := s.playlists.Create(playlist); err != nil {
		return models.PlaylistDTO{}, err
	}

	return playlist.DTO(), nil
}

// Update modifies a playlist the caller owns.
//
// Unknown ids fail with [shared.ErrPlaylistNotFound]; someone else's
// playlist fails with [shared.ErrPermissionDenied].
func (s *Service) Update(userID, playlistID string, req UpdateRequest) (models.PlaylistDTO, error) {
	playlist, err := s.authorize(userID, playlistID)
	if err != nil {
		return models.PlaylistDTO{}, err
	}

	if req.Name != nil {
		playlist.SetName(*req.Name)
	}
	if req.Items != nil {
		playlist.SetItems(req.Items)
	}

	if err := s.playlists.Update(playlist); err != nil {
		return models.PlaylistDTO{}, err
	}

	return playlist.DTO(), nil
}

// Delete removes a playlist the caller owns. Same lookup and ownership rules
// as Update.
func (s *Service) Delete(userID, playlistID string) error {
	if _, err := s.authorize(userID, playlistID); err != nil {
		return err
	}

	return s.playlists.Delete(playlistID)
}

// authorize loads a playlist and checks the caller owns it.
func (s *Service) authorize(userID, playlistID string) (*models.Playlist, error) {
	if userID == "" {
		return nil, shared.ErrNotAuthenticated
	}

	playlist, err := s.playlists.Get(playlistID)
	if err != nil {
		return nil, err
	}

	if !playlist.OwnedBy(userID) {
		return nil, fmt.Errorf("%w: not the playlist owner", shared.ErrPermissionDenied)
	}

	return playlist, nil
}
