package server

import (
	"encoding/json"
	"net/http"

	"github.com/desertthunder/playhead/internal/models"
	"github.com/desertthunder/playhead/internal/playlists"
)

// playlistRequest is the body for playlist create and update. Name and Items
// are pointers so updates can distinguish "absent" from "set to empty".
type playlistRequest struct {
	Name  *string         `json:"name"`
	Items *[]models.Track `json:"items"`
}

// ListPlaylists handles GET /api/playlists. Anonymous callers get an empty
// array.
func (h *Handlers) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.playlists.List(UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos)
}

// CreatePlaylist handles POST /api/playlists.
func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req playlistRequest
	json.NewDecoder(r.Body).Decode(&req)

	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	var items []models.Track
	if req.Items != nil {
		items = *req.Items
	}

	dto, err := h.playlists.Create(UserID(r.Context()), name, items)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// UpdatePlaylist handles PUT /api/playlists/{id}.
func (h *Handlers) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req playlistRequest
	json.NewDecoder(r.Body).Decode(&req)

	update := playlists.UpdateRequest{Name: req.Name}
	if req.Items != nil {
		update.Items = *req.Items
	}

	dto, err := h.playlists.Update(UserID(r.Context()), r.PathValue("id"), update)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// DeletePlaylist handles DELETE /api/playlists/{id}.
func (h *Handlers) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := h.playlists.Delete(UserID(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
