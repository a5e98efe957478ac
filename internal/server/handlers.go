package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playhead/internal/auth"
	"github.com/desertthunder/playhead/internal/playlists"
	"github.com/desertthunder/playhead/internal/services"
)

// Handlers holds the route handlers and their injected services.
type Handlers struct {
	auth       *auth.Service
	playlists  *playlists.Service
	lookup     *services.Lookup
	logger     *log.Logger
	staticDir  string
	playerMode string
}

// NewHandlers creates the handler set with injected dependencies.
func NewHandlers(authSvc *auth.Service, playlistSvc *playlists.Service, lookup *services.Lookup, logger *log.Logger, staticDir, playerMode string) *Handlers {
	return &Handlers{
		auth:       authSvc,
		playlists:  playlistSvc,
		lookup:     lookup,
		logger:     logger,
		staticDir:  staticDir,
		playerMode: playerMode,
	}
}

// Health responds to GET /api/health. The player mode rides along so the
// frontend can discover it without a separate config endpoint.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "player_mode": h.playerMode})
}
