package server

import (
	"net/http"
)

// Search handles GET /api/search?q=. Cache hits return the stored payload
// verbatim.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	payload, err := h.lookup.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

// Track handles GET /api/track/{videoId}.
func (h *Handlers) Track(w http.ResponseWriter, r *http.Request) {
	payload, err := h.lookup.TrackDetail(r.Context(), r.PathValue("videoId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}
