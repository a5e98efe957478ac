package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Static serves the prebuilt frontend bundle with index.html fallback, or a
// JSON placeholder when no bundle is configured or present.
//
// Registered as the catch-all route; /api/* patterns are more specific and
// win in the mux.
func (h *Handlers) Static(w http.ResponseWriter, r *http.Request) {
	if h.staticDir == "" {
		h.placeholder(w)
		return
	}

	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		h.placeholder(w)
		return
	}

	requested := filepath.Join(h.staticDir, filepath.Clean("/"+strings.TrimPrefix(r.URL.Path, "/")))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		http.ServeFile(w, r, requested)
		return
	}

	// SPA routes fall back to the index page.
	http.ServeFile(w, r, index)
}

func (h *Handlers) placeholder(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Backend running. Build the frontend and configure static_dir to serve it.",
	})
}
