package server

import (
	"encoding/json"
	"net/http"
)

// credentialRequest is the body for register and login.
type credentialRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	json.NewDecoder(r.Body).Decode(&req) // empty body falls through to validation

	creds, err := h.auth.Register(req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, creds)
}

// Login handles POST /api/auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	json.NewDecoder(r.Body).Decode(&req)

	creds, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, creds)
}
