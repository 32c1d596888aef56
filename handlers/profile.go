package handlers

import (
	"encoding/json"
	"net/http"

	"filmora/models"
	"filmora/services/auth"
	"filmora/services/profile"
)

// ProfileHandler serves the viewing-history endpoints.
type ProfileHandler struct {
	profile *profile.Service
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService *profile.Service) *ProfileHandler {
	return &ProfileHandler{profile: profileService}
}

// History returns the caller's most recently viewed movies.
// GET /api/profile/history
func (h *ProfileHandler) History(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"history": h.profile.Recent(r.Context(), ident),
	})
}

// RecordView stores the movie from the request body in the caller's history.
// POST /api/profile/history
func (h *ProfileHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if movie.ID == 0 {
		jsonError(w, "Movie id required", http.StatusBadRequest)
		return
	}

	ident := auth.IdentityFromContext(r.Context())
	if err := h.profile.Record(r.Context(), ident, movie); err != nil {
		jsonError(w, "Failed to record view: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"recorded": true})
}
