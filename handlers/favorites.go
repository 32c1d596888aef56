package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"filmora/models"
	"filmora/services/auth"
	"filmora/services/favorites"
)

// FavoritesHandler serves the per-user favorite movie endpoints.
type FavoritesHandler struct {
	favorites *favorites.Service
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(favoritesService *favorites.Service) *FavoritesHandler {
	return &FavoritesHandler{favorites: favoritesService}
}

// List returns all favorites of the caller.
// GET /api/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"favorites": h.favorites.List(r.Context(), ident),
	})
}

// Add stores the movie snapshot from the request body as a favorite.
// PUT /api/favorites/{movieID}
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(mux.Vars(r), "movieID")
	if !ok {
		jsonError(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if movie.ID != movieID {
		jsonError(w, "Movie id mismatch between path and body", http.StatusBadRequest)
		return
	}

	ident := auth.IdentityFromContext(r.Context())
	if err := h.favorites.Add(r.Context(), ident, movie); err != nil {
		jsonError(w, "Failed to store favorite: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"favorite": true})
}

// Remove deletes a favorite of the caller.
// DELETE /api/favorites/{movieID}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(mux.Vars(r), "movieID")
	if !ok {
		jsonError(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	ident := auth.IdentityFromContext(r.Context())
	if err := h.favorites.Remove(r.Context(), ident, movieID); err != nil {
		jsonError(w, "Failed to remove favorite: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"favorite": false})
}

// Status reports whether the caller has favorited the movie.
// GET /api/favorites/{movieID}
func (h *FavoritesHandler) Status(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(mux.Vars(r), "movieID")
	if !ok {
		jsonError(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	ident := auth.IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{
		"favorite": h.favorites.IsFavorite(r.Context(), ident, movieID),
	})
}
