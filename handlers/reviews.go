package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"filmora/services/auth"
	"filmora/services/reviews"
)

// ReviewsHandler serves the user review endpoints.
type ReviewsHandler struct {
	reviews *reviews.Service
}

// NewReviewsHandler creates a new reviews handler.
func NewReviewsHandler(reviewsService *reviews.Service) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewsService}
}

type reviewRequest struct {
	Content string `json:"content"`
}

// ListForMovie returns all reviews for a movie, newest first.
// GET /api/movies/{movieID}/reviews
func (h *ReviewsHandler) ListForMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(mux.Vars(r), "movieID")
	if !ok {
		jsonError(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reviews": h.reviews.ForMovie(r.Context(), movieID),
	})
}

// Create adds a review by the caller.
// POST /api/movies/{movieID}/reviews
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(mux.Vars(r), "movieID")
	if !ok {
		jsonError(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ident := auth.IdentityFromContext(r.Context())
	review, err := h.reviews.Add(r.Context(), ident, movieID, req.Content)
	if err != nil {
		if errors.Is(err, reviews.ErrEmptyContent) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "Failed to store review: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// Update edits the caller's own review.
// PUT /api/reviews/{reviewID}
func (h *ReviewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["reviewID"]

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ident := auth.IdentityFromContext(r.Context())
	if err := h.reviews.Update(r.Context(), ident, reviewID, req.Content); err != nil {
		h.writeReviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Delete removes the caller's own review.
// DELETE /api/reviews/{reviewID}
func (h *ReviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["reviewID"]

	ident := auth.IdentityFromContext(r.Context())
	if err := h.reviews.Delete(r.Context(), ident, reviewID); err != nil {
		h.writeReviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *ReviewsHandler) writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviews.ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, reviews.ErrNotOwner):
		jsonError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, reviews.ErrEmptyContent):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		jsonError(w, "Review operation failed: "+err.Error(), http.StatusBadGateway)
	}
}
