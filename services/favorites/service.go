package favorites

import (
	"context"
	"log"

	"filmora/models"
)

// Store persists favorite movie snapshots keyed by (user, movie).
type Store interface {
	Put(ctx context.Context, userID string, movie models.Movie) error
	Delete(ctx context.Context, userID string, movieID int) error
	Exists(ctx context.Context, userID string, movieID int) (bool, error)
	List(ctx context.Context, userID string) ([]models.Movie, error)
}

// Service manages a user's favorite movies. There is no local cache and no
// offline queue: every operation goes straight to the document store.
// Write calls without an authenticated identity are logged no-ops; failed
// reads are logged and return empty results. Write failures with an identity
// are surfaced to the caller.
type Service struct {
	store Store
}

// NewService creates a favorites service on top of the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Add stores the full movie snapshot as a favorite of the caller.
func (s *Service) Add(ctx context.Context, ident models.Identity, movie models.Movie) error {
	if ident.IsZero() {
		log.Printf("[favorites] add skipped: caller not authenticated")
		return nil
	}
	return s.store.Put(ctx, ident.UID, movie)
}

// Remove deletes a favorite of the caller.
func (s *Service) Remove(ctx context.Context, ident models.Identity, movieID int) error {
	if ident.IsZero() {
		log.Printf("[favorites] remove skipped: caller not authenticated")
		return nil
	}
	return s.store.Delete(ctx, ident.UID, movieID)
}

// IsFavorite reports whether the caller has favorited the movie.
func (s *Service) IsFavorite(ctx context.Context, ident models.Identity, movieID int) bool {
	if ident.IsZero() {
		return false
	}
	exists, err := s.store.Exists(ctx, ident.UID, movieID)
	if err != nil {
		log.Printf("[favorites] exists check failed for movie %d: %v", movieID, err)
		return false
	}
	return exists
}

// List returns all favorites of the caller.
func (s *Service) List(ctx context.Context, ident models.Identity) []models.Movie {
	if ident.IsZero() {
		return []models.Movie{}
	}
	movies, err := s.store.List(ctx, ident.UID)
	if err != nil {
		log.Printf("[favorites] list failed: %v", err)
		return []models.Movie{}
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies
}
