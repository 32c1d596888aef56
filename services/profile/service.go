package profile

import (
	"context"
	"log"
	"time"

	"filmora/models"
)

// historyLimit caps the history read at the most recent entries. Older
// documents stay in the store but are never returned.
const historyLimit = 10

// Store persists viewed-movie snapshots keyed by (user, movie).
type Store interface {
	Upsert(ctx context.Context, userID string, entry models.ViewedMovie) error
	Recent(ctx context.Context, userID string, limit int) ([]models.ViewedMovie, error)
}

// Service tracks which movies a user has opened. Like favorites, this is a
// direct remote store with no offline path: anonymous writes no-op, failed
// reads come back empty.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a history service on top of the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Record stores a partial snapshot of a movie the caller just viewed.
// Viewing the same movie again refreshes its timestamp.
func (s *Service) Record(ctx context.Context, ident models.Identity, movie models.Movie) error {
	if ident.IsZero() {
		log.Printf("[profile] history record skipped: caller not authenticated")
		return nil
	}

	entry := models.ViewedMovie{
		MovieID:     movie.ID,
		Title:       movie.Title,
		PosterPath:  movie.PosterPath,
		ReleaseDate: movie.ReleaseDate,
		VoteAverage: movie.VoteAverage,
		Timestamp:   s.now().UnixMilli(),
	}

	return s.store.Upsert(ctx, ident.UID, entry)
}

// Recent returns the caller's most recently viewed movies, newest first.
func (s *Service) Recent(ctx context.Context, ident models.Identity) []models.ViewedMovie {
	if ident.IsZero() {
		return []models.ViewedMovie{}
	}

	entries, err := s.store.Recent(ctx, ident.UID, historyLimit)
	if err != nil {
		log.Printf("[profile] history read failed: %v", err)
		return []models.ViewedMovie{}
	}
	if entries == nil {
		entries = []models.ViewedMovie{}
	}
	return entries
}
