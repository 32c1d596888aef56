package reviews

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"filmora/models"
)

var (
	// ErrNotFound is returned for operations on a review id with no document.
	ErrNotFound = errors.New("review not found")
	// ErrNotOwner is returned when the caller tries to change a review they
	// did not write. This check is advisory; the backing store is assumed to
	// enforce the same rule server-side.
	ErrNotOwner = errors.New("review does not belong to caller")
	// ErrEmptyContent rejects reviews with no text.
	ErrEmptyContent = errors.New("review content is empty")
)

// Store persists reviews in the global review collection.
type Store interface {
	Insert(ctx context.Context, review models.Review) error
	Get(ctx context.Context, id string) (*models.Review, error)
	Update(ctx context.Context, id, content string, timestamp int64) error
	Delete(ctx context.Context, id string) error
	ForMovie(ctx context.Context, movieID int) ([]models.Review, error)
}

// Service manages user reviews. Reviews are listed globally per movie and
// mutated only by their owner; an update refreshes the timestamp and sets
// the edited flag permanently.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a review service on top of the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Add creates a review by the caller against a movie. Calls without an
// authenticated identity are logged no-ops: no document is created and no
// error is returned.
func (s *Service) Add(ctx context.Context, ident models.Identity, movieID int, content string) (*models.Review, error) {
	if ident.IsZero() {
		log.Printf("[reviews] add skipped: caller not authenticated")
		return nil, nil
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	review := models.Review{
		ID:        uuid.NewString(),
		UserID:    ident.UID,
		UserEmail: ident.Email,
		MovieID:   movieID,
		Content:   content,
		Timestamp: s.now().UnixMilli(),
		IsEdited:  false,
	}

	if err := s.store.Insert(ctx, review); err != nil {
		return nil, err
	}

	return &review, nil
}

// ForMovie lists all reviews for a movie, newest first. Store failures are
// logged and degrade to an empty list.
func (s *Service) ForMovie(ctx context.Context, movieID int) []models.Review {
	reviews, err := s.store.ForMovie(ctx, movieID)
	if err != nil {
		log.Printf("[reviews] list failed for movie %d: %v", movieID, err)
		return []models.Review{}
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews
}

// Update replaces the content of the caller's own review, refreshes its
// timestamp and marks it edited.
func (s *Service) Update(ctx context.Context, ident models.Identity, reviewID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	review, err := s.ownedReview(ctx, ident, reviewID)
	if err != nil {
		return err
	}

	return s.store.Update(ctx, review.ID, content, s.now().UnixMilli())
}

// Delete removes the caller's own review.
func (s *Service) Delete(ctx context.Context, ident models.Identity, reviewID string) error {
	review, err := s.ownedReview(ctx, ident, reviewID)
	if err != nil {
		return err
	}

	return s.store.Delete(ctx, review.ID)
}

// ownedReview loads a review and checks the caller wrote it.
func (s *Service) ownedReview(ctx context.Context, ident models.Identity, reviewID string) (*models.Review, error) {
	if ident.IsZero() {
		return nil, ErrNotOwner
	}

	review, err := s.store.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	if review.UserID != ident.UID {
		return nil, ErrNotOwner
	}

	return review, nil
}
