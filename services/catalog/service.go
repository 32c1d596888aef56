package catalog

import (
	"context"
	"errors"
	"log"

	"filmora/internal/connectivity"
	"filmora/models"
	"filmora/services/tmdb"
)

// Fallback reasons surfaced to the UI when cached data is shown instead of
// fresh data. Exactly one of these is published on a fallback; a successful
// remote fetch clears the reason.
const (
	ReasonOffline    = "no connectivity, showing cached results"
	ReasonServer     = "server error, showing cached results"
	ReasonUnexpected = "unexpected error, showing cached results"
)

// RemoteCatalog is the read surface of the movie catalog API.
type RemoteCatalog interface {
	PopularMovies(ctx context.Context, page int) (*models.MoviePage, error)
	Genres(ctx context.Context) ([]models.Genre, error)
	MoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error)
	MovieDetail(ctx context.Context, movieID int) (*models.Movie, error)
	MovieVideos(ctx context.Context, movieID int) ([]models.Video, error)
	MovieCredits(ctx context.Context, movieID int) ([]models.CastMember, error)
	MovieReviews(ctx context.Context, movieID, page int) ([]models.RemoteReview, error)
}

// MovieStore is the local write-through cache of the popular list.
type MovieStore interface {
	ReplaceAll(ctx context.Context, movies []models.Movie) error
	All(ctx context.Context) ([]models.Movie, error)
}

// Service orchestrates catalog synchronization: attempt the remote fetch,
// write through to the local store on success, fall back to the store on any
// failure. After every RefreshPopular invocation the list state holds some
// list, empty if both remote and local are empty.
type Service struct {
	remote RemoteCatalog
	store  MovieStore
	conn   connectivity.Checker
	state  *ListState
}

// NewService wires the synchronization policy to its collaborators.
func NewService(remote RemoteCatalog, store MovieStore, conn connectivity.Checker, state *ListState) *Service {
	return &Service{
		remote: remote,
		store:  store,
		conn:   conn,
		state:  state,
	}
}

// State exposes the presentation state fed by this service.
func (s *Service) State() *ListState {
	return s.state
}

// RefreshPopular runs one fetch invocation. It never returns an error: every
// failure path publishes the cached snapshot with a reason instead.
func (s *Service) RefreshPopular(ctx context.Context, page int) {
	if !s.conn.Online() {
		s.fallback(ctx, ReasonOffline)
		return
	}

	remotePage, err := s.remote.PopularMovies(ctx, page)
	if err != nil {
		log.Printf("[catalog] popular fetch failed: %v", err)
		s.fallback(ctx, classifyFailure(err))
		return
	}

	// Cache write happens-before publish: a reader of the canonical list
	// never observes a remote result the cache does not yet reflect.
	if err := s.store.ReplaceAll(ctx, remotePage.Results); err != nil {
		log.Printf("[catalog] cache write failed: %v", err)
	}

	s.state.SetCanonical(*remotePage, "")
}

// fallback publishes the local snapshot as a single-page result set together
// with the reason fresh data is unavailable.
func (s *Service) fallback(ctx context.Context, reason string) {
	items, err := s.store.All(ctx)
	if err != nil {
		log.Printf("[catalog] cache read failed: %v", err)
		items = nil
	}
	if items == nil {
		items = []models.Movie{}
	}

	s.state.SetCanonical(models.MoviePage{
		Page:         1,
		Results:      items,
		TotalPages:   1,
		TotalResults: len(items),
	}, reason)
}

// classifyFailure maps a remote failure onto the user-visible reason class.
// A completed call with a bad status is a server error; transport and decode
// failures fall into the unexpected class.
func classifyFailure(err error) string {
	var apiErr *tmdb.Error
	if errors.As(err, &apiErr) && apiErr.Kind == tmdb.KindStatus {
		return ReasonServer
	}
	return ReasonUnexpected
}

// Genres passes the genre list through from the remote catalog.
func (s *Service) Genres(ctx context.Context) ([]models.Genre, error) {
	return s.remote.Genres(ctx)
}

// MoviesByGenre passes a discover page through from the remote catalog.
// Genre pages are not cached; only the popular list has offline fallback.
func (s *Service) MoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
	return s.remote.MoviesByGenre(ctx, genreID, page)
}
