package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"filmora/models"
	"filmora/services/catalog"
	"filmora/services/tmdb"
)

type stubChecker struct {
	online bool
}

func (s stubChecker) Online() bool { return s.online }

type fakeRemote struct {
	page    *models.MoviePage
	pageErr error

	detail  *models.Movie
	videos  []models.Video
	cast    []models.CastMember
	reviews []models.RemoteReview
}

func (f *fakeRemote) PopularMovies(ctx context.Context, page int) (*models.MoviePage, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return f.page, nil
}

func (f *fakeRemote) Genres(ctx context.Context) ([]models.Genre, error) { return nil, nil }

func (f *fakeRemote) MoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
	return f.page, f.pageErr
}

func (f *fakeRemote) MovieDetail(ctx context.Context, movieID int) (*models.Movie, error) {
	if f.detail == nil {
		return nil, fmt.Errorf("no detail for movie %d", movieID)
	}
	return f.detail, nil
}

func (f *fakeRemote) MovieVideos(ctx context.Context, movieID int) ([]models.Video, error) {
	return f.videos, nil
}

func (f *fakeRemote) MovieCredits(ctx context.Context, movieID int) ([]models.CastMember, error) {
	return f.cast, nil
}

func (f *fakeRemote) MovieReviews(ctx context.Context, movieID, page int) ([]models.RemoteReview, error) {
	return f.reviews, nil
}

// fakeStore records the order of operations so tests can assert the
// write-through happens before the publish.
type fakeStore struct {
	mu      sync.Mutex
	items   []models.Movie
	readErr error
	ops     []string
}

func (f *fakeStore) ReplaceAll(ctx context.Context, movies []models.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]models.Movie(nil), movies...)
	f.ops = append(f.ops, "replace")
	return nil
}

func (f *fakeStore) All(ctx context.Context) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "read")
	if f.readErr != nil {
		return nil, f.readErr
	}
	return append([]models.Movie(nil), f.items...), nil
}

func newService(remote *fakeRemote, store *fakeStore, online bool) *catalog.Service {
	return catalog.NewService(remote, store, stubChecker{online: online}, catalog.NewListState())
}

func TestRefreshPublishesRemoteResultsInOrder(t *testing.T) {
	remote := &fakeRemote{page: &models.MoviePage{
		Page:         1,
		Results:      []models.Movie{{ID: 3, Title: "C"}, {ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
		TotalPages:   5,
		TotalResults: 100,
	}}
	store := &fakeStore{}
	svc := newService(remote, store, true)

	svc.RefreshPopular(context.Background(), 1)

	canonical := svc.State().Canonical()
	if len(canonical) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(canonical))
	}
	// Canonical list keeps the returned order.
	if canonical[0].ID != 3 || canonical[1].ID != 1 || canonical[2].ID != 2 {
		t.Fatalf("expected source order preserved, got %+v", canonical)
	}
	// Store contents equal the returned set.
	if len(store.items) != 3 {
		t.Fatalf("expected store write-through, got %d items", len(store.items))
	}
	if reason := svc.State().Snapshot().Reason; reason != "" {
		t.Fatalf("expected reason cleared on success, got %q", reason)
	}
}

func TestRefreshWritesCacheBeforePublishing(t *testing.T) {
	remote := &fakeRemote{page: &models.MoviePage{Page: 1, Results: []models.Movie{{ID: 1}}}}
	store := &fakeStore{}
	svc := newService(remote, store, true)

	svc.RefreshPopular(context.Background(), 1)

	if len(store.ops) == 0 || store.ops[0] != "replace" {
		t.Fatalf("expected cache write before publish, ops=%v", store.ops)
	}
}

func TestOfflineFallsBackToLocalStore(t *testing.T) {
	store := &fakeStore{items: []models.Movie{{ID: 42, Title: "Cached"}}}
	svc := newService(&fakeRemote{}, store, false)

	svc.RefreshPopular(context.Background(), 1)

	snap := svc.State().Snapshot()
	if snap.Reason != catalog.ReasonOffline {
		t.Fatalf("expected offline reason, got %q", snap.Reason)
	}
	if len(snap.Results) != 1 || snap.Results[0].ID != 42 {
		t.Fatalf("expected cached movie published, got %+v", snap.Results)
	}
	if snap.Page != 1 || snap.TotalResults != 1 {
		t.Fatalf("expected single-page wrap, got %+v", snap)
	}
}

func TestTransportFailureFallsBackWithUnexpectedReason(t *testing.T) {
	remote := &fakeRemote{pageErr: &tmdb.Error{Kind: tmdb.KindNetwork, Err: errors.New("timeout")}}
	store := &fakeStore{items: []models.Movie{{ID: 42}}}
	svc := newService(remote, store, true)

	svc.RefreshPopular(context.Background(), 1)

	snap := svc.State().Snapshot()
	if snap.Reason != catalog.ReasonUnexpected {
		t.Fatalf("expected unexpected-error reason, got %q", snap.Reason)
	}
	if len(snap.Results) != 1 || snap.Results[0].ID != 42 {
		t.Fatalf("expected cached movie published, got %+v", snap.Results)
	}
}

func TestStatusFailureFallsBackWithServerReason(t *testing.T) {
	remote := &fakeRemote{pageErr: &tmdb.Error{Kind: tmdb.KindStatus, Status: http.StatusBadGateway}}
	svc := newService(remote, &fakeStore{}, true)

	svc.RefreshPopular(context.Background(), 1)

	if reason := svc.State().Snapshot().Reason; reason != catalog.ReasonServer {
		t.Fatalf("expected server-error reason, got %q", reason)
	}
}

func TestCanonicalListIsNeverNil(t *testing.T) {
	// Both remote and local empty, and the local read fails on top.
	remote := &fakeRemote{pageErr: errors.New("boom")}
	store := &fakeStore{readErr: errors.New("disk gone")}
	svc := newService(remote, store, true)

	svc.RefreshPopular(context.Background(), 1)

	canonical := svc.State().Canonical()
	if canonical == nil {
		t.Fatalf("expected non-nil canonical list")
	}
	if len(canonical) != 0 {
		t.Fatalf("expected empty canonical list, got %d items", len(canonical))
	}
}

func TestSuccessAfterFallbackClearsReason(t *testing.T) {
	remote := &fakeRemote{pageErr: errors.New("boom")}
	store := &fakeStore{}
	svc := newService(remote, store, true)

	svc.RefreshPopular(context.Background(), 1)
	if svc.State().Snapshot().Reason == "" {
		t.Fatalf("expected a fallback reason after failure")
	}

	remote.pageErr = nil
	remote.page = &models.MoviePage{Page: 1, Results: []models.Movie{{ID: 7}}}
	svc.RefreshPopular(context.Background(), 1)

	if reason := svc.State().Snapshot().Reason; reason != "" {
		t.Fatalf("expected reason cleared after success, got %q", reason)
	}
}

func TestMovieDetailBundlesSections(t *testing.T) {
	remote := &fakeRemote{
		detail:  &models.Movie{ID: 603, Title: "The Matrix"},
		videos:  []models.Video{{ID: "v1", Key: "abc"}},
		cast:    []models.CastMember{{ID: 1, Name: "Keanu Reeves"}},
		reviews: []models.RemoteReview{{ID: "r1"}},
	}
	svc := newService(remote, &fakeStore{}, true)

	bundle, err := svc.MovieDetail(context.Background(), 603)
	if err != nil {
		t.Fatalf("MovieDetail returned error: %v", err)
	}
	if bundle.Movie.Title != "The Matrix" {
		t.Fatalf("unexpected movie: %+v", bundle.Movie)
	}
	if len(bundle.Videos) != 1 || len(bundle.Cast) != 1 || len(bundle.Reviews) != 1 {
		t.Fatalf("expected all sections populated: %+v", bundle)
	}
}

func TestMovieDetailRequiresDetail(t *testing.T) {
	svc := newService(&fakeRemote{}, &fakeStore{}, true)

	if _, err := svc.MovieDetail(context.Background(), 99); err == nil {
		t.Fatalf("expected error when the detail fetch fails")
	}
}
