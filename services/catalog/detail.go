package catalog

import (
	"context"
	"log"

	"github.com/sourcegraph/conc"

	"filmora/models"
)

// DetailBundle is everything the detail screen shows for one movie.
type DetailBundle struct {
	Movie   models.Movie          `json:"movie"`
	Videos  []models.Video        `json:"videos"`
	Cast    []models.CastMember   `json:"cast"`
	Reviews []models.RemoteReview `json:"reviews"`
}

// MovieDetail fetches the detail bundle for a movie. The four endpoint calls
// run concurrently; the detail itself is required, while videos, cast and
// editorial reviews degrade to empty sections on failure.
func (s *Service) MovieDetail(ctx context.Context, movieID int) (*DetailBundle, error) {
	var (
		movie     *models.Movie
		videos    []models.Video
		cast      []models.CastMember
		reviews   []models.RemoteReview
		detailErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		movie, detailErr = s.remote.MovieDetail(ctx, movieID)
	})
	wg.Go(func() {
		var err error
		if videos, err = s.remote.MovieVideos(ctx, movieID); err != nil {
			log.Printf("[catalog] videos fetch failed for movie %d: %v", movieID, err)
		}
	})
	wg.Go(func() {
		var err error
		if cast, err = s.remote.MovieCredits(ctx, movieID); err != nil {
			log.Printf("[catalog] credits fetch failed for movie %d: %v", movieID, err)
		}
	})
	wg.Go(func() {
		var err error
		if reviews, err = s.remote.MovieReviews(ctx, movieID, 1); err != nil {
			log.Printf("[catalog] reviews fetch failed for movie %d: %v", movieID, err)
		}
	})
	wg.Wait()

	if detailErr != nil {
		return nil, detailErr
	}

	return &DetailBundle{
		Movie:   *movie,
		Videos:  videos,
		Cast:    cast,
		Reviews: reviews,
	}, nil
}
