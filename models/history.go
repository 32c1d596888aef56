package models

// ViewedMovie is a partial movie snapshot recorded when a user opens a movie
// detail page. The history read is capped to the most recent entries by
// timestamp, so older documents simply stop being returned.
type ViewedMovie struct {
	MovieID     int     `json:"id" bson:"id"`
	Title       string  `json:"title" bson:"title"`
	PosterPath  string  `json:"poster_path" bson:"posterPath"`
	ReleaseDate string  `json:"release_date" bson:"releaseDate"`
	VoteAverage float64 `json:"vote_average" bson:"voteAverage"`
	Timestamp   int64   `json:"timestamp" bson:"timestamp"`
}

// Movie rebuilds a Movie value from the partial snapshot. Fields not captured
// in the history document come back empty.
func (v ViewedMovie) Movie() Movie {
	return Movie{
		ID:          v.MovieID,
		Title:       v.Title,
		PosterPath:  v.PosterPath,
		ReleaseDate: v.ReleaseDate,
		VoteAverage: v.VoteAverage,
	}
}
