package models

import "strconv"

// Movie is an immutable catalog entry as returned by the remote catalog or
// read back from the local cache. "Updating" a movie means replacing the
// published list, never mutating an item in place.
type Movie struct {
	ID           int     `json:"id" bson:"id"`
	Title        string  `json:"title" bson:"title"`
	Overview     string  `json:"overview" bson:"overview"`
	PosterPath   string  `json:"poster_path" bson:"posterPath"`
	BackdropPath string  `json:"backdrop_path" bson:"backdropPath"`
	ReleaseDate  string  `json:"release_date" bson:"releaseDate"`
	VoteAverage  float64 `json:"vote_average" bson:"voteAverage"`
}

// ReleaseYear extracts the year from the YYYY-MM-DD release date string.
// Malformed or empty dates parse to year 0 so they fail every year filter.
func (m Movie) ReleaseYear() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// MoviePage is one page of catalog results. Order is the source ranking and
// is only reordered by the presentation state, never by the cache.
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a catalog genre as returned by the remote genre list.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is a trailer or clip attached to a movie.
type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// CastMember is one credited actor for a movie.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// RemoteReview is an editorial review served by the remote catalog, distinct
// from user reviews stored in the document store.
type RemoteReview struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
