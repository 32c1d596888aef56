package database

import (
	"context"
	"database/sql"
	"fmt"

	"filmora/models"
)

// MovieRepository holds the cached popular-movies snapshot. The cache keeps
// exactly one generation of data: ReplaceAll discards everything stored
// before inserting the new set, and All returns rows in unspecified order.
type MovieRepository struct {
	db *sql.DB
}

// NewMovieRepository creates a repository backed by the given connection.
func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// ReplaceAll atomically swaps the stored snapshot for the given movies.
// Calling it twice with the same set yields the same final state.
func (r *MovieRepository) ReplaceAll(ctx context.Context, movies []models.Movie) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM movies"); err != nil {
		return fmt.Errorf("clear movies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO movies (id, title, overview, poster_path, backdrop_path, release_date, vote_average)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range movies {
		if _, err := stmt.ExecContext(ctx, m.ID, m.Title, m.Overview, m.PosterPath, m.BackdropPath, m.ReleaseDate, m.VoteAverage); err != nil {
			return fmt.Errorf("insert movie %d: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// All returns the current stored snapshot. Callers must not assume the
// source ranking survives the cache round-trip.
func (r *MovieRepository) All(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, overview, poster_path, backdrop_path, release_date, vote_average
		FROM movies`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Overview, &m.PosterPath, &m.BackdropPath, &m.ReleaseDate, &m.VoteAverage); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return movies, nil
}
