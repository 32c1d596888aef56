package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the MongoDB connection backing the per-user collections
// (favorites, viewing history, users) and the global review collection.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens and verifies a connection to the document store.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	store := &Store{
		client: client,
		db:     client.Database(database),
	}

	if err := store.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// ensureIndexes creates the query indexes the services rely on: reviews are
// listed by movie ordered by time, history by user ordered by time, and user
// emails are unique.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.Reviews().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "movieId", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create review index: %w", err)
	}

	_, err = s.History().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create history index: %w", err)
	}

	_, err = s.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create user index: %w", err)
	}

	return nil
}

// Close disconnects from the document store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Favorites is the per-user favorite movie collection.
func (s *Store) Favorites() *mongo.Collection {
	return s.db.Collection("favorites")
}

// Reviews is the global user review collection.
func (s *Store) Reviews() *mongo.Collection {
	return s.db.Collection("movie_reviews")
}

// History is the per-user viewed movie collection.
func (s *Store) History() *mongo.Collection {
	return s.db.Collection("viewed_movies")
}

// Users is the registered account collection.
func (s *Store) Users() *mongo.Collection {
	return s.db.Collection("users")
}
