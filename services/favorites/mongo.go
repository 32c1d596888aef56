package favorites

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"filmora/models"
)

// favoriteDoc is one favorite: the full movie snapshot owned by a user.
// Document existence is the only state.
type favoriteDoc struct {
	ID      string       `bson:"_id"` // userID:movieID
	UserID  string       `bson:"userId"`
	MovieID int          `bson:"movieId"`
	Movie   models.Movie `bson:"movie"`
}

func favoriteKey(userID string, movieID int) string {
	return userID + ":" + strconv.Itoa(movieID)
}

// mongoStore persists favorites in a single flat collection keyed by the
// (user, movie) pair.
type mongoStore struct {
	col *mongo.Collection
}

// NewMongoStore creates a Store backed by the given collection.
func NewMongoStore(col *mongo.Collection) Store {
	return &mongoStore{col: col}
}

func (s *mongoStore) Put(ctx context.Context, userID string, movie models.Movie) error {
	doc := favoriteDoc{
		ID:      favoriteKey(userID, movie.ID),
		UserID:  userID,
		MovieID: movie.ID,
		Movie:   movie,
	}

	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert favorite: %w", err)
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, userID string, movieID int) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": favoriteKey(userID, movieID)})
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

func (s *mongoStore) Exists(ctx context.Context, userID string, movieID int) (bool, error) {
	err := s.col.FindOne(ctx, bson.M{"_id": favoriteKey(userID, movieID)}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find favorite: %w", err)
	}
	return true, nil
}

func (s *mongoStore) List(ctx context.Context, userID string) ([]models.Movie, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	for cursor.Next(ctx) {
		var doc favoriteDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		movies = append(movies, doc.Movie)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return movies, nil
}
