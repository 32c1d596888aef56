package profile

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"filmora/models"
)

// historyDoc is one viewed-movie entry owned by a user.
type historyDoc struct {
	ID     string `bson:"_id"` // userID:movieID
	UserID string `bson:"userId"`
	models.ViewedMovie `bson:",inline"`
}

// mongoStore persists viewing history in a flat collection keyed by the
// (user, movie) pair, read back by timestamp descending.
type mongoStore struct {
	col *mongo.Collection
}

// NewMongoStore creates a Store backed by the given collection.
func NewMongoStore(col *mongo.Collection) Store {
	return &mongoStore{col: col}
}

func (s *mongoStore) Upsert(ctx context.Context, userID string, entry models.ViewedMovie) error {
	doc := historyDoc{
		ID:          userID + ":" + strconv.Itoa(entry.MovieID),
		UserID:      userID,
		ViewedMovie: entry,
	}

	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert history entry: %w", err)
	}
	return nil
}

func (s *mongoStore) Recent(ctx context.Context, userID string, limit int) ([]models.ViewedMovie, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ViewedMovie
	for cursor.Next(ctx) {
		var doc historyDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode history entry: %w", err)
		}
		entries = append(entries, doc.ViewedMovie)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}
