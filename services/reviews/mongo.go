package reviews

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"filmora/models"
)

// mongoStore persists reviews in the global movie_reviews collection,
// queried by equality on movieId ordered by timestamp descending.
type mongoStore struct {
	col *mongo.Collection
}

// NewMongoStore creates a Store backed by the given collection.
func NewMongoStore(col *mongo.Collection) Store {
	return &mongoStore{col: col}
}

func (s *mongoStore) Insert(ctx context.Context, review models.Review) error {
	if _, err := s.col.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (s *mongoStore) Get(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

func (s *mongoStore) Update(ctx context.Context, id, content string, timestamp int64) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"content":   content,
			"timestamp": timestamp,
			"isEdited":  true,
		},
	})
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

func (s *mongoStore) ForMovie(ctx context.Context, movieID int) ([]models.Review, error) {
	cursor, err := s.col.Find(ctx, bson.M{"movieId": movieID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}
