package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"filmora/models"
)

// mongoUserStore persists accounts in the users collection.
type mongoUserStore struct {
	col *mongo.Collection
}

// NewMongoUserStore creates a UserStore backed by the given collection.
func NewMongoUserStore(col *mongo.Collection) UserStore {
	return &mongoUserStore{col: col}
}

func (s *mongoUserStore) CreateUser(ctx context.Context, user models.User) error {
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *mongoUserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
