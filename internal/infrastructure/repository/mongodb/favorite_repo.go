package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// FavoriteRepository represents the MongoDB implementation of the
// IFavoriteRepository interface. One document per user email.
type FavoriteRepository struct {
	collection *mongo.Collection
}

// NewFavoriteRepository creates and returns a new FavoriteRepository instance.
func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{
		collection: db.Collection("favoriteLessons"),
	}
}

func (r *FavoriteRepository) GetByEmail(ctx context.Context, email string) (*entity.FavoriteRecord, error) {
	var record entity.FavoriteRecord
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get favorite record: %w", err)
	}
	return &record, nil
}

func (r *FavoriteRepository) Create(ctx context.Context, record *entity.FavoriteRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to create favorite record: %w", err)
	}
	return nil
}

// AddLesson adds a lesson id with set semantics ($addToSet keeps the
// toggle duplicate-safe) and bumps the count in the same update.
func (r *FavoriteRepository) AddLesson(ctx context.Context, email string, lessonID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$addToSet": bson.M{"favorites": lessonID},
		"$inc":      bson.M{"favoritesCount": 1},
	})
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) RemoveLesson(ctx context.Context, email string, lessonID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$pull": bson.M{"favorites": lessonID},
		"$inc":  bson.M{"favoritesCount": -1},
	})
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}
