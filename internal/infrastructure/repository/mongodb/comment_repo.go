package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// CommentRepository represents the MongoDB implementation of the
// ICommentRepository interface. Comments are append-only.
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates and returns a new CommentRepository instance.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
	}
}

func (r *CommentRepository) Insert(ctx context.Context, comment *entity.Comment) (string, error) {
	comment.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return "", fmt.Errorf("failed to insert comment: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *CommentRepository) ListByLesson(ctx context.Context, lessonID string, skip, limit int64) ([]entity.Comment, error) {
	oid, err := parseObjectID(lessonID)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"lessonId": oid}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []entity.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) CountByLesson(ctx context.Context, lessonID string) (int64, error) {
	oid, err := parseObjectID(lessonID)
	if err != nil {
		return 0, err
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"lessonId": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
