package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// ReportRepository represents the MongoDB implementation of the
// IReportRepository interface.
type ReportRepository struct {
	collection *mongo.Collection
}

// NewReportRepository creates and returns a new ReportRepository instance.
func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		collection: db.Collection("reports"),
	}
}

func (r *ReportRepository) Insert(ctx context.Context, report *entity.LessonReport) (string, error) {
	res, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *ReportRepository) ListAll(ctx context.Context) ([]entity.LessonReport, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := []entity.LessonReport{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) UpdateStatus(ctx context.Context, id string, status string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, fmt.Errorf("failed to update report status: %w", err)
	}
	if res.MatchedCount == 0 {
		return 0, contract.ErrNotFound
	}
	return res.ModifiedCount, nil
}
