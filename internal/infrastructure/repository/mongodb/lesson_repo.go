package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// LessonRepository represents the MongoDB implementation of the
// ILessonRepository interface.
type LessonRepository struct {
	collection *mongo.Collection
}

// NewLessonRepository creates and returns a new LessonRepository instance.
func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{
		collection: db.Collection("lessons"),
	}
}

// buildLessonFilter creates a BSON filter from LessonFilter options.
// Filters compose with AND; category + exclude-id only apply together.
func buildLessonFilter(opts contract.LessonFilter) (bson.M, error) {
	filter := bson.M{}

	if opts.IsPublic != "" {
		filter["visibility"] = opts.IsPublic
		filter["isReviewed"] = entity.ReviewStateReviewed
	}
	if opts.CreatorEmail != "" {
		filter["creatorEmail"] = opts.CreatorEmail
	}
	if opts.Category != "" && opts.ExcludeID != "" {
		oid, err := parseObjectID(opts.ExcludeID)
		if err != nil {
			return nil, err
		}
		filter["category"] = opts.Category
		filter["_id"] = bson.M{"$ne": oid}
	}

	return filter, nil
}

// GetAndIncrementViews counts the view and fetches the lesson in a single
// atomic operation. The returned document reflects the incremented count.
func (r *LessonRepository) GetAndIncrementViews(ctx context.Context, id string) (*entity.Lesson, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var lesson entity.Lesson
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&lesson)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lesson: %w", err)
	}
	return &lesson, nil
}

func (r *LessonRepository) GetByID(ctx context.Context, id string) (*entity.Lesson, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var lesson entity.Lesson
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&lesson)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return &lesson, nil
}

func (r *LessonRepository) List(ctx context.Context, opts contract.LessonFilter) ([]entity.Lesson, error) {
	filter, err := buildLessonFilter(opts)
	if err != nil {
		return nil, err
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	defer cursor.Close(ctx)

	lessons := []entity.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

func (r *LessonRepository) ListByCreator(ctx context.Context, email string) ([]entity.Lesson, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"creatorEmail": email}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons by creator: %w", err)
	}
	defer cursor.Close(ctx)

	lessons := []entity.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

func (r *LessonRepository) ListAll(ctx context.Context) ([]entity.Lesson, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list all lessons: %w", err)
	}
	defer cursor.Close(ctx)

	lessons := []entity.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// Insert stores the submitted document verbatim plus timestamps. Lessons
// are schema-light: no field allow-list is applied.
func (r *LessonRepository) Insert(ctx context.Context, doc map[string]interface{}) (string, error) {
	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert lesson: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *LessonRepository) Patch(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	fields["updatedAt"] = time.Now()

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("failed to patch lesson: %w", err)
	}
	if res.MatchedCount == 0 {
		return 0, contract.ErrNotFound
	}
	return res.ModifiedCount, nil
}

func (r *LessonRepository) SetField(ctx context.Context, id string, field string, value interface{}) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return 0, fmt.Errorf("failed to set lesson %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return 0, contract.ErrNotFound
	}
	return res.ModifiedCount, nil
}

func (r *LessonRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// ToggleLike flips the email's membership in likes. Membership change and
// likesCount adjustment ride in one update document so the count cannot
// drift from the set under concurrent toggles.
func (r *LessonRepository) ToggleLike(ctx context.Context, id string, email string) (*contract.ToggleLikeResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var lesson entity.Lesson
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&lesson); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load lesson for like toggle: %w", err)
	}

	liked := false
	for _, e := range lesson.Likes {
		if e == email {
			liked = true
			break
		}
	}

	var update bson.M
	if liked {
		update = bson.M{
			"$pull": bson.M{"likes": email},
			"$inc":  bson.M{"likesCount": -1},
		}
	} else {
		update = bson.M{
			"$addToSet": bson.M{"likes": email},
			"$inc":      bson.M{"likesCount": 1},
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated entity.Lesson
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	return &contract.ToggleLikeResult{
		Liked:         !liked,
		NewLikesCount: updated.LikesCount,
	}, nil
}

func (r *LessonRepository) IncFavoritesCount(ctx context.Context, id string, delta int) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"favoritesCount": delta}})
	if err != nil {
		return fmt.Errorf("failed to adjust lesson favoritesCount: %w", err)
	}
	return nil
}

func (r *LessonRepository) IncReportsCount(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"reportsCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment lesson reportsCount: %w", err)
	}
	return nil
}

// Summaries resolves lesson ids into display projections. Unparseable ids
// are skipped so a corrupted favorites list degrades to fewer rows, not
// an error.
func (r *LessonRepository) Summaries(ctx context.Context, ids []string) ([]entity.LessonSummary, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []entity.LessonSummary{}, nil
	}

	findOpts := options.Find().SetProjection(bson.M{
		"title":         1,
		"category":      1,
		"emotionalTone": 1,
		"creatorName":   1,
		"createdAt":     1,
	})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve favorite lessons: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []entity.LessonSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode lesson summaries: %w", err)
	}
	return summaries, nil
}
