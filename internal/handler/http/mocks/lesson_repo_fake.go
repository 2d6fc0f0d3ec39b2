package mocks

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// FakeLessonRepository is an in-memory ILessonRepository for tests.
type FakeLessonRepository struct {
	Lessons map[string]*entity.Lesson // keyed by hex id

	ShouldFail bool
}

var _ contract.ILessonRepository = (*FakeLessonRepository)(nil)

func NewFakeLessonRepository() *FakeLessonRepository {
	return &FakeLessonRepository{Lessons: map[string]*entity.Lesson{}}
}

// AddLesson seeds a lesson and returns its generated hex id.
func (f *FakeLessonRepository) AddLesson(lesson *entity.Lesson) string {
	if lesson.ID.IsZero() {
		lesson.ID = primitive.NewObjectID()
	}
	if lesson.Likes == nil {
		lesson.Likes = []string{}
	}
	f.Lessons[lesson.ID.Hex()] = lesson
	return lesson.ID.Hex()
}

func (f *FakeLessonRepository) lookup(id string) (*entity.Lesson, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, contract.ErrInvalidID
	}
	lesson, ok := f.Lessons[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return lesson, nil
}

func (f *FakeLessonRepository) GetAndIncrementViews(ctx context.Context, id string) (*entity.Lesson, error) {
	if f.ShouldFail {
		return nil, errors.New("lesson fetch failed")
	}
	lesson, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	lesson.Views++
	copied := *lesson
	return &copied, nil
}

func (f *FakeLessonRepository) GetByID(ctx context.Context, id string) (*entity.Lesson, error) {
	if f.ShouldFail {
		return nil, errors.New("lesson fetch failed")
	}
	lesson, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	copied := *lesson
	return &copied, nil
}

func (f *FakeLessonRepository) List(ctx context.Context, filter contract.LessonFilter) ([]entity.Lesson, error) {
	if f.ShouldFail {
		return nil, errors.New("lesson list failed")
	}
	var out []entity.Lesson
	for id, l := range f.Lessons {
		if filter.IsPublic != "" && (l.Visibility != filter.IsPublic || l.IsReviewed != entity.ReviewStateReviewed) {
			continue
		}
		if filter.CreatorEmail != "" && l.CreatorEmail != filter.CreatorEmail {
			continue
		}
		if filter.Category != "" && filter.ExcludeID != "" {
			if l.Category != filter.Category || id == filter.ExcludeID {
				continue
			}
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *FakeLessonRepository) ListByCreator(ctx context.Context, email string) ([]entity.Lesson, error) {
	return f.List(ctx, contract.LessonFilter{CreatorEmail: email})
}

func (f *FakeLessonRepository) ListAll(ctx context.Context) ([]entity.Lesson, error) {
	return f.List(ctx, contract.LessonFilter{})
}

func (f *FakeLessonRepository) Insert(ctx context.Context, doc map[string]interface{}) (string, error) {
	if f.ShouldFail {
		return "", errors.New("lesson insert failed")
	}
	lesson := &entity.Lesson{
		ID:        primitive.NewObjectID(),
		Likes:     []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if title, ok := doc["title"].(string); ok {
		lesson.Title = title
	}
	if email, ok := doc["creatorEmail"].(string); ok {
		lesson.CreatorEmail = email
	}
	if category, ok := doc["category"].(string); ok {
		lesson.Category = category
	}
	f.Lessons[lesson.ID.Hex()] = lesson
	return lesson.ID.Hex(), nil
}

func (f *FakeLessonRepository) Patch(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	if f.ShouldFail {
		return 0, errors.New("lesson patch failed")
	}
	lesson, err := f.lookup(id)
	if err != nil {
		return 0, err
	}
	if title, ok := fields["title"].(string); ok {
		lesson.Title = title
	}
	lesson.UpdatedAt = time.Now()
	return 1, nil
}

func (f *FakeLessonRepository) SetField(ctx context.Context, id, field string, value interface{}) (int64, error) {
	if f.ShouldFail {
		return 0, errors.New("lesson update failed")
	}
	lesson, err := f.lookup(id)
	if err != nil {
		return 0, err
	}
	switch field {
	case "visibility":
		lesson.Visibility, _ = value.(string)
	case "accessLevel":
		lesson.AccessLevel, _ = value.(string)
	case "isReviewed":
		lesson.IsReviewed, _ = value.(string)
	case "isFeatured":
		lesson.IsFeatured, _ = value.(bool)
	}
	return 1, nil
}

func (f *FakeLessonRepository) Delete(ctx context.Context, id string) error {
	if f.ShouldFail {
		return errors.New("lesson delete failed")
	}
	if _, err := f.lookup(id); err != nil {
		return err
	}
	delete(f.Lessons, id)
	return nil
}

func (f *FakeLessonRepository) ToggleLike(ctx context.Context, id, email string) (*contract.ToggleLikeResult, error) {
	if f.ShouldFail {
		return nil, errors.New("like toggle failed")
	}
	lesson, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	for i, liker := range lesson.Likes {
		if liker == email {
			lesson.Likes = append(lesson.Likes[:i], lesson.Likes[i+1:]...)
			lesson.LikesCount--
			return &contract.ToggleLikeResult{Liked: false, NewLikesCount: lesson.LikesCount}, nil
		}
	}
	lesson.Likes = append(lesson.Likes, email)
	lesson.LikesCount++
	return &contract.ToggleLikeResult{Liked: true, NewLikesCount: lesson.LikesCount}, nil
}

func (f *FakeLessonRepository) IncFavoritesCount(ctx context.Context, id string, delta int) error {
	if f.ShouldFail {
		return errors.New("favorites count update failed")
	}
	lesson, err := f.lookup(id)
	if err != nil {
		return err
	}
	lesson.FavoritesCount += delta
	return nil
}

func (f *FakeLessonRepository) IncReportsCount(ctx context.Context, id string) error {
	if f.ShouldFail {
		return errors.New("reports count update failed")
	}
	lesson, err := f.lookup(id)
	if err != nil {
		return err
	}
	lesson.ReportsCount++
	return nil
}

func (f *FakeLessonRepository) Summaries(ctx context.Context, ids []string) ([]entity.LessonSummary, error) {
	if f.ShouldFail {
		return nil, errors.New("summaries failed")
	}
	var out []entity.LessonSummary
	for _, id := range ids {
		lesson, ok := f.Lessons[id]
		if !ok {
			continue
		}
		out = append(out, entity.LessonSummary{
			ID:            lesson.ID,
			Title:         lesson.Title,
			Category:      lesson.Category,
			EmotionalTone: lesson.EmotionalTone,
			CreatorName:   lesson.CreatorName,
			CreatedAt:     lesson.CreatedAt,
		})
	}
	return out, nil
}
