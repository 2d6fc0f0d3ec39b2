package usecase

import (
	"context"
	"fmt"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// LessonUsecase handles lesson CRUD, listings and the like toggle.
type LessonUsecase struct {
	lessonRepo contract.ILessonRepository
	cache      contract.ILessonCache
	logger     contract.IAppLogger
}

// NewLessonUsecase creates and returns a new LessonUsecase instance.
func NewLessonUsecase(lessonRepo contract.ILessonRepository, logger contract.IAppLogger) *LessonUsecase {
	return &LessonUsecase{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// SetLessonCache wires an optional list cache.
func (u *LessonUsecase) SetLessonCache(cache contract.ILessonCache) {
	u.cache = cache
}

func listKey(f contract.LessonFilter) string {
	return fmt.Sprintf("lessons:list:%s:%s:%s:%s", f.IsPublic, f.CreatorEmail, f.Category, f.ExcludeID)
}

// Fetch returns a lesson by id, counting the view. Every successful
// fetch increments views, repeated fetches by the same viewer included.
func (u *LessonUsecase) Fetch(ctx context.Context, id string) (*entity.Lesson, error) {
	return u.lessonRepo.GetAndIncrementViews(ctx, id)
}

// List returns lessons matching the filter, served from cache when one
// is wired. Cache failures fall through to the store.
func (u *LessonUsecase) List(ctx context.Context, filter contract.LessonFilter) ([]entity.Lesson, error) {
	key := listKey(filter)
	if u.cache != nil {
		if lessons, ok, err := u.cache.GetLessonsPage(ctx, key); err == nil && ok {
			return lessons, nil
		}
	}

	lessons, err := u.lessonRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetLessonsPage(ctx, key, lessons); err != nil {
			u.logger.Warnf("lesson list cache set failed: %v", err)
		}
	}
	return lessons, nil
}

// Create stores the submitted document verbatim plus timestamps and
// returns the generated id.
func (u *LessonUsecase) Create(ctx context.Context, doc map[string]interface{}) (string, error) {
	id, err := u.lessonRepo.Insert(ctx, doc)
	if err != nil {
		return "", err
	}
	u.invalidateLists(ctx)
	return id, nil
}

// Patch merges the submitted fields into the stored document. There is
// no field allow-list; the caller can overwrite any field.
func (u *LessonUsecase) Patch(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	modified, err := u.lessonRepo.Patch(ctx, id, fields)
	if err != nil {
		return 0, err
	}
	u.invalidateLists(ctx)
	return modified, nil
}

// SetField performs a single-field moderation update (visibility,
// accessLevel, isReviewed, isFeatured).
func (u *LessonUsecase) SetField(ctx context.Context, id, field string, value interface{}) (int64, error) {
	modified, err := u.lessonRepo.SetField(ctx, id, field, value)
	if err != nil {
		return 0, err
	}
	u.invalidateLists(ctx)
	return modified, nil
}

// Delete removes a lesson by id.
func (u *LessonUsecase) Delete(ctx context.Context, id string) error {
	if err := u.lessonRepo.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidateLists(ctx)
	return nil
}

// ToggleLike flips the caller's like on a lesson.
func (u *LessonUsecase) ToggleLike(ctx context.Context, id, email string) (*contract.ToggleLikeResult, error) {
	return u.lessonRepo.ToggleLike(ctx, id, email)
}

// ListByCreator returns a creator's lessons, newest first.
func (u *LessonUsecase) ListByCreator(ctx context.Context, email string) ([]entity.Lesson, error) {
	return u.lessonRepo.ListByCreator(ctx, email)
}

// ListAll returns every lesson regardless of visibility or review state.
func (u *LessonUsecase) ListAll(ctx context.Context) ([]entity.Lesson, error) {
	return u.lessonRepo.ListAll(ctx)
}

func (u *LessonUsecase) invalidateLists(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateLessonLists(ctx); err != nil {
		u.logger.Warnf("lesson list cache invalidation failed: %v", err)
	}
}
