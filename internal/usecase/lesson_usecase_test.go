package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
	"github.com/skn143/lifelessons/internal/handler/http/mocks"
	"github.com/skn143/lifelessons/internal/infrastructure/logger"
	"github.com/skn143/lifelessons/internal/usecase"
)

// memoryLessonCache is an in-process ILessonCache for tests.
type memoryLessonCache struct {
	pages map[string][]entity.Lesson
	hits  int
}

var _ contract.ILessonCache = (*memoryLessonCache)(nil)

func newMemoryLessonCache() *memoryLessonCache {
	return &memoryLessonCache{pages: map[string][]entity.Lesson{}}
}

func (m *memoryLessonCache) GetLessonsPage(ctx context.Context, key string) ([]entity.Lesson, bool, error) {
	lessons, ok := m.pages[key]
	if ok {
		m.hits++
	}
	return lessons, ok, nil
}

func (m *memoryLessonCache) SetLessonsPage(ctx context.Context, key string, lessons []entity.Lesson) error {
	m.pages[key] = lessons
	return nil
}

func (m *memoryLessonCache) InvalidateLessonLists(ctx context.Context) error {
	m.pages = map[string][]entity.Lesson{}
	return nil
}

func TestList_ServesSecondReadFromCache(t *testing.T) {
	lessonRepo := mocks.NewFakeLessonRepository()
	lessonRepo.AddLesson(&entity.Lesson{Title: "Cached", Visibility: entity.VisibilityPublic, IsReviewed: entity.ReviewStateReviewed})
	cache := newMemoryLessonCache()

	uc := usecase.NewLessonUsecase(lessonRepo, logger.NewStdLogger())
	uc.SetLessonCache(cache)
	filter := contract.LessonFilter{IsPublic: entity.VisibilityPublic}

	first, err := uc.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 0, cache.hits)

	second, err := uc.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.hits)
}

func TestCreate_InvalidatesCachedLists(t *testing.T) {
	lessonRepo := mocks.NewFakeLessonRepository()
	cache := newMemoryLessonCache()

	uc := usecase.NewLessonUsecase(lessonRepo, logger.NewStdLogger())
	uc.SetLessonCache(cache)

	_, err := uc.List(context.Background(), contract.LessonFilter{})
	assert.NoError(t, err)
	assert.Len(t, cache.pages, 1)

	_, err = uc.Create(context.Background(), map[string]interface{}{"title": "Fresh"})
	assert.NoError(t, err)
	assert.Empty(t, cache.pages)

	lessons, err := uc.List(context.Background(), contract.LessonFilter{})
	assert.NoError(t, err)
	assert.Len(t, lessons, 1)
}

func TestFetch_NotFoundPassesThrough(t *testing.T) {
	uc := usecase.NewLessonUsecase(mocks.NewFakeLessonRepository(), logger.NewStdLogger())

	_, err := uc.Fetch(context.Background(), "64b0c47f2f9b8c0012345678")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}
