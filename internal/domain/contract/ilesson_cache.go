package contract

import (
	"context"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// ILessonCache caches lesson list pages. Implementations are optional;
// a nil cache means every listing hits the store.
type ILessonCache interface {
	GetLessonsPage(ctx context.Context, key string) ([]entity.Lesson, bool, error)
	SetLessonsPage(ctx context.Context, key string, lessons []entity.Lesson) error
	InvalidateLessonLists(ctx context.Context) error
}
