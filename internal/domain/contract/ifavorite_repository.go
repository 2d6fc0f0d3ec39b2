package contract

import (
	"context"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// IFavoriteRepository is the persistence contract for the per-user
// FavoriteRecord aggregate.
type IFavoriteRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.FavoriteRecord, error)
	Create(ctx context.Context, record *entity.FavoriteRecord) error
	// AddLesson adds the id with set semantics and increments the count.
	AddLesson(ctx context.Context, email string, lessonID string) error
	// RemoveLesson pulls the id and decrements the count.
	RemoveLesson(ctx context.Context, email string, lessonID string) error
}
