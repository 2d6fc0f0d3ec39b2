package contract

import (
	"context"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// ICommentRepository is the persistence contract for lesson comments.
type ICommentRepository interface {
	Insert(ctx context.Context, comment *entity.Comment) (string, error)
	// ListByLesson returns a createdAt-descending page of comments.
	ListByLesson(ctx context.Context, lessonID string, skip, limit int64) ([]entity.Comment, error)
	CountByLesson(ctx context.Context, lessonID string) (int64, error)
}
