package usecase

import (
	"context"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

const defaultCommentPageSize = 20

// CommentUsecase handles the append-only comment feed.
type CommentUsecase struct {
	commentRepo contract.ICommentRepository
}

// NewCommentUsecase creates and returns a new CommentUsecase instance.
func NewCommentUsecase(commentRepo contract.ICommentRepository) *CommentUsecase {
	return &CommentUsecase{commentRepo: commentRepo}
}

// List returns a newest-first page of a lesson's comments together with
// the total count. Negative skip clamps to zero and a non-positive limit
// falls back to the default page size.
func (u *CommentUsecase) List(ctx context.Context, lessonID string, skip, limit int64) ([]entity.Comment, int64, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultCommentPageSize
	}

	comments, err := u.commentRepo.ListByLesson(ctx, lessonID, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := u.commentRepo.CountByLesson(ctx, lessonID)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Create appends a comment and returns the generated id.
func (u *CommentUsecase) Create(ctx context.Context, comment *entity.Comment) (string, error) {
	return u.commentRepo.Insert(ctx, comment)
}
