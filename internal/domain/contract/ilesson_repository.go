package contract

import (
	"context"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// LessonFilter narrows lesson listings. Filters compose with AND.
type LessonFilter struct {
	// IsPublic, when non-empty, matches visibility and additionally
	// constrains isReviewed to the reviewed state.
	IsPublic     string
	CreatorEmail string
	// Category and ExcludeID are used together for "related lessons":
	// same category, excluding the lesson being viewed.
	Category  string
	ExcludeID string
}

// ToggleLikeResult reports the outcome of a like toggle. NewLikesCount is
// read from the post-update document, not recomputed from a snapshot.
type ToggleLikeResult struct {
	Liked         bool
	NewLikesCount int
}

// ILessonRepository is the persistence contract for the lessons collection.
type ILessonRepository interface {
	// GetAndIncrementViews fetches a lesson and counts the view in one
	// atomic operation, returning the post-increment document.
	GetAndIncrementViews(ctx context.Context, id string) (*entity.Lesson, error)
	GetByID(ctx context.Context, id string) (*entity.Lesson, error)
	List(ctx context.Context, filter LessonFilter) ([]entity.Lesson, error)
	ListByCreator(ctx context.Context, email string) ([]entity.Lesson, error)
	ListAll(ctx context.Context) ([]entity.Lesson, error)
	// Insert stores the submitted document verbatim plus timestamps and
	// returns the generated id.
	Insert(ctx context.Context, doc map[string]interface{}) (string, error)
	// Patch merges the submitted fields into the stored document.
	Patch(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	// SetField sets a single field, reporting how many documents changed.
	SetField(ctx context.Context, id string, field string, value interface{}) (int64, error)
	Delete(ctx context.Context, id string) error
	// ToggleLike adds the email to likes if absent or removes it if
	// present, adjusting likesCount in the same update document.
	ToggleLike(ctx context.Context, id string, email string) (*ToggleLikeResult, error)
	IncFavoritesCount(ctx context.Context, id string, delta int) error
	IncReportsCount(ctx context.Context, id string) error
	// Summaries resolves lesson ids into display summaries, skipping ids
	// that do not parse or no longer exist.
	Summaries(ctx context.Context, ids []string) ([]entity.LessonSummary, error)
}
