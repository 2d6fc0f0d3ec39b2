package contract

import (
	"context"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// IReportRepository is the persistence contract for lesson reports.
type IReportRepository interface {
	Insert(ctx context.Context, report *entity.LessonReport) (string, error)
	// ListAll returns every report, newest first.
	ListAll(ctx context.Context) ([]entity.LessonReport, error)
	UpdateStatus(ctx context.Context, id string, status string) (int64, error)
}
