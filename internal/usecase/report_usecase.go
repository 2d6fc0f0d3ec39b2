package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// ReportUsecase handles lesson reports and their moderation.
type ReportUsecase struct {
	reportRepo contract.IReportRepository
	lessonRepo contract.ILessonRepository
}

// NewReportUsecase creates and returns a new ReportUsecase instance.
func NewReportUsecase(reportRepo contract.IReportRepository, lessonRepo contract.ILessonRepository) *ReportUsecase {
	return &ReportUsecase{
		reportRepo: reportRepo,
		lessonRepo: lessonRepo,
	}
}

// Create snapshots the reported lesson's title, creator and category
// into a pending report, and bumps the lesson's reportsCount.
func (u *ReportUsecase) Create(ctx context.Context, lessonID, reporterUserID, reason string) (string, *entity.LessonReport, error) {
	lesson, err := u.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return "", nil, err
	}

	report := &entity.LessonReport{
		LessonID:           lessonID,
		LessonTitle:        lesson.Title,
		LessonCreatorEmail: lesson.CreatorEmail,
		LessonCategory:     lesson.Category,
		ReporterUserID:     reporterUserID,
		Reason:             reason,
		Status:             entity.ReportStatusPending,
		Timestamp:          time.Now(),
	}

	if err := u.lessonRepo.IncReportsCount(ctx, lessonID); err != nil {
		return "", nil, fmt.Errorf("failed to count report on lesson: %w", err)
	}

	id, err := u.reportRepo.Insert(ctx, report)
	if err != nil {
		return "", nil, err
	}
	return id, report, nil
}

// List returns every report, newest first.
func (u *ReportUsecase) List(ctx context.Context) ([]entity.LessonReport, error) {
	return u.reportRepo.ListAll(ctx)
}

// UpdateStatus sets the report status to the exact submitted value.
func (u *ReportUsecase) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	return u.reportRepo.UpdateStatus(ctx, id, status)
}
