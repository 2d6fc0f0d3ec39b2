package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/usecase"
)

type ReportHandler struct {
	reportUsecase *usecase.ReportUsecase
}

func NewReportHandler(reportUsecase *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// CreateReportRequest is the lesson report submission payload.
type CreateReportRequest struct {
	LessonID       string `json:"lessonId" binding:"required"`
	ReporterUserID string `json:"reporterUserId"`
	Reason         string `json:"reason" binding:"required"`
}

// CreateReport files a report against an existing lesson.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	id, report, err := h.reportUsecase.Create(c.Request.Context(), req.LessonID, req.ReporterUserID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to create report")
		}
		return
	}
	SuccessHandler(c, http.StatusCreated, gin.H{"insertedId": id, "report": report})
}

// ListReports returns every report for the moderation queue.
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportUsecase.List(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list reports")
		return
	}
	SuccessHandler(c, http.StatusOK, reports)
}

// UpdateReportStatus sets a report's moderation status.
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	modified, err := h.reportUsecase.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "Report not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to update report")
		}
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"modifiedCount": modified})
}
