package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/entity"
	handler "github.com/skn143/lifelessons/internal/handler/http"
	"github.com/skn143/lifelessons/internal/handler/http/mocks"
	"github.com/skn143/lifelessons/internal/usecase"
)

func setupReportRouter(reportRepo *mocks.FakeReportRepository, lessonRepo *mocks.FakeLessonRepository) *gin.Engine {
	h := handler.NewReportHandler(usecase.NewReportUsecase(reportRepo, lessonRepo))
	r := gin.New()
	r.POST("/lesson-reports", h.CreateReport)
	r.GET("/lesson-reports", h.ListReports)
	r.PATCH("/lesson-reports/:id/status", h.UpdateReportStatus)
	return r
}

func TestCreateReport_SnapshotsLesson(t *testing.T) {
	reportRepo := mocks.NewFakeReportRepository()
	lessonRepo := mocks.NewFakeLessonRepository()
	id := lessonRepo.AddLesson(&entity.Lesson{
		Title:        "Flagged",
		CreatorEmail: "creator@example.com",
		Category:     "career",
	})
	r := setupReportRouter(reportRepo, lessonRepo)

	body, _ := json.Marshal(handler.CreateReportRequest{
		LessonID:       id,
		ReporterUserID: "reporter-1",
		Reason:         "misleading advice",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/lesson-reports", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, reportRepo.Reports, 1)
	report := reportRepo.Reports[0]
	assert.Equal(t, "Flagged", report.LessonTitle)
	assert.Equal(t, "creator@example.com", report.LessonCreatorEmail)
	assert.Equal(t, entity.ReportStatusPending, report.Status)
	assert.Equal(t, 1, lessonRepo.Lessons[id].ReportsCount)
}

func TestCreateReport_LessonMissing(t *testing.T) {
	reportRepo := mocks.NewFakeReportRepository()
	r := setupReportRouter(reportRepo, mocks.NewFakeLessonRepository())

	body, _ := json.Marshal(handler.CreateReportRequest{
		LessonID: primitive.NewObjectID().Hex(),
		Reason:   "spam",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/lesson-reports", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, reportRepo.Reports)
}

func TestUpdateReportStatus(t *testing.T) {
	reportRepo := mocks.NewFakeReportRepository()
	lessonRepo := mocks.NewFakeLessonRepository()
	report := &entity.LessonReport{Reason: "spam", Status: entity.ReportStatusPending}
	_, err := reportRepo.Insert(context.Background(), report)
	assert.NoError(t, err)
	r := setupReportRouter(reportRepo, lessonRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/lesson-reports/"+report.ID.Hex()+"/status", bytes.NewBufferString(`{"status":"resolved"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.ReportStatusResolved, report.Status)
}
