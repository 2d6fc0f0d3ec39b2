package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/entity"
	handler "github.com/skn143/lifelessons/internal/handler/http"
	"github.com/skn143/lifelessons/internal/handler/http/mocks"
	"github.com/skn143/lifelessons/internal/usecase"
)

func setupCommentRouter(commentRepo *mocks.FakeCommentRepository) *gin.Engine {
	h := handler.NewCommentHandler(usecase.NewCommentUsecase(commentRepo))
	r := gin.New()
	r.GET("/comments", h.ListComments)
	r.POST("/comments", h.CreateComment)
	return r
}

func TestListComments_RequiresLessonID(t *testing.T) {
	r := setupCommentRouter(mocks.NewFakeCommentRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "lessonId is required")
}

func TestListComments_PaginatedWithTotal(t *testing.T) {
	commentRepo := mocks.NewFakeCommentRepository()
	lessonID := primitive.NewObjectID()
	for i := 0; i < 3; i++ {
		commentRepo.Comments = append(commentRepo.Comments, entity.Comment{
			ID:        primitive.NewObjectID(),
			LessonID:  lessonID,
			Comment:   "insightful",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		})
	}
	r := setupCommentRouter(commentRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/comments?lessonId="+lessonID.Hex()+"&skip=0&limit=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Comments   []entity.Comment `json:"comments"`
		TotalCount int64            `json:"totalCount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Comments, 2)
	assert.Equal(t, int64(3), resp.TotalCount)
}

func TestListComments_ClampsBadPagination(t *testing.T) {
	commentRepo := mocks.NewFakeCommentRepository()
	lessonID := primitive.NewObjectID()
	commentRepo.Comments = append(commentRepo.Comments, entity.Comment{
		ID:        primitive.NewObjectID(),
		LessonID:  lessonID,
		Comment:   "still here",
		CreatedAt: time.Now(),
	})
	r := setupCommentRouter(commentRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/comments?lessonId="+lessonID.Hex()+"&skip=-5&limit=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Comments   []entity.Comment `json:"comments"`
		TotalCount int64            `json:"totalCount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Comments, 1)
}

func TestCreateComment(t *testing.T) {
	commentRepo := mocks.NewFakeCommentRepository()
	r := setupCommentRouter(commentRepo)

	body, _ := json.Marshal(handler.CreateCommentRequest{
		LessonID:  primitive.NewObjectID().Hex(),
		Comment:   "this changed how I think",
		UserEmail: "fan@example.com",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "insertedId")
	assert.Len(t, commentRepo.Comments, 1)
}

func TestCreateComment_MissingFields(t *testing.T) {
	r := setupCommentRouter(mocks.NewFakeCommentRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewBufferString(`{"comment":"orphan"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "lessonId and comment are required")
}
