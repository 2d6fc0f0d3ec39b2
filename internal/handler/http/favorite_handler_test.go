package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/skn143/lifelessons/internal/domain/entity"
	handler "github.com/skn143/lifelessons/internal/handler/http"
	"github.com/skn143/lifelessons/internal/handler/http/mocks"
	"github.com/skn143/lifelessons/internal/usecase"
)

func setupFavoriteRouter(favoriteRepo *mocks.FakeFavoriteRepository, lessonRepo *mocks.FakeLessonRepository, email string) *gin.Engine {
	h := handler.NewFavoriteHandler(usecase.NewFavoriteUsecase(favoriteRepo, lessonRepo))
	r := gin.New()
	r.Use(asUser(email))
	r.GET("/lessons/favorite/lessons-content", h.ListFavoriteContents)
	r.GET("/favorite/lesson", h.ListFavoriteIDs)
	r.PATCH("/lessons/favorite/:id", h.ToggleFavorite)
	r.PATCH("/favorites/remove/:id/:lessonId", h.RemoveFavorite)
	return r
}

func TestToggleFavorite_FirstCreatesRecord(t *testing.T) {
	favoriteRepo := mocks.NewFakeFavoriteRepository()
	lessonRepo := mocks.NewFakeLessonRepository()
	id := lessonRepo.AddLesson(&entity.Lesson{Title: "Keeper"})
	r := setupFavoriteRouter(favoriteRepo, lessonRepo, "fan@example.com")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/lessons/favorite/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorited":true,"favoritesCount":1}`, w.Body.String())
	assert.Equal(t, 1, lessonRepo.Lessons[id].FavoritesCount)
	assert.True(t, favoriteRepo.Records["fan@example.com"].Contains(id))
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	favoriteRepo := mocks.NewFakeFavoriteRepository()
	lessonRepo := mocks.NewFakeLessonRepository()
	id := lessonRepo.AddLesson(&entity.Lesson{Title: "Keeper"})
	r := setupFavoriteRouter(favoriteRepo, lessonRepo, "fan@example.com")

	for _, want := range []string{
		`{"favorited":true,"favoritesCount":1}`,
		`{"favorited":false,"favoritesCount":0}`,
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/lessons/favorite/"+id, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, want, w.Body.String())
	}
	assert.Equal(t, 0, lessonRepo.Lessons[id].FavoritesCount)
	assert.False(t, favoriteRepo.Records["fan@example.com"].Contains(id))
}

func TestRemoveFavorite_SharesToggle(t *testing.T) {
	favoriteRepo := mocks.NewFakeFavoriteRepository()
	lessonRepo := mocks.NewFakeLessonRepository()
	id := lessonRepo.AddLesson(&entity.Lesson{Title: "Keeper"})
	r := setupFavoriteRouter(favoriteRepo, lessonRepo, "fan@example.com")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/lessons/favorite/"+id, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PATCH", "/favorites/remove/rec/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorited":false,"favoritesCount":0}`, w.Body.String())
}

func TestListFavoriteIDs_EmptyWithoutRecord(t *testing.T) {
	r := setupFavoriteRouter(mocks.NewFakeFavoriteRepository(), mocks.NewFakeLessonRepository(), "fan@example.com")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/favorite/lesson", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListFavoriteContents(t *testing.T) {
	favoriteRepo := mocks.NewFakeFavoriteRepository()
	lessonRepo := mocks.NewFakeLessonRepository()
	id := lessonRepo.AddLesson(&entity.Lesson{Title: "Keeper", Category: "resilience", CreatorName: "Asha"})
	r := setupFavoriteRouter(favoriteRepo, lessonRepo, "fan@example.com")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/lessons/favorite/"+id, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/lessons/favorite/lessons-content", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var views []entity.FavoriteLessonView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Len(t, views, 1)
	assert.Equal(t, "Keeper", views[0].LessonTitle)
	assert.Equal(t, id, views[0].LessonID.Hex())
}
