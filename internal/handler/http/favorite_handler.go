package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/usecase"
)

type FavoriteHandler struct {
	favoriteUsecase *usecase.FavoriteUsecase
}

func NewFavoriteHandler(favoriteUsecase *usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUsecase: favoriteUsecase}
}

// ListFavoriteContents resolves the caller's favorites into lesson
// summaries for display.
func (h *FavoriteHandler) ListFavoriteContents(c *gin.Context) {
	email, ok := VerifiedEmail(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized access")
		return
	}

	views, err := h.favoriteUsecase.Contents(c.Request.Context(), email)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load favorite lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, views)
}

// ListFavoriteIDs returns the caller's raw favorite lesson ids.
func (h *FavoriteHandler) ListFavoriteIDs(c *gin.Context) {
	email, ok := VerifiedEmail(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ids, err := h.favoriteUsecase.IDs(c.Request.Context(), email)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	SuccessHandler(c, http.StatusOK, ids)
}

// ToggleFavorite flips the caller's favorite on a lesson.
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	email, ok := VerifiedEmail(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized access")
		return
	}

	result, err := h.favoriteUsecase.Toggle(c.Request.Context(), email, c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// RemoveFavorite services the dedicated removal route. It shares the
// toggle, so calling it on an absent entry re-adds the lesson; clients
// only reach it from a state where the entry exists.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	email, ok := VerifiedEmail(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized access")
		return
	}

	result, err := h.favoriteUsecase.Toggle(c.Request.Context(), email, c.Param("lessonId"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}
