package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/handler/http/dto"
	"github.com/skn143/lifelessons/internal/usecase"
)

// AdminLessonHandler carries the moderation-side lesson operations.
type AdminLessonHandler struct {
	lessonUsecase *usecase.LessonUsecase
}

func NewAdminLessonHandler(lessonUsecase *usecase.LessonUsecase) *AdminLessonHandler {
	return &AdminLessonHandler{lessonUsecase: lessonUsecase}
}

func (h *AdminLessonHandler) setField(c *gin.Context, field string, value interface{}, failMsg string) {
	modified, err := h.lessonUsecase.SetField(c.Request.Context(), c.Param("id"), field, value)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, failMsg)
		}
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"modifiedCount": modified})
}

// ListAllLessons returns every lesson regardless of visibility or
// review state.
func (h *AdminLessonHandler) ListAllLessons(c *gin.Context) {
	lessons, err := h.lessonUsecase.ListAll(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// UpdateAccessLevel switches a lesson between free and premium.
func (h *AdminLessonHandler) UpdateAccessLevel(c *gin.Context) {
	var req struct {
		AccessLevel string `json:"accessLevel" binding:"required"`
	}
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	h.setField(c, "accessLevel", req.AccessLevel, "Failed to update access level")
}

// MarkReviewed sets a lesson's review state.
func (h *AdminLessonHandler) MarkReviewed(c *gin.Context) {
	var req struct {
		IsReviewed string `json:"isReviewed" binding:"required"`
	}
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	h.setField(c, "isReviewed", req.IsReviewed, "Failed to update review state")
}

// UpdateFeatured toggles the featured flag on a lesson.
func (h *AdminLessonHandler) UpdateFeatured(c *gin.Context) {
	var req struct {
		IsFeatured bool `json:"isFeatured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	h.setField(c, "isFeatured", req.IsFeatured, "Failed to update featured flag")
}

// UpdateVisibility is the moderation-side visibility override.
func (h *AdminLessonHandler) UpdateVisibility(c *gin.Context) {
	var req struct {
		Visibility string `json:"visibility" binding:"required"`
	}
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	_, err := h.lessonUsecase.SetField(c.Request.Context(), c.Param("id"), "visibility", req.Visibility)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to update visibility")
		}
		return
	}
	SuccessHandler(c, http.StatusOK, dto.SuccessResponse{Success: true})
}

// DeleteLesson is the moderation-side lesson takedown.
func (h *AdminLessonHandler) DeleteLesson(c *gin.Context) {
	err := h.lessonUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to delete lesson")
		}
		return
	}
	MessageHandler(c, http.StatusOK, "Lesson deleted successfully")
}
