package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/handler/http/dto"
	"github.com/skn143/lifelessons/internal/usecase"
)

type LessonHandler struct {
	lessonUsecase *usecase.LessonUsecase
}

func NewLessonHandler(lessonUsecase *usecase.LessonUsecase) *LessonHandler {
	return &LessonHandler{lessonUsecase: lessonUsecase}
}

// GetLesson returns one lesson and counts the view.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	lesson, err := h.lessonUsecase.Fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch lesson")
		}
		return
	}
	SuccessHandler(c, http.StatusOK, lesson)
}

// ListLessons returns lessons matching the query filters, all ANDed:
// isPublic narrows to public reviewed lessons, email to a creator, and
// category together with id to same-category lessons excluding that id.
func (h *LessonHandler) ListLessons(c *gin.Context) {
	filter := contract.LessonFilter{
		IsPublic:     c.Query("isPublic"),
		CreatorEmail: c.Query("email"),
	}
	if category := c.Query("category"); category != "" && c.Query("id") != "" {
		filter.Category = category
		filter.ExcludeID = c.Query("id")
	}

	lessons, err := h.lessonUsecase.List(c.Request.Context(), filter)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// CreateLesson stores the submitted document as-is plus timestamps.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := h.lessonUsecase.Create(c.Request.Context(), doc)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to create lesson")
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.InsertedResponse{Success: true, InsertedID: id})
}

// UpdateLesson merges the submitted fields into the lesson document.
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	modified, err := h.lessonUsecase.Patch(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to update lesson")
		}
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"modifiedCount": modified})
}

// UpdateLessonVisibility flips a lesson between public and private.
func (h *LessonHandler) UpdateLessonVisibility(c *gin.Context) {
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

// ToggleLike flips the caller's like on a lesson and reports the count
// as it stands after the flip.
func (h *LessonHandler) ToggleLike(c *gin.Context) {
	email, ok := VerifiedEmail(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized access")
		return
	}

	result, err := h.lessonUsecase.ToggleLike(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to toggle like")
		}
		return
	}

	message := "Lesson disliked successfully."
	if result.Liked {
		message = "Lesson liked successfully."
	}
	SuccessHandler(c, http.StatusOK, dto.LikeToggleResponse{Message: message, NewLikesCount: result.NewLikesCount})
}

// DeleteLesson removes a lesson by id.
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
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

// ListLessonsByCreator returns a creator's lessons, newest first.
func (h *LessonHandler) ListLessonsByCreator(c *gin.Context) {
	lessons, err := h.lessonUsecase.ListByCreator(c.Request.Context(), c.Param("email"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}
