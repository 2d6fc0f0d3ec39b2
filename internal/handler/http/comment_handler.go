package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
	"github.com/skn143/lifelessons/internal/usecase"
)

type CommentHandler struct {
	commentUsecase *usecase.CommentUsecase
}

func NewCommentHandler(commentUsecase *usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

// CreateCommentRequest is the comment submission payload.
type CreateCommentRequest struct {
	LessonID  string `json:"lessonId" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
}

// ListComments returns a newest-first page of a lesson's comments plus
// the total count for the lesson.
func (h *CommentHandler) ListComments(c *gin.Context) {
	lessonID := c.Query("lessonId")
	if lessonID == "" {
		ErrorHandler(c, http.StatusBadRequest, "lessonId is required")
		return
	}

	skip, _ := strconv.ParseInt(c.Query("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	comments, total, err := h.commentUsecase.List(c.Request.Context(), lessonID, skip, limit)
	if err != nil {
		if errors.Is(err, contract.ErrInvalidID) {
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list comments")
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"comments": comments, "totalCount": total})
}

// CreateComment appends a comment to a lesson.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "lessonId and comment are required")
		return
	}

	lessonOID, err := primitive.ObjectIDFromHex(req.LessonID)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		return
	}

	comment := &entity.Comment{
		LessonID:  lessonOID,
		Comment:   req.Comment,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		UserPhoto: req.UserPhoto,
	}
	insertedID, err := h.commentUsecase.Create(c.Request.Context(), comment)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	SuccessHandler(c, http.StatusCreated, gin.H{"success": true, "insertedId": insertedID})
}
