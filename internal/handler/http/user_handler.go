package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/handler/http/dto"
	"github.com/skn143/lifelessons/internal/usecase"
)

type UserHandler struct {
	userUsecase *usecase.UserUsecase
}

func NewUserHandler(userUsecase *usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// CreateUserRequest is the self-registration payload.
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// SearchUsers performs a free-text match across displayName and email.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	searchText := c.Query("searchText")

	users, err := h.userUsecase.Search(c.Request.Context(), searchText)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to search users")
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// GetUserByEmail returns the full user document, or a single projected
// field with a default when the `role` or `isPremium` query flag is set.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")

	if c.Query("role") != "" {
		role, err := h.userUsecase.RoleOf(c.Request.Context(), email)
		if err != nil {
			ErrorHandler(c, http.StatusInternalServerError, "Failed to look up user role")
			return
		}
		SuccessHandler(c, http.StatusOK, dto.RoleResponse{Role: role})
		return
	}

	if c.Query("isPremium") != "" {
		premium, err := h.userUsecase.IsPremiumOf(c.Request.Context(), email)
		if err != nil {
			ErrorHandler(c, http.StatusInternalServerError, "Failed to look up premium status")
			return
		}
		SuccessHandler(c, http.StatusOK, dto.PremiumResponse{IsPremium: premium})
		return
	}

	user, err := h.userUsecase.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			// Absent user is not an error for this lookup.
			SuccessHandler(c, http.StatusOK, nil)
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to look up user")
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// ListUsers returns all users, optionally filtered to an exact email.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list users")
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// CreateUser registers a user. Registration is idempotent by email.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	created, err := h.userUsecase.Register(c.Request.Context(), req.Email, req.DisplayName, req.PhotoURL)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	if !created {
		MessageHandler(c, http.StatusOK, "User already exists")
		return
	}
	MessageHandler(c, http.StatusCreated, "User created successfully")
}

// UpdateUserRole sets a user's role to the submitted value.
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role"`
	}
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	modified, err := h.userUsecase.UpdateRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "User not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to update role")
		}
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"modifiedCount": modified})
}

// DeleteUser removes a user by id. A malformed id is rejected before
// any store mutation.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	err := h.userUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrInvalidID):
			ErrorHandler(c, http.StatusBadRequest, "invalid Id")
		case errors.Is(err, contract.ErrNotFound):
			ErrorHandler(c, http.StatusNotFound, "User not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted successfully")
}
