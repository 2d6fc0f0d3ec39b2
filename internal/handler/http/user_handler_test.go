package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/entity"
	handler "github.com/skn143/lifelessons/internal/handler/http"
	"github.com/skn143/lifelessons/internal/handler/http/mocks"
	"github.com/skn143/lifelessons/internal/infrastructure/logger"
	"github.com/skn143/lifelessons/internal/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupUserRouter(userRepo *mocks.FakeUserRepository) *gin.Engine {
	h := handler.NewUserHandler(usecase.NewUserUsecase(userRepo, logger.NewStdLogger()))
	r := gin.New()
	r.POST("/users", h.CreateUser)
	r.GET("/users/:email", h.GetUserByEmail)
	r.GET("/users", h.ListUsers)
	r.DELETE("/users/:id", h.DeleteUser)
	r.PATCH("/users/:id/role", h.UpdateUserRole)
	return r
}

func TestCreateUser(t *testing.T) {
	userRepo := mocks.NewFakeUserRepository()
	r := setupUserRouter(userRepo)

	body, _ := json.Marshal(handler.CreateUserRequest{Email: "new@example.com", DisplayName: "New User"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User created successfully")
	assert.Equal(t, entity.DefaultRole(), userRepo.Users["new@example.com"].Role)
	assert.False(t, userRepo.Users["new@example.com"].IsPremium)
}

func TestCreateUser_AlreadyExists(t *testing.T) {
	userRepo := mocks.NewFakeUserRepository()
	r := setupUserRouter(userRepo)

	body, _ := json.Marshal(handler.CreateUserRequest{Email: "dup@example.com"})
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if i == 0 {
			assert.Equal(t, http.StatusCreated, w.Code)
		} else {
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "User already exists")
		}
	}
	assert.Len(t, userRepo.Users, 1)
}

func TestCreateUser_MissingEmail(t *testing.T) {
	r := setupUserRouter(mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(`{"displayName":"No Email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserByEmail_RoleDefault(t *testing.T) {
	r := setupUserRouter(mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/ghost@example.com?role=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"user"}`, w.Body.String())
}

func TestGetUserByEmail_PremiumDefault(t *testing.T) {
	r := setupUserRouter(mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/ghost@example.com?isPremium=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isPremium":false}`, w.Body.String())
}

func TestGetUserByEmail_AbsentReturnsNull(t *testing.T) {
	r := setupUserRouter(mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/ghost@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestGetUserByEmail_RoleProjection(t *testing.T) {
	userRepo := mocks.NewFakeUserRepository()
	userRepo.Users["admin@example.com"] = &entity.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
		Role:  entity.UserRoleAdmin,
	}
	r := setupUserRouter(userRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/admin@example.com?role=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())
}

func TestDeleteUser_MalformedID(t *testing.T) {
	r := setupUserRouter(mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/not-a-hex-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserRole(t *testing.T) {
	userRepo := mocks.NewFakeUserRepository()
	user := &entity.User{ID: primitive.NewObjectID(), Email: "promote@example.com", Role: entity.UserRoleUser}
	userRepo.Users[user.Email] = user
	r := setupUserRouter(userRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/"+user.ID.Hex()+"/role", bytes.NewBufferString(`{"role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.UserRoleAdmin, user.Role)
}
