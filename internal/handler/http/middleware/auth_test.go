package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/entity"
	"github.com/skn143/lifelessons/internal/handler/http/middleware"
	"github.com/skn143/lifelessons/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupGatedRouter(verifier *mocks.FakeTokenVerifier, userRepo *mocks.FakeUserRepository) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleWare(verifier), func(c *gin.Context) {
		email, _ := c.Get(middleware.ContextEmailKey)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	r.GET("/admin", middleware.AuthMiddleWare(verifier), middleware.AdminOnly(userRepo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddleWare_MissingToken(t *testing.T) {
	r := setupGatedRouter(mocks.NewFakeTokenVerifier(), mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
}

func TestAuthMiddleWare_BadScheme(t *testing.T) {
	r := setupGatedRouter(mocks.NewFakeTokenVerifier(), mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleWare_InvalidToken(t *testing.T) {
	r := setupGatedRouter(mocks.NewFakeTokenVerifier(), mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddleWare_AttachesEmail(t *testing.T) {
	verifier := mocks.NewFakeTokenVerifier()
	verifier.Emails["good-token"] = "someone@example.com"
	r := setupGatedRouter(verifier, mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "someone@example.com")
}

func TestAdminOnly_RejectsNonAdmin(t *testing.T) {
	verifier := mocks.NewFakeTokenVerifier()
	verifier.Emails["user-token"] = "plain@example.com"
	userRepo := mocks.NewFakeUserRepository()
	userRepo.Users["plain@example.com"] = &entity.User{
		ID:    primitive.NewObjectID(),
		Email: "plain@example.com",
		Role:  entity.UserRoleUser,
	}
	r := setupGatedRouter(verifier, userRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden access")
}

func TestAdminOnly_RejectsUnknownUser(t *testing.T) {
	verifier := mocks.NewFakeTokenVerifier()
	verifier.Emails["ghost-token"] = "ghost@example.com"
	r := setupGatedRouter(verifier, mocks.NewFakeUserRepository())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer ghost-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	verifier := mocks.NewFakeTokenVerifier()
	verifier.Emails["admin-token"] = "admin@example.com"
	userRepo := mocks.NewFakeUserRepository()
	userRepo.Users["admin@example.com"] = &entity.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
		Role:  entity.UserRoleAdmin,
	}
	r := setupGatedRouter(verifier, userRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
