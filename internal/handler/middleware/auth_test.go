//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"suitenest/internal/domain/user"
	"suitenest/internal/handler/middleware"
	"suitenest/internal/pkg/jwt"
	"suitenest/internal/usecase"
	"suitenest/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRouter(service *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(service))

	r := gin.New()
	r.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"email": actor.Email})
	})
	r.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/optional", m.OptionalAuth(), func(c *gin.Context) {
		_, ok := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	service := jwt.NewService("test-secret-key-for-suitenest", time.Hour)
	router := newRouter(service)

	guest, err := service.GenerateToken(uuid.New(), "guest@example.com", user.RoleGuest)
	assert.NoError(t, err)
	admin, err := service.GenerateToken(uuid.New(), "admin@example.com", user.RoleAdmin)
	assert.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "bogus")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("bearer token sets the actor", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, guest)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"email":"guest@example.com"}`, w.Body.String())
	})

	t.Run("cookie token sets the actor", func(t *testing.T) {
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: "access_token", Value: admin}}, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"email":"admin@example.com"}`, w.Body.String())
	})

	t.Run("guest is forbidden from admin routes", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, guest)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("admin passes", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, admin)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("optional auth never aborts", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/optional", nil, "bogus")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})
}
