//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"suitenest/internal/handler/middleware"
	"suitenest/internal/pkg/config"
	"suitenest/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/rooms", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func getWithOrigin(r *gin.Engine, origin string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodGet, "/rooms", nil)
	req.Header.Set("Origin", origin)
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("listed origin gets credentialed response", func(t *testing.T) {
		w := getWithOrigin(corsRouter(base), "http://localhost:5173")

		assert.Equal(t, http.StatusOK, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "http://localhost:5173",
			"Access-Control-Allow-Credentials": "true",
		})
	})

	t.Run("unlisted origin is rejected", func(t *testing.T) {
		w := getWithOrigin(corsRouter(base), "http://evil.example")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard with credentials echoes the caller", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}

		w := getWithOrigin(corsRouter(cfg), "http://frontdesk.local:8081")

		assert.Equal(t, http.StatusOK, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "http://frontdesk.local:8081",
			"Access-Control-Allow-Credentials": "true",
		})
	})
}
