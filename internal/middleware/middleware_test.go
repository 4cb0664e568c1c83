package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-gin-activities/internal/cache"
	cacheMocks "go-gin-activities/internal/cache/mocks"
	"go-gin-activities/internal/middleware"
	"go-gin-activities/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var allowedOrigins = []string{"https://localhost:3000", "http://localhost:3000"}

func setupTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func request(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))
	return logs
}

func TestSecurityHeaders(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		router := setupTestRouter(middleware.SecurityHeaders(false))

		w := request(router, http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
		assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
		assert.Equal(t, "geolocation=(), microphone=(), camera=()", w.Header().Get("Permissions-Policy"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
		assert.Empty(t, w.Header().Get("Server"))
	})

	t.Run("Production", func(t *testing.T) {
		router := setupTestRouter(middleware.SecurityHeaders(true))

		w := request(router, http.MethodGet, "/ping", nil)

		assert.Equal(t, "max-age=31536000; includeSubDomains; preload", w.Header().Get("Strict-Transport-Security"))
	})
}

func TestCORS(t *testing.T) {
	router := setupTestRouter(middleware.CORS(allowedOrigins))

	t.Run("Allowed origin", func(t *testing.T) {
		w := request(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
	})

	t.Run("Preflight", func(t *testing.T) {
		w := request(router, http.MethodOptions, "/ping", map[string]string{
			"Origin":                        "https://localhost:3000",
			"Access-Control-Request-Method": "PUT",
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	})

	t.Run("Disallowed origin", func(t *testing.T) {
		w := request(router, http.MethodGet, "/ping", map[string]string{"Origin": "https://evil.example"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Disallowed preflight", func(t *testing.T) {
		w := request(router, http.MethodOptions, "/ping", map[string]string{"Origin": "https://evil.example"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("No origin", func(t *testing.T) {
		w := request(router, http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Allowed", func(t *testing.T) {
		limiter := cacheMocks.NewMockRateLimiter(t)
		router := setupTestRouter(middleware.RateLimit(limiter))
		limiter.EXPECT().Allow(mock.Anything, "192.0.2.1").
			Return(cache.RateLimitResult{Allowed: true, Limit: 60, Remaining: 59, RetryAfter: time.Minute}, nil).Once()

		w := request(router, http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "60", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "59", w.Header().Get("X-RateLimit-Remaining"))
		assert.Empty(t, w.Header().Get("Retry-After"))
	})

	t.Run("Rejected", func(t *testing.T) {
		limiter := cacheMocks.NewMockRateLimiter(t)
		router := setupTestRouter(middleware.RateLimit(limiter))
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(cache.RateLimitResult{Allowed: false, Limit: 60, Remaining: 0, RetryAfter: 1500 * time.Millisecond}, nil).Once()

		w := request(router, http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
	})

	t.Run("Rejected with elapsed window", func(t *testing.T) {
		limiter := cacheMocks.NewMockRateLimiter(t)
		router := setupTestRouter(middleware.RateLimit(limiter))
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(cache.RateLimitResult{Allowed: false, Limit: 60}, nil).Once()

		w := request(router, http.MethodGet, "/ping", nil)

		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("Limiter error fails open", func(t *testing.T) {
		logs := observeLogs(t)
		limiter := cacheMocks.NewMockRateLimiter(t)
		router := setupTestRouter(middleware.RateLimit(limiter))
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(cache.RateLimitResult{}, errors.New("redis down")).Once()

		w := request(router, http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, logs.FilterMessage("Rate limiter unavailable, allowing request").Len())
	})
}

func TestRequestLogger(t *testing.T) {
	logs := observeLogs(t)
	router := setupTestRouter(middleware.RequestLogger())

	request(router, http.MethodGet, "/ping", nil)
	request(router, http.MethodGet, "/missing", nil)

	entries := logs.FilterMessage("Request completed").All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
	}
}

func TestRecovery(t *testing.T) {
	logs := observeLogs(t)
	router := setupTestRouter(middleware.Recovery(), middleware.Metrics())

	w := request(router, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}
