package handler_test

import (
	"context"
	"net/http"
	"testing"

	"go-gin-activities/internal/cache"
	cacheMocks "go-gin-activities/internal/cache/mocks"
	"go-gin-activities/internal/handler"
	"go-gin-activities/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(r gin.IRouter) {
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

// recordKeys 讓限流器記錄收到的 key 並一律放行
func recordKeys(t *testing.T) (*cacheMocks.MockRateLimiter, *[]string) {
	limiter := cacheMocks.NewMockRateLimiter(t)
	keys := []string{}
	limiter.EXPECT().Allow(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key string) (cache.RateLimitResult, error) {
			keys = append(keys, key)
			return cache.RateLimitResult{Allowed: true, Limit: 60, Remaining: 59}, nil
		})
	return limiter, &keys
}

func sendFrom(router *gin.Engine, remoteAddr, forwardedFor string) int {
	req := createJSONHTTPRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)
	return serve(router, req).Code
}

func TestRouter_TrustedProxies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Untrusted peer cannot spoof client IP", func(t *testing.T) {
		limiter, keys := recordKeys(t)
		router, err := handler.NewRouter(nil, []gin.HandlerFunc{middleware.RateLimit(limiter)}, pingRoutes{})
		require.NoError(t, err)

		for _, forwarded := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
			assert.Equal(t, http.StatusOK, sendFrom(router, "203.0.113.9:40000", forwarded))
		}

		assert.Equal(t, []string{"203.0.113.9", "203.0.113.9", "203.0.113.9"}, *keys)
	})

	t.Run("Trusted proxy forwards client IP", func(t *testing.T) {
		limiter, keys := recordKeys(t)
		router, err := handler.NewRouter([]string{"10.0.0.0/8"}, []gin.HandlerFunc{middleware.RateLimit(limiter)}, pingRoutes{})
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, sendFrom(router, "10.1.2.3:40000", "198.51.100.7"))
		assert.Equal(t, http.StatusOK, sendFrom(router, "203.0.113.9:40000", "198.51.100.7"))

		assert.Equal(t, []string{"198.51.100.7", "203.0.113.9"}, *keys)
	})

	t.Run("Failed - invalid proxy address", func(t *testing.T) {
		router, err := handler.NewRouter([]string{"not-an-ip"}, nil)

		assert.Error(t, err)
		assert.Nil(t, router)
	})
}
