//go:build integration

package cache_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"go-gin-activities/internal/cache"
	"go-gin-activities/internal/testutil"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRedis *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedis(context.Background())
	if err != nil {
		log.Fatalf("Failed to setup test redis: %v", err)
	}
	testRedis = rdb

	code := m.Run()
	cleanup()

	os.Exit(code)
}

func setupTestWithFlush(t *testing.T) {
	t.Helper()
	if err := testRedis.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("Failed to flush redis: %v", err)
	}
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("AllowsUpToLimit", func(t *testing.T) {
		setupTestWithFlush(t)
		limiter := cache.NewRedisRateLimiter(testRedis, 3, time.Minute)

		for i := 1; i <= 3; i++ {
			result, err := limiter.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, result.Allowed)
			assert.Equal(t, 3, result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}

		result, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, 0, result.Remaining)
		assert.Greater(t, result.RetryAfter, time.Duration(0))
		assert.LessOrEqual(t, result.RetryAfter, time.Minute)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		setupTestWithFlush(t)
		limiter := cache.NewRedisRateLimiter(testRedis, 1, time.Minute)

		first, err := limiter.Allow(ctx, "a")
		require.NoError(t, err)
		second, err := limiter.Allow(ctx, "b")
		require.NoError(t, err)

		assert.True(t, first.Allowed)
		assert.True(t, second.Allowed)
	})

	t.Run("WindowExpires", func(t *testing.T) {
		setupTestWithFlush(t)
		limiter := cache.NewRedisRateLimiter(testRedis, 1, 200*time.Millisecond)

		_, err := limiter.Allow(ctx, "c")
		require.NoError(t, err)
		blocked, err := limiter.Allow(ctx, "c")
		require.NoError(t, err)
		assert.False(t, blocked.Allowed)

		time.Sleep(300 * time.Millisecond)

		result, err := limiter.Allow(ctx, "c")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("Concurrent", func(t *testing.T) {
		setupTestWithFlush(t)
		limiter := cache.NewRedisRateLimiter(testRedis, 10, time.Minute)

		var wg sync.WaitGroup
		var mu sync.Mutex
		allowed := 0
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := limiter.Allow(ctx, "burst")
				if err != nil {
					return
				}
				if result.Allowed {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, allowed)
	})
}
