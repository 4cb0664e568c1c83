package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	// 目前視窗剩餘時間
	RetryAfter time.Duration
}

type RateLimiter interface {
	// Allow 計數一次請求並回傳是否仍在限制內 (使用Lua腳本確保原子性)
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// RedisRateLimiterImpl 固定視窗計數：每個 key 在 window 內最多 limit 次
type RedisRateLimiterImpl struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) RateLimiter {
	return &RedisRateLimiterImpl{
		client: client,
		limit:  limit,
		window: window,
	}
}

// 計數 key
func (l *RedisRateLimiterImpl) getKey(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}

func (l *RedisRateLimiterImpl) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	script := `
		-- 1. 計數加一
		local current = redis.call('INCR', KEYS[1])
		local window_ms = tonumber(ARGV[1])

		-- 2. 視窗第一次請求時設定過期時間
		if current == 1 then
			redis.call('PEXPIRE', KEYS[1], window_ms)
		end

		-- 3. 取得剩餘時間，key 沒有過期時間時補上
		local ttl = redis.call('PTTL', KEYS[1])
		if ttl < 0 then
			redis.call('PEXPIRE', KEYS[1], window_ms)
			ttl = window_ms
		end

		return {current, ttl}
	`

	result, err := l.client.Eval(ctx, script, []string{l.getKey(key)}, l.window.Milliseconds()).Result()
	if err != nil {
		return RateLimitResult{}, err
	}

	resSlice, ok := result.([]interface{})
	if !ok || len(resSlice) != 2 {
		return RateLimitResult{}, errors.New("unexpected result")
	}
	count, ok1 := resSlice[0].(int64) // Redis 數字通常回傳 int64
	ttl, ok2 := resSlice[1].(int64)
	if !ok1 || !ok2 {
		return RateLimitResult{}, errors.New("unexpected result")
	}

	return RateLimitResult{
		Allowed:    count <= int64(l.limit),
		Limit:      l.limit,
		Remaining:  max(l.limit-int(count), 0),
		RetryAfter: time.Duration(ttl) * time.Millisecond,
	}, nil
}
