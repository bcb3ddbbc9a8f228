package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) *RateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRateLimiter(NewClientFromRedis(rdb))
}

func TestRateLimiter_Allow(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.1", "/v1/content/generate")

	// 限额内全部放行
	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, key, 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	// 超过限额后拒绝
	allowed, err := limiter.Allow(ctx, key, 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()

	keyA := BuildRateLimitKey("10.0.0.1", "/v1/content/generate")
	keyB := BuildRateLimitKey("10.0.0.2", "/v1/content/generate")

	allowed, err := limiter.Allow(ctx, keyA, 1, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, keyA, 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// 另一个客户端不受影响
	allowed, err = limiter.Allow(ctx, keyB, 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.1", "/v1/content/generate")

	// 用极短窗口验证窗口外的请求会被清出
	window := 50 * time.Millisecond

	allowed, err := limiter.Allow(ctx, key, 1, window)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, key, 1, window)
	require.NoError(t, err)
	require.False(t, allowed)

	time.Sleep(window + 20*time.Millisecond)

	allowed, err = limiter.Allow(ctx, key, 1, window)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestBuildRateLimitKey(t *testing.T) {
	key := BuildRateLimitKey("10.0.0.1", "/v1/content/generate")
	assert.Equal(t, "ratelimit:10.0.0.1:/v1/content/generate", key)
}
