package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "health:10.0.0.1", PerMinute(5))
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "health:10.0.0.1", PerMinute(5))
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "health:10.0.0.2", PerMinute(5))
	require.NoError(t, err)
	assert.True(t, allowed, "other clients keep their own window")
}

func TestRedisRateLimiter_NewWindow(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	clock := time.Date(2026, 1, 1, 12, 0, 10, 0, time.UTC)
	limiter.now = func() time.Time { return clock }

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "root:ip", PerMinute(2))
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "root:ip", PerMinute(2))
	require.NoError(t, err)
	assert.False(t, allowed)

	clock = clock.Add(time.Minute)
	allowed, err = limiter.Allow(ctx, "root:ip", PerMinute(2))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_KeysExpire(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	_, err := limiter.Allow(context.Background(), "root:ip", PerMinute(2))
	require.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Greater(t, mr.TTL(keys[0]), time.Duration(0))
}

func TestRedisRateLimiter_ZeroLimitDisables(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	allowed, err := limiter.Allow(context.Background(), "k", Limit{})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "health:ip", PerMinute(1))
	require.NoError(t, err)
	allowed, err := limiter.Allow(ctx, "health:ip", PerMinute(1))
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "health:ip"))
	assert.Empty(t, mr.Keys())

	allowed, err = limiter.Allow(ctx, "health:ip", PerMinute(1))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_RedisDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k", PerMinute(1))
	assert.Error(t, err)
}
