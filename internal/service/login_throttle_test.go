package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newThrottle(t *testing.T, maxAttempts int, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewLoginThrottle(client, maxAttempts, window, testLogger()), server
}

func TestThrottleAllowsUpToLimit(t *testing.T) {
	throttle, _ := newThrottle(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
	}
	require.False(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))

	// Limits are scoped per email and client address.
	require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.2"))
	require.True(t, throttle.Allow(ctx, "other@example.com", "10.0.0.1"))
}

func TestThrottleResetClearsCounter(t *testing.T) {
	throttle, _ := newThrottle(t, 2, time.Minute)
	ctx := context.Background()

	require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
	require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
	require.False(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))

	throttle.Reset(ctx, "user@example.com", "10.0.0.1")
	require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
}

func TestThrottleWindowExpires(t *testing.T) {
	throttle, server := newThrottle(t, 1, time.Minute)
	ctx := context.Background()

	require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
	require.False(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))

	server.FastForward(2 * time.Minute)
	require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
}

func TestThrottleNilClientAlwaysAllows(t *testing.T) {
	throttle := NewLoginThrottle(nil, 1, time.Minute, testLogger())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
	}
	throttle.Reset(ctx, "user@example.com", "10.0.0.1")

	var disabled *LoginThrottle
	require.True(t, disabled.Allow(ctx, "user@example.com", "10.0.0.1"))
}

func TestThrottleFailsOpenWhenRedisDown(t *testing.T) {
	throttle, server := newThrottle(t, 1, time.Minute)
	ctx := context.Background()

	server.Close()
	require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
	require.True(t, throttle.Allow(ctx, "user@example.com", "10.0.0.1"))
}
