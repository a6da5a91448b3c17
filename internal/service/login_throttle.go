package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LoginThrottle bounds failed-login bursts per email and client address. A
// nil redis client disables throttling entirely, which keeps single-node
// development setups working without redis.
type LoginThrottle struct {
	cache       *redis.Client
	maxAttempts int
	window      time.Duration
	logger      zerolog.Logger
}

// NewLoginThrottle constructs the throttle.
func NewLoginThrottle(cache *redis.Client, maxAttempts int, window time.Duration, logger zerolog.Logger) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginThrottle{
		cache:       cache,
		maxAttempts: maxAttempts,
		window:      window,
		logger:      logger.With().Str("component", "login_throttle").Logger(),
	}
}

// Allow records an attempt and reports whether it is within the limit. A
// redis failure fails open: an unreachable cache must not lock everyone out.
func (t *LoginThrottle) Allow(ctx context.Context, email, clientIP string) bool {
	if t == nil || t.cache == nil {
		return true
	}

	key := t.key(email, clientIP)
	attempts, err := t.cache.Incr(ctx, key).Result()
	if err != nil {
		t.logger.Warn().Err(err).Msg("failed to record login attempt")
		return true
	}
	if attempts == 1 {
		if err := t.cache.Expire(ctx, key, t.window).Err(); err != nil {
			t.logger.Warn().Err(err).Msg("failed to expire login attempt key")
		}
	}

	return attempts <= int64(t.maxAttempts)
}

// Reset clears the attempt counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email, clientIP string) {
	if t == nil || t.cache == nil {
		return
	}

	if err := t.cache.Del(ctx, t.key(email, clientIP)).Err(); err != nil {
		t.logger.Warn().Err(err).Msg("failed to reset login attempts")
	}
}

func (t *LoginThrottle) key(email, clientIP string) string {
	return fmt.Sprintf("login:attempts:%s:%s", strings.ToLower(strings.TrimSpace(email)), clientIP)
}
