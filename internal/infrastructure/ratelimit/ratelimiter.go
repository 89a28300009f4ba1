package ratelimit

import (
	"context"
	"time"
)

// Limit caps the requests one key may make per window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// PerMinute is shorthand for a one-minute window.
func PerMinute(n int) Limit {
	return Limit{Requests: n, Window: time.Minute}
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	Reset(ctx context.Context, key string) error
}
