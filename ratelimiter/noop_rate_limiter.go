package ratelimiter

import (
	"context"
	"time"
)

type NoOpRateLimiter struct {
}

func NewNoOpRateLimiter() RateLimiter {
	return NoOpRateLimiter{}
}

func (n NoOpRateLimiter) Wait(ctx context.Context) error {
	return ctx.Err()
}

func (n NoOpRateLimiter) Interval() time.Duration {
	return 0
}
