package ratelimiter

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_rate_limiter.go . RateLimiter
type RateLimiter interface {
	Wait(ctx context.Context) error
	Interval() time.Duration
}

const maxInterval = 3600 * time.Second

// IntervalRateLimiter spaces consecutive calls by a fixed interval.
type IntervalRateLimiter struct {
	interval time.Duration
}

func NewIntervalRateLimiter(durationString string) (RateLimiter, error) {
	duration, err := time.ParseDuration(durationString)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse rate limit duration")
	}

	if duration < 0 || duration > maxInterval {
		return nil, errors.New("duration cannot be negative or greater than 3600 seconds")
	}

	if duration == 0 {
		return NewNoOpRateLimiter(), nil
	}

	return IntervalRateLimiter{interval: duration}, nil
}

func (r IntervalRateLimiter) Wait(ctx context.Context) error {
	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r IntervalRateLimiter) Interval() time.Duration {
	return r.interval
}
