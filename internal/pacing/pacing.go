// Package pacing spaces out outgoing requests so remote services are not
// hammered. Jitter waits a random time before every request, the way a
// scraper avoids looking like one; Steady enforces a fixed minimum interval
// with a token bucket.
package pacing

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
)

// Ensure pacers implement the interface.
var (
	_ driven.Pacer = None{}
	_ driven.Pacer = (*Jitter)(nil)
	_ driven.Pacer = (*Steady)(nil)
)

// None never waits. Used when delays are configured to zero and in tests.
type None struct{}

// Wait returns immediately unless the context is already done.
func (None) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Jitter waits a uniformly random duration in [Min, Max] before each request.
type Jitter struct {
	mu    sync.Mutex
	min   time.Duration
	max   time.Duration
	randN func(n int64) int64
	sleep func(ctx context.Context, d time.Duration) error
}

// NewJitter creates a random-delay pacer. Bounds are swapped if reversed.
func NewJitter(minDelay, maxDelay time.Duration) *Jitter {
	if maxDelay < minDelay {
		minDelay, maxDelay = maxDelay, minDelay
	}
	return &Jitter{
		min:   minDelay,
		max:   maxDelay,
		randN: rand.Int64N,
		sleep: sleepContext,
	}
}

// Next returns the next delay without waiting.
func (j *Jitter) Next() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()

	spread := int64(j.max - j.min)
	if spread <= 0 {
		return j.min
	}
	return j.min + time.Duration(j.randN(spread+1))
}

// Wait sleeps for the next delay or until ctx is done.
func (j *Jitter) Wait(ctx context.Context) error {
	return j.sleep(ctx, j.Next())
}

// Steady allows one request per interval using a token bucket.
type Steady struct {
	limiter *rate.Limiter
}

// NewSteady creates a fixed-interval pacer. The first request is not delayed.
// A zero interval disables pacing.
func NewSteady(interval time.Duration) *Steady {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Steady{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the interval since the previous request has elapsed.
func (s *Steady) Wait(ctx context.Context) error {
	return s.limiter.Wait(ctx)
}

// ForRange picks Jitter for a positive range and None otherwise.
func ForRange(minDelay, maxDelay time.Duration) driven.Pacer {
	if minDelay <= 0 && maxDelay <= 0 {
		return None{}
	}
	return NewJitter(minDelay, maxDelay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
