package request

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/thrasher-corp/bfxrest/common"
	"golang.org/x/time/rate"
)

// Const here define individual functionality sub types for rate limiting
const (
	Unset EndpointLimit = iota
	Auth
	UnAuth
)

var (
	// ErrRateLimiterAlreadyDisabled is returned when the limiter is already off
	ErrRateLimiterAlreadyDisabled = errors.New("rate limiter already disabled")
	// ErrRateLimiterAlreadyEnabled is returned when the limiter is already on
	ErrRateLimiterAlreadyEnabled = errors.New("rate limiter already enabled")
	// ErrDelayNotAllowed is returned when a request would have to wait for
	// the limiter but the context forbids it
	ErrDelayNotAllowed = errors.New("delay not allowed")

	errLimiterSystemIsNil = errors.New("limiter system is nil")
)

// EndpointLimit defines individual endpoint rate limits that are set when
// New is called.
type EndpointLimit uint16

// String implements fmt.Stringer
func (e EndpointLimit) String() string {
	switch e {
	case Unset:
		return "unset"
	case Auth:
		return "auth"
	case UnAuth:
		return "unauth"
	default:
		return fmt.Sprintf("endpoint(%d)", uint16(e))
	}
}

// RateLimitDefinitions maps an endpoint group to its limiter
type RateLimitDefinitions map[EndpointLimit]*rate.Limiter

// NewRateLimit creates a new RateLimit based of time interval and how many
// actions allowed and breaks it down to an actions-per-second basis -- Burst
// rate is kept as one as this is not supported for out-bound requests.
func NewRateLimit(interval time.Duration, actions int) *rate.Limiter {
	if actions <= 0 || interval <= 0 {
		// Returns an un-restricted rate limiter
		return rate.NewLimiter(rate.Inf, 1)
	}

	i := 1 / interval.Seconds()
	rps := i * float64(actions)
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// NewBasicRateLimit returns one limiter shared by every endpoint group
func NewBasicRateLimit(interval time.Duration, actions int) RateLimitDefinitions {
	l := NewRateLimit(interval, actions)
	return RateLimitDefinitions{
		Unset:  l,
		Auth:   l,
		UnAuth: l,
	}
}

// RateLimit blocks until the limiter allows a request or the context is done.
// A delay that would run past the context deadline fails straight away.
func RateLimit(ctx context.Context, l *rate.Limiter, delayNotAllowed bool) error {
	if l == nil {
		return common.ErrNilPointer
	}
	res := l.Reserve()
	delay := res.Delay()
	if delay == 0 {
		return nil
	}
	if delayNotAllowed {
		res.Cancel()
		return fmt.Errorf("%w: %s required", ErrDelayNotAllowed, delay)
	}
	if dl, ok := ctx.Deadline(); ok && time.Now().Add(delay).After(dl) {
		res.Cancel()
		return fmt.Errorf("rate limit delay %s: %w", delay, context.DeadlineExceeded)
	}
	tick := time.NewTimer(delay)
	defer tick.Stop()
	select {
	case <-ctx.Done():
		res.Cancel()
		return ctx.Err()
	case <-tick.C:
		return nil
	}
}

// InitiateRateLimit sleeps for designated end point rate limits
func (r *Requester) InitiateRateLimit(ctx context.Context, e EndpointLimit) error {
	if r == nil {
		return ErrRequestSystemIsNil
	}
	if atomic.LoadInt32(&r.disableRateLimiter) == 1 {
		return nil
	}
	if r.limiter == nil {
		return errLimiterSystemIsNil
	}
	l, ok := r.limiter[e]
	if !ok {
		return fmt.Errorf("%w: no limiter for endpoint %s", common.ErrNilPointer, e)
	}
	return RateLimit(ctx, l, hasDelayNotAllowed(ctx))
}

// DisableRateLimiter disables the rate limiting system for the exchange
func (r *Requester) DisableRateLimiter() error {
	if r == nil {
		return ErrRequestSystemIsNil
	}
	if !atomic.CompareAndSwapInt32(&r.disableRateLimiter, 0, 1) {
		return ErrRateLimiterAlreadyDisabled
	}
	return nil
}

// EnableRateLimiter enables the rate limiting system for the exchange
func (r *Requester) EnableRateLimiter() error {
	if r == nil {
		return ErrRequestSystemIsNil
	}
	if !atomic.CompareAndSwapInt32(&r.disableRateLimiter, 1, 0) {
		return ErrRateLimiterAlreadyEnabled
	}
	return nil
}
