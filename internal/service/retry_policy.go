package service

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy computes capped exponential retry delays: the n-th consecutive
// failure since the last success waits min(max, base*2^n), n starting at 0.
//
// RetryPolicy is not safe for concurrent use; the owning session serialises
// access.
type RetryPolicy struct {
	base     time.Duration
	max      time.Duration
	backoff  retry.Backoff
	failures int
}

// NewRetryPolicy returns a policy with the given base delay and cap.
// Non-positive values fall back to one second and thirty seconds.
func NewRetryPolicy(base, max time.Duration) *RetryPolicy {
	if base <= 0 {
		base = time.Second
	}
	if max <= 0 {
		max = 30 * time.Second
	}
	if max < base {
		max = base
	}

	p := &RetryPolicy{base: base, max: max}
	p.Reset()
	return p
}

// Next records a failure and returns the delay before the retry.
func (p *RetryPolicy) Next() time.Duration {
	p.failures++

	d, stop := p.backoff.Next()
	if stop {
		return p.max
	}
	return d
}

// Reset zeroes the failure counter after a confirmed success.
func (p *RetryPolicy) Reset() {
	p.failures = 0
	p.backoff = retry.WithCappedDuration(p.max, retry.NewExponential(p.base))
}

// Failures returns the number of failures since the last Reset.
func (p *RetryPolicy) Failures() int {
	return p.failures
}
