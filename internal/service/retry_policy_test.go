package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_DelaysDoubleUpToCap(t *testing.T) {
	p := NewRetryPolicy(time.Second, 30*time.Second)

	want := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		30 * time.Second,
		30 * time.Second,
		30 * time.Second,
	}
	for i, w := range want {
		assert.Equal(t, w, p.Next(), "failure #%d", i)
	}
	assert.Equal(t, len(want), p.Failures())
}

func TestRetryPolicy_NonDecreasing(t *testing.T) {
	p := NewRetryPolicy(250*time.Millisecond, 10*time.Second)

	prev := time.Duration(0)
	for i := 0; i < 100; i++ {
		d := p.Next()
		assert.GreaterOrEqual(t, d, prev)
		assert.LessOrEqual(t, d, 10*time.Second)
		prev = d
	}
}

func TestRetryPolicy_Reset(t *testing.T) {
	p := NewRetryPolicy(time.Second, 30*time.Second)

	p.Next()
	p.Next()
	p.Next()
	p.Reset()

	assert.Zero(t, p.Failures())
	assert.Equal(t, time.Second, p.Next())
}

func TestNewRetryPolicy_Defaults(t *testing.T) {
	p := NewRetryPolicy(0, 0)
	assert.Equal(t, time.Second, p.Next())

	// cap below base is raised to base
	p = NewRetryPolicy(5*time.Second, time.Second)
	assert.Equal(t, 5*time.Second, p.Next())
	assert.Equal(t, 5*time.Second, p.Next())
}
