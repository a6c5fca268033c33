package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

// Debouncer coalesces bursts of triggers: only the last fn of a burst runs,
// once delay has passed without another Trigger.
type Debouncer struct {
	delay     time.Duration
	afterFunc utils.AfterFunc

	mu      sync.Mutex
	timer   utils.Timer
	pending func()
	gen     uint64
	stopped bool
}

// NewDebouncer returns a debouncer with the given quiet period. A nil
// afterFunc uses real timers.
func NewDebouncer(delay time.Duration, afterFunc utils.AfterFunc) *Debouncer {
	if afterFunc == nil {
		afterFunc = utils.RealAfterFunc
	}
	return &Debouncer{delay: delay, afterFunc: afterFunc}
}

// Trigger replaces the pending fn and restarts the quiet period.
// Triggers after Stop are ignored.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = d.afterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Flush runs the pending fn immediately in the caller's goroutine. It
// reports whether anything was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.stopped || d.pending == nil {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	fn()
	return true
}

// Pending reports whether a fn is waiting for its quiet period.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop cancels the pending fn and disables the debouncer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = nil
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
