package utils

import "time"

// Timer is the cancellable handle returned by an [AfterFunc].
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was stopped.
	Stop() bool
}

// AfterFunc schedules f to run in its own goroutine after d elapses.
//
// Components that own timers (debounce, retry, probing) take an AfterFunc
// instead of calling time.AfterFunc directly so tests can fire timers by hand.
type AfterFunc func(d time.Duration, f func()) Timer

// RealAfterFunc is the production [AfterFunc] backed by time.AfterFunc.
func RealAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
