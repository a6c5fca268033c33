package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// fakeClock: ручные таймеры: срабатывают только по вызову из теста.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) utils.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// active returns the delays of timers that are neither stopped nor fired.
func (c *fakeClock) active() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []time.Duration
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			out = append(out, t.d)
		}
	}
	return out
}

// fireAll fires every active timer synchronously, in registration order.
// Timers registered by the callbacks stay pending.
func (c *fakeClock) fireAll() int {
	c.mu.Lock()
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}

// fireStale runs a callback even though its timer was stopped, the way a
// real timer does when Stop loses the race against expiry.
func (c *fakeClock) fireStale() int {
	c.mu.Lock()
	var due []*fakeTimer
	for _, t := range c.timers {
		if t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}

// memStore is an in-memory LocalDraftStore with injectable failures.
type memStore struct {
	mu      sync.Mutex
	records map[string]models.LocalDraftRecord
	sets    int
	deletes int

	setErr    error
	getErr    error
	deleteErr error
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]models.LocalDraftRecord)}
}

func (m *memStore) Set(_ context.Context, draftID string, rec models.LocalDraftRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.records[models.DraftKey(draftID)] = rec
	return nil
}

func (m *memStore) Get(_ context.Context, draftID string) (models.LocalDraftRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return models.LocalDraftRecord{}, m.getErr
	}
	rec, ok := m.records[models.DraftKey(draftID)]
	if !ok {
		return models.LocalDraftRecord{}, store.ErrLocalDraftNotFound
	}
	return rec, nil
}

func (m *memStore) Delete(_ context.Context, draftID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.records, models.DraftKey(draftID))
	return nil
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func (m *memStore) record(t *testing.T, draftID string) models.LocalDraftRecord {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[models.DraftKey(draftID)]
	require.True(t, ok, "no local record for %q", draftID)
	return rec
}

func (m *memStore) has(draftID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[models.DraftKey(draftID)]
	return ok
}

func payload(s string) models.Payload {
	return models.Payload(s)
}

var testSessionConfig = SessionConfig{
	Debounce:  time.Second,
	RetryBase: time.Second,
	RetryMax:  30 * time.Second,
}
