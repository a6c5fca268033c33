package connectivity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_NotifiesOnTransitionsOnly(t *testing.T) {
	m := NewMonitor(false)

	var online, offline int
	unsubscribe := m.Subscribe(Listener{
		OnOnline:  func() { online++ },
		OnOffline: func() { offline++ },
	})
	defer unsubscribe()

	m.Set(false) // no change
	assert.Equal(t, 0, online+offline)

	m.Set(true)
	m.Set(true)
	assert.Equal(t, 1, online)
	assert.True(t, m.Online())

	m.Set(false)
	assert.Equal(t, 1, offline)
	assert.False(t, m.Online())
}

func TestMonitor_Unsubscribe(t *testing.T) {
	m := NewMonitor(true)

	calls := 0
	unsubscribe := m.Subscribe(Listener{OnOffline: func() { calls++ }})
	assert.Equal(t, 1, m.Listeners())

	unsubscribe()
	unsubscribe() // idempotent
	assert.Equal(t, 0, m.Listeners())

	m.Set(false)
	assert.Zero(t, calls)
}

func TestMonitor_NilCallbacks(t *testing.T) {
	m := NewMonitor(true)
	m.Subscribe(Listener{})

	assert.NotPanics(t, func() {
		m.Set(false)
		m.Set(true)
	})
}

func TestMonitor_ListenerMaySubscribe(t *testing.T) {
	m := NewMonitor(false)

	// callbacks run outside the lock, so re-entrant calls must not deadlock
	m.Subscribe(Listener{OnOnline: func() {
		_ = m.Online()
		m.Subscribe(Listener{})
	}})

	m.Set(true)
	assert.Equal(t, 2, m.Listeners())
}

func TestMonitor_ConcurrentSet(t *testing.T) {
	m := NewMonitor(false)
	m.Subscribe(Listener{OnOnline: func() {}, OnOffline: func() {}})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Set(i%2 == 0)
			_ = m.Online()
		}(i)
	}
	wg.Wait()
}

type spyTarget struct {
	mu        sync.Mutex
	hydrated  int
	offline   int
	lastCtxOK bool

	// entered receives on every hydrate; release, when set, holds it
	entered chan struct{}
	release chan struct{}
}

func (s *spyTarget) HydrateAndFlush(ctx context.Context) {
	s.mu.Lock()
	s.hydrated++
	s.lastCtxOK = ctx.Value(ctxKey{}) == "watch"
	entered, release := s.entered, s.release
	s.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}
}

func (s *spyTarget) MarkOffline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline++
}

func (s *spyTarget) counts() (hydrated, offline int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated, s.offline
}

func (s *spyTarget) hydrates() int {
	h, _ := s.counts()
	return h
}

type ctxKey struct{}

func TestWatch_ForwardsTransitions(t *testing.T) {
	m := NewMonitor(true)
	target := &spyTarget{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "watch")

	unwatch := Watch(ctx, m, target)

	m.Set(false)
	m.Set(true)
	m.Set(false)

	require.Eventually(t, func() bool { return target.hydrates() == 1 }, time.Second, time.Millisecond)
	_, offline := target.counts()
	assert.Equal(t, 2, offline)
	target.mu.Lock()
	assert.True(t, target.lastCtxOK)
	target.mu.Unlock()

	unwatch()
	m.Set(true)
	assert.Never(t, func() bool { return target.hydrates() != 1 }, 50*time.Millisecond, time.Millisecond)
	assert.Equal(t, 0, m.Listeners())
}

func TestWatch_SlowHydrateDoesNotBlockSet(t *testing.T) {
	m := NewMonitor(false)
	target := &spyTarget{
		entered: make(chan struct{}, 10),
		release: make(chan struct{}),
	}
	unwatch := Watch(context.Background(), m, target)
	defer unwatch()

	m.Set(true)
	<-target.entered

	// the first hydrate is still blocked here
	m.Set(false)
	_, offline := target.counts()
	assert.Equal(t, 1, offline)

	// two more reconnects while busy collapse into one further run
	m.Set(true)
	m.Set(false)
	m.Set(true)
	assert.Equal(t, 1, target.hydrates())

	close(target.release)
	<-target.entered

	assert.Never(t, func() bool { return target.hydrates() > 2 }, 50*time.Millisecond, time.Millisecond)
	assert.Equal(t, 2, target.hydrates())
}

func TestWatch_CancelledContextSkipsHydrate(t *testing.T) {
	m := NewMonitor(false)
	target := &spyTarget{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	unwatch := Watch(ctx, m, target)
	defer unwatch()

	m.Set(true)
	m.Set(false)

	assert.Never(t, func() bool { return target.hydrates() > 0 }, 50*time.Millisecond, time.Millisecond)
	_, offline := target.counts()
	assert.Equal(t, 1, offline)
}
