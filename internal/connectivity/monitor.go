package connectivity

import "sync"

// Listener receives connectivity transitions. Either func may be nil.
type Listener struct {
	OnOnline  func()
	OnOffline func()
}

// Source is the read side of a connectivity signal.
type Source interface {
	// Online reports the current flag without blocking.
	Online() bool
	// Subscribe registers l and returns a func that removes it.
	Subscribe(l Listener) (unsubscribe func())
}

// Monitor is a thread-safe connectivity flag with transition listeners.
type Monitor struct {
	mu        sync.Mutex
	online    bool
	listeners map[uint64]Listener
	nextID    uint64
}

// NewMonitor returns a monitor starting at initial.
func NewMonitor(initial bool) *Monitor {
	return &Monitor{
		online:    initial,
		listeners: make(map[uint64]Listener),
	}
}

// Online implements [Source].
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe implements [Source]. The returned func is idempotent.
func (m *Monitor) Subscribe(l Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

// Set updates the flag. Listeners are called synchronously, outside the
// monitor lock, only when the value actually changes; a listener with slow
// work must hand it off, as [Watch] does.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online

	callbacks := make([]func(), 0, len(m.listeners))
	for _, l := range m.listeners {
		cb := l.OnOffline
		if online {
			cb = l.OnOnline
		}
		if cb != nil {
			callbacks = append(callbacks, cb)
		}
	}
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

// Listeners returns the number of active subscriptions.
func (m *Monitor) Listeners() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}
