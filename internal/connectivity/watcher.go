package connectivity

import (
	"context"
	"sync"
)

// Target is what a connectivity watcher drives.
type Target interface {
	HydrateAndFlush(ctx context.Context)
	MarkOffline()
}

// Watch forwards transitions of src to target: online runs HydrateAndFlush
// with ctx, offline runs MarkOffline. The returned func stops forwarding and
// is safe to call more than once.
//
// HydrateAndFlush runs in its own goroutine so the caller of Source.Set is
// not held for a network round trip. At most one runs at a time; online
// transitions arriving meanwhile collapse into a single further run.
// MarkOffline is called synchronously.
func Watch(ctx context.Context, src Source, target Target) (unwatch func()) {
	w := &flushWorker{ctx: ctx, target: target}
	unsubscribe := src.Subscribe(Listener{
		OnOnline:  w.kick,
		OnOffline: target.MarkOffline,
	})

	return func() {
		unsubscribe()
		w.stop()
	}
}

type flushWorker struct {
	ctx    context.Context
	target Target

	mu      sync.Mutex
	running bool
	again   bool
	stopped bool
}

func (w *flushWorker) kick() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.running {
		w.again = true
		return
	}
	w.running = true
	go w.loop()
}

func (w *flushWorker) loop() {
	for {
		if w.ctx.Err() == nil {
			w.target.HydrateAndFlush(w.ctx)
		}

		w.mu.Lock()
		if !w.again || w.stopped {
			w.running = false
			w.again = false
			w.mu.Unlock()
			return
		}
		w.again = false
		w.mu.Unlock()
	}
}

func (w *flushWorker) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	w.again = false
}
