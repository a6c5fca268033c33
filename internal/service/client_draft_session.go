package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/connectivity"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// OnlineChecker reports connectivity at the moment of a save.
type OnlineChecker interface {
	Online() bool
}

// SessionConfig carries the timings of an autosave session.
type SessionConfig struct {
	Debounce  time.Duration
	RetryBase time.Duration
	RetryMax  time.Duration
}

// SessionOption customises a [DraftSession].
type SessionOption func(*DraftSession)

// WithAfterFunc replaces the timer factory used for debounce and retries.
func WithAfterFunc(f utils.AfterFunc) SessionOption {
	return func(s *DraftSession) { s.afterFunc = f }
}

// WithClock replaces the wall clock used for local record timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *DraftSession) { s.now = now }
}

// DraftSession is the autosave state machine of a single draft.
//
// Every save attempt takes a sequence number; a resolution only touches
// state or the local store when its number is still the latest one issued.
// Local store writes of a session are serialised and sequence numbers are
// only issued while holding the same lock, so a superseded attempt can never
// delete or overwrite a newer record.
//
// No error escapes the public methods: failures are reported through
// [DraftSession.State] and [DraftSession.Subscribe].
type DraftSession struct {
	draftID   string
	store     store.LocalDraftStore
	adapter   adapter.DraftAdapter
	online    OnlineChecker
	afterFunc utils.AfterFunc
	now       func() time.Time
	logger    *logger.Logger
	debouncer *Debouncer

	// ctx lives until Close and only gates new work; storeCtx is never
	// cancelled so a queued write is not lost to teardown.
	ctx      context.Context
	cancel   context.CancelFunc
	storeCtx context.Context

	persistMu sync.Mutex

	mu         sync.Mutex
	state      models.DraftState
	version    *int64
	latestSeq  uint64
	retry      *RetryPolicy
	retryTimer utils.Timer
	retryGen   uint64
	closed     bool
	unwatch    func()
	subs       map[uint64]chan models.DraftState
	nextSub    uint64
}

// NewDraftSession creates an idle session for draftID. Nothing is read or
// sent until HydrateAndFlush, Edit or Save is called.
func NewDraftSession(
	draftID string,
	localStore store.LocalDraftStore,
	draftAdapter adapter.DraftAdapter,
	online OnlineChecker,
	cfg SessionConfig,
	log *logger.Logger,
	opts ...SessionOption,
) *DraftSession {
	log = log.ForDraft(draftID)

	s := &DraftSession{
		draftID:   draftID,
		store:     localStore,
		adapter:   draftAdapter,
		online:    online,
		afterFunc: utils.RealAfterFunc,
		now:       time.Now,
		logger:    log,
		state:     models.DraftState{DraftID: draftID, Status: models.StatusIdle},
		retry:     NewRetryPolicy(cfg.RetryBase, cfg.RetryMax),
		subs:      make(map[uint64]chan models.DraftState),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.debouncer = NewDebouncer(cfg.Debounce, s.afterFunc)
	s.ctx, s.cancel = context.WithCancel(log.WithContext(context.Background()))
	s.storeCtx = log.WithContext(context.Background())

	return s
}

// DraftID returns the id the session was opened for.
func (s *DraftSession) DraftID() string {
	return s.draftID
}

// Watch forwards connectivity transitions of src to the session until Close.
func (s *DraftSession) Watch(src connectivity.Source) {
	unwatch := connectivity.Watch(s.ctx, src, s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		unwatch()
		return
	}
	if s.unwatch != nil {
		s.unwatch()
	}
	s.unwatch = unwatch
}

// Edit schedules a save of payload once the debounce period passes without
// another edit. The save carries the last version observed by the session.
func (s *DraftSession) Edit(payload models.Payload) {
	s.debouncer.Trigger(func() {
		s.Save(s.storeCtx, payload, s.currentVersion())
	})
}

// Flush runs a pending debounced save immediately and blocks until it
// resolves. It reports whether an edit was pending.
func (s *DraftSession) Flush() bool {
	return s.debouncer.Flush()
}

// Save runs one save attempt and returns once it is resolved.
//
// Offline, the payload is queued locally and the status becomes offline.
// Online, the status becomes saving while the request is in flight; the
// outcome is then applied unless a newer attempt was issued meanwhile.
//
// Only the values of ctx reach the request: cancelling ctx or closing the
// session does not abort a save already sent, the adapter timeout bounds it.
// A resolution arriving after Close is dropped.
func (s *DraftSession) Save(ctx context.Context, payload models.Payload, version *int64) {
	if !s.online.Online() {
		s.saveOffline(payload, version)
		return
	}

	seq, ok := s.begin(func() {
		s.state.Status = models.StatusSaving
		s.state.Server = nil
		s.state.LastError = ""
	})
	if !ok {
		return
	}

	res, err := s.adapter.SaveDraft(context.WithoutCancel(ctx), models.SaveDraftRequest{
		DraftID: s.draftID,
		Payload: payload,
		Version: version,
	})
	s.resolve(seq, payload, version, res, err)
}

// begin issues a new sequence number and cancels a pending retry, since the
// new attempt supersedes it.
func (s *DraftSession) begin(apply func()) (uint64, bool) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, false
	}
	s.stopRetryLocked()
	s.latestSeq++
	if apply != nil {
		apply()
		s.publishLocked(s.latestSeq)
	}

	return s.latestSeq, true
}

func (s *DraftSession) saveOffline(payload models.Payload, version *int64) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.stopRetryLocked()
	s.latestSeq++
	seq := s.latestSeq
	s.mu.Unlock()

	err := s.store.Set(s.storeCtx, s.draftID, models.LocalDraftRecord{
		Payload: payload,
		Version: version,
		TS:      s.now(),
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(seq) {
		return
	}
	if err != nil {
		s.failLocked(seq, payload, version, fmt.Errorf("queue draft offline: %w", err))
		return
	}

	s.state.Status = models.StatusOffline
	s.state.Server = nil
	s.state.LastError = ""
	s.publishLocked(seq)
}

func (s *DraftSession) resolve(seq uint64, payload models.Payload, version *int64, res models.SaveDraftResult, saveErr error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if !s.isCurrent(seq) {
		s.logger.Debug().Uint64("seq", seq).Msg("dropping superseded save result")
		return
	}

	var conflict *adapter.ConflictError
	switch {
	case saveErr == nil:
		delErr := s.store.Delete(s.storeCtx, s.draftID)

		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.currentLocked(seq) {
			return
		}

		savedAt := res.SavedAt
		s.retry.Reset()
		s.version = models.Int64Ptr(res.Version)
		s.state.Version = models.Int64Ptr(res.Version)
		s.state.SavedAt = &savedAt
		s.state.Status = models.StatusSaved
		s.state.Server = nil
		s.state.NextRetryIn = 0
		s.state.LastError = ""
		if delErr != nil {
			// the server has the content; only the local queue is stale
			s.logger.Err(delErr).Uint64("seq", seq).Msg("failed to clear local draft after confirmed save")
			s.state.LastError = fmt.Sprintf("clear local draft: %v", delErr)
		}
		s.publishLocked(seq)

	case errors.As(saveErr, &conflict):
		setErr := s.store.Set(s.storeCtx, s.draftID, models.LocalDraftRecord{
			Payload: payload,
			Version: version,
			TS:      s.now(),
			Server:  conflict.Server,
		})

		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.currentLocked(seq) {
			return
		}
		if setErr != nil {
			s.failLocked(seq, payload, version, fmt.Errorf("queue conflicting draft: %w", setErr))
			return
		}

		s.state.Status = models.StatusConflict
		s.state.Server = cloneRaw(conflict.Server)
		s.state.NextRetryIn = 0
		s.state.LastError = saveErr.Error()
		s.publishLocked(seq)

	default:
		setErr := s.store.Set(s.storeCtx, s.draftID, models.LocalDraftRecord{
			Payload: payload,
			Version: version,
			TS:      s.now(),
		})

		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.currentLocked(seq) {
			return
		}
		if setErr != nil {
			saveErr = errors.Join(saveErr, fmt.Errorf("queue failed draft: %w", setErr))
		}
		s.failLocked(seq, payload, version, saveErr)
	}
}

// failLocked moves to error and schedules a retry of the same attempt.
func (s *DraftSession) failLocked(seq uint64, payload models.Payload, version *int64, err error) {
	delay := s.retry.Next()

	s.state.Status = models.StatusError
	s.state.Server = nil
	s.state.LastError = err.Error()
	s.state.NextRetryIn = delay

	s.logger.Warn().
		Err(err).
		Uint64("seq", seq).
		Int("failures", s.retry.Failures()).
		Dur("retry_in", delay).
		Msg("draft save failed")

	s.retryGen++
	gen := s.retryGen
	s.retryTimer = s.afterFunc(delay, func() {
		s.mu.Lock()
		if s.closed || gen != s.retryGen {
			s.mu.Unlock()
			return
		}
		s.retryTimer = nil
		s.mu.Unlock()

		s.Save(s.storeCtx, payload, version)
	})

	s.publishLocked(seq)
}

// HydrateAndFlush re-sends a locally queued record, if any, with the payload
// and version it was queued with.
func (s *DraftSession) HydrateAndFlush(ctx context.Context) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}

	rec, err := s.store.Get(s.storeCtx, s.draftID)
	if errors.Is(err, store.ErrLocalDraftNotFound) {
		return
	}
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.logger.Err(err).Msg("failed to read local draft")
		s.state.Status = models.StatusError
		s.state.LastError = fmt.Sprintf("read local draft: %v", err)
		s.state.NextRetryIn = 0
		s.publishLocked(s.latestSeq)
		return
	}

	s.mu.Lock()
	if s.version == nil && rec.Version != nil {
		s.version = models.Int64Ptr(*rec.Version)
	}
	s.mu.Unlock()

	s.logger.Info().Msg("flushing locally queued draft")
	s.Save(ctx, rec.Payload, rec.Version)
}

// MarkOffline forces the offline status. An attempt already in flight is
// not superseded by this and may still resolve.
func (s *DraftSession) MarkOffline() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state.Status == models.StatusOffline {
		return
	}
	s.state.Status = models.StatusOffline
	s.publishLocked(s.latestSeq)
}

// State returns a copy of the public status surface.
func (s *DraftSession) State() models.DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel holding the latest state. The channel has a
// single slot: a slow reader skips intermediate states and always sees the
// newest. The current state is delivered immediately. cancel closes the
// channel; Close does the same for all subscribers.
func (s *DraftSession) Subscribe() (states <-chan models.DraftState, cancel func()) {
	ch := make(chan models.DraftState, 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.snapshotLocked()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close stops the debounce and retry timers, detaches the connectivity
// watcher and closes subscriber channels. Results of attempts still in
// flight are ignored. Call Flush first to keep a pending edit.
func (s *DraftSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopRetryLocked()
	unwatch := s.unwatch
	s.unwatch = nil
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.mu.Unlock()

	s.debouncer.Stop()
	if unwatch != nil {
		unwatch()
	}
	s.cancel()
	s.logger.Debug().Msg("draft session closed")
}

func (s *DraftSession) currentVersion() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version == nil {
		return nil
	}
	return models.Int64Ptr(*s.version)
}

func (s *DraftSession) isCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked(seq)
}

func (s *DraftSession) currentLocked(seq uint64) bool {
	return !s.closed && seq == s.latestSeq
}

func (s *DraftSession) stopRetryLocked() {
	s.retryGen++
	if s.retryTimer != nil {
		s.retryTimer.Stop()
		s.retryTimer = nil
	}
	s.state.NextRetryIn = 0
}

func (s *DraftSession) publishLocked(seq uint64) {
	s.logger.Debug().
		Uint64("seq", seq).
		Str("status", s.state.Status.String()).
		Msg("draft status changed")

	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func (s *DraftSession) snapshotLocked() models.DraftState {
	st := s.state
	if st.Version != nil {
		st.Version = models.Int64Ptr(*st.Version)
	}
	if st.SavedAt != nil {
		t := *st.SavedAt
		st.SavedAt = &t
	}
	st.Server = cloneRaw(st.Server)
	return st
}

func cloneRaw(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
