package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

const defaultProbeInterval = 5 * time.Second

// Prober periodically checks server health and updates a [Monitor].
// It is idle until Start is called.
type Prober struct {
	checker  adapter.HealthChecker
	monitor  *Monitor
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProber creates a prober. A non-positive interval defaults to five
// seconds; each check is bounded by the interval.
func NewProber(checker adapter.HealthChecker, monitor *Monitor, interval time.Duration, logger *logger.Logger) *Prober {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &Prober{
		checker:  checker,
		monitor:  monitor,
		interval: interval,
		timeout:  interval,
		logger:   logger,
	}
}

// Start stops any previous run, probes once immediately and then on every
// tick until ctx is cancelled or Stop is called.
func (p *Prober) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.Probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.Probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and waits for it to exit. Safe to
// call when the prober is not running.
func (p *Prober) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Probe runs a single health check and records the result. A check that
// fails only because ctx was cancelled is not recorded.
func (p *Prober) Probe(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.checker.Health(checkCtx)
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		if p.monitor.Online() {
			p.logger.Warn().Err(err).Msg("draft server unreachable, switching to offline")
		}
		p.monitor.Set(false)
		return
	}

	if !p.monitor.Online() {
		p.logger.Info().Msg("draft server reachable, switching to online")
	}
	p.monitor.Set(true)
}
