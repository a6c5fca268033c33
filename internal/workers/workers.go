package workers

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/connectivity"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers builds the background workers of the editor client: the
// connectivity prober that feeds monitor.
func NewClientWorkers(checker adapter.HealthChecker, monitor *connectivity.Monitor, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			connectivity.NewProber(checker, monitor, cfg.ProbeInterval, logger),
		},
	}
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
