package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/connectivity"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/tui"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/internal/workers"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// App is the draft editor client: local queue, HTTP adapter, connectivity
// prober and the terminal editor bound to one autosave session.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp validates the wiring inputs of the client.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("client config is nil")
	}

	return &App{cfg: cfg, buildInfo: buildInfo, logger: logger}, nil
}

// Run implements [Client].
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages := store.NewClientStorages(a.cfg.Storage, a.logger)
	defer func() {
		if err := storages.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close local storage")
		}
	}()

	draftAdapter, err := adapter.NewHTTPDraftAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create draft adapter: %w", err)
	}

	// офлайн до первой успешной проверки сервера
	monitor := connectivity.NewMonitor(false)
	services := service.NewClientServices(storages.Drafts, draftAdapter, monitor, a.cfg.Autosave, a.logger)

	bg := workers.NewClientWorkers(draftAdapter, monitor, a.cfg.Workers, a.logger)
	bg.Start(ctx)
	defer bg.Stop()

	draftID := a.cfg.App.DraftID
	if draftID == "" {
		draftID = utils.NewUUIDGenerator().Generate()
		a.logger.Info().Str("draft_id", draftID).Msg("no draft id configured, starting a new draft")
	}

	initial := a.queuedPayload(ctx, storages.Drafts, draftID)

	session, err := services.AutosaveService.Open(ctx, draftID)
	if err != nil {
		return fmt.Errorf("open draft session: %w", err)
	}
	defer session.Close()

	return tui.New(session, initial, a.buildInfo, a.logger).Run(ctx)
}

// queuedPayload returns the draft left in the local queue by a previous run
// so the editor can show it. Open flushes and may delete the record, so it
// is read first.
func (a *App) queuedPayload(ctx context.Context, localStore store.LocalDraftStore, draftID string) models.Payload {
	rec, err := localStore.Get(ctx, draftID)
	if err != nil {
		if !errors.Is(err, store.ErrLocalDraftNotFound) {
			a.logger.Warn().Err(err).Str("draft_id", draftID).Msg("failed to read queued draft")
		}
		return nil
	}

	return rec.Payload
}
