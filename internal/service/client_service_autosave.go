package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/connectivity"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
)

type autosaveService struct {
	localStore   store.LocalDraftStore
	draftAdapter adapter.DraftAdapter
	monitor      connectivity.Source
	cfg          SessionConfig
	opts         []SessionOption

	logger *logger.Logger
}

// NewAutosaveService builds the session factory used by the editor.
func NewAutosaveService(
	localStore store.LocalDraftStore,
	draftAdapter adapter.DraftAdapter,
	monitor connectivity.Source,
	cfg config.ClientAutosave,
	logger *logger.Logger,
	opts ...SessionOption,
) AutosaveService {
	return &autosaveService{
		localStore:   localStore,
		draftAdapter: draftAdapter,
		monitor:      monitor,
		cfg: SessionConfig{
			Debounce:  cfg.Debounce,
			RetryBase: cfg.RetryBase,
			RetryMax:  cfg.RetryMax,
		},
		opts:   opts,
		logger: logger,
	}
}

// Open implements [AutosaveService]. The initial flush runs in the caller's
// goroutine.
func (a *autosaveService) Open(ctx context.Context, draftID string) (*DraftSession, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return nil, ErrEmptyDraftID
	}

	session := NewDraftSession(draftID, a.localStore, a.draftAdapter, a.monitor, a.cfg, a.logger, a.opts...)
	session.Watch(a.monitor)
	session.HydrateAndFlush(ctx)

	a.logger.Info().Str("draft_id", draftID).Str("status", session.State().Status.String()).Msg("draft session opened")
	return session, nil
}
