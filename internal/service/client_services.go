package service

import (
	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/connectivity"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
)

type ClientServices struct {
	AutosaveService AutosaveService
}

func NewClientServices(
	localStore store.LocalDraftStore,
	draftAdapter adapter.DraftAdapter,
	monitor connectivity.Source,
	cfg config.ClientAutosave,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		AutosaveService: NewAutosaveService(localStore, draftAdapter, monitor, cfg, logger),
	}
}
