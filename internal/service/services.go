package service

import (
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
)

type Services struct {
	DraftService   DraftService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	draftService := NewDraftValidationService().Wrap(
		NewDraftService(storages.DraftRepository, logger),
	)

	return &Services{
		DraftService:   draftService,
		AppInfoService: appInfo,
	}, nil
}
