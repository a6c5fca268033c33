package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type draftService struct {
	draftRepository store.DraftRepository
	now             func() time.Time

	logger *logger.Logger
}

func NewDraftService(draftRepository store.DraftRepository, logger *logger.Logger) DraftService {
	return &draftService{
		draftRepository: draftRepository,
		now:             time.Now,
		logger:          logger,
	}
}

func (d *draftService) SaveDraft(ctx context.Context, req models.SaveDraftRequest) (models.ServerDraftSnapshot, error) {
	snapshot, err := d.draftRepository.Save(ctx, req.DraftID, req.Payload, req.Version, d.now())
	if errors.Is(err, store.ErrVersionConflict) {
		return snapshot, fmt.Errorf("%w: %w", ErrDraftVersionConflict, err)
	}
	if err != nil {
		return models.ServerDraftSnapshot{}, fmt.Errorf("save draft: %w", err)
	}

	return snapshot, nil
}

func (d *draftService) GetDraft(ctx context.Context, draftID string) (models.ServerDraftSnapshot, error) {
	snapshot, err := d.draftRepository.Get(ctx, draftID)
	if err != nil {
		return models.ServerDraftSnapshot{}, fmt.Errorf("get draft: %w", err)
	}

	return snapshot, nil
}
