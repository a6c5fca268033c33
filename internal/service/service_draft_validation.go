package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/validators"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type DraftValidationService struct {
	inner     DraftService
	validator validators.Validator
}

func NewDraftValidationService() DraftServiceWrapper {
	return &DraftValidationService{
		validator: validators.NewDraftValidator(),
	}
}

func (v *DraftValidationService) SaveDraft(ctx context.Context, req models.SaveDraftRequest) (models.ServerDraftSnapshot, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ServerDraftSnapshot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveDraft(ctx, req)
}

func (v *DraftValidationService) GetDraft(ctx context.Context, draftID string) (models.ServerDraftSnapshot, error) {
	if err := v.validator.Validate(ctx, models.SaveDraftRequest{DraftID: draftID}, validators.FieldDraftID); err != nil {
		return models.ServerDraftSnapshot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetDraft(ctx, draftID)
}

func (v *DraftValidationService) Wrap(inner DraftService) DraftService {
	v.inner = inner
	return v
}
