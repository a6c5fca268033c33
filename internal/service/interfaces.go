package service

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// DraftService accepts save attempts on the reference server.
type DraftService interface {
	// SaveDraft stores the payload if req.Version matches the stored version
	// and returns the new snapshot. On mismatch it returns the current
	// snapshot with [ErrDraftVersionConflict].
	SaveDraft(ctx context.Context, req models.SaveDraftRequest) (models.ServerDraftSnapshot, error)

	// GetDraft returns the stored snapshot of draftID.
	GetDraft(ctx context.Context, draftID string) (models.ServerDraftSnapshot, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DraftServiceWrapper defines middleware composition for DraftService.
// Implementations wrap an existing DraftService to add behavior such as
// logging or validating.
type DraftServiceWrapper interface {
	Wrap(DraftService) DraftService // returns a decorated DraftService applying additional behavior
}
