package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// DraftRepository keeps the server copy of every draft together with its
// monotonically increasing version.
type DraftRepository interface {
	// Save stores payload when expected matches the current version of the
	// draft (or the draft does not exist yet) and returns the new snapshot.
	// On mismatch it returns the current snapshot and [ErrVersionConflict].
	Save(ctx context.Context, draftID string, payload models.Payload, expected *int64, savedAt time.Time) (models.ServerDraftSnapshot, error)

	// Get returns the current snapshot or [ErrDraftNotFound].
	Get(ctx context.Context, draftID string) (models.ServerDraftSnapshot, error)
}
