package store

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalDraftStore is the durable client-side queue of unconfirmed drafts.
// It holds at most one record per draft id; every write overwrites.
type LocalDraftStore interface {
	// Set stores rec under the key of draftID, replacing any previous record.
	Set(ctx context.Context, draftID string, rec models.LocalDraftRecord) error

	// Get returns the record stored for draftID, or [ErrLocalDraftNotFound]
	// when nothing is queued.
	Get(ctx context.Context, draftID string) (models.LocalDraftRecord, error)

	// Delete removes the record of draftID. Deleting a missing record is a
	// no-op.
	Delete(ctx context.Context, draftID string) error
}
