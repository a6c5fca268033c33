package store

import "github.com/MKhiriev/go-draft-keeper/internal/logger"

// Storages groups the server-side repositories.
type Storages struct {
	DraftRepository DraftRepository
}

// NewStorages builds the server storage layer. Drafts are kept in memory.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		DraftRepository: NewMemoryDraftRepository(logger),
	}
}
