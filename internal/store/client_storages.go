package store

import (
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

// ClientStorages groups the client-side storage used by the service layer.
// It holds the single process-wide draft queue; constructing it performs no
// I/O because the queue opens its database lazily.
type ClientStorages struct {
	// Drafts is the SQLite-backed queue of unconfirmed drafts.
	Drafts *SQLiteDraftStore
}

// NewClientStorages builds the client storage layer for cfg.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) *ClientStorages {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	return &ClientStorages{
		Drafts: NewLocalDraftStore(cfg.DB, logger),
	}
}

// Close releases every storage handle.
func (s *ClientStorages) Close() error {
	return s.Drafts.Close()
}
