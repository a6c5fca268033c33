package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type memoryDraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]models.ServerDraftSnapshot
	logger *logger.Logger
}

// NewMemoryDraftRepository returns an in-process [DraftRepository]. Drafts
// live only as long as the process.
func NewMemoryDraftRepository(logger *logger.Logger) DraftRepository {
	return &memoryDraftRepository{
		drafts: make(map[string]models.ServerDraftSnapshot),
		logger: logger,
	}
}

func (m *memoryDraftRepository) Save(ctx context.Context, draftID string, payload models.Payload, expected *int64, savedAt time.Time) (models.ServerDraftSnapshot, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.drafts[draftID]
	if exists && (expected == nil || *expected != current.Version) {
		log.Debug().
			Str("func", "memoryDraftRepository.Save").
			Str("draft_id", draftID).
			Int64("current_version", current.Version).
			Msg("version mismatch")
		return current, ErrVersionConflict
	}

	next := models.ServerDraftSnapshot{
		DraftID:    draftID,
		Version:    current.Version + 1,
		SavedAtISO: savedAt.UTC().Format(time.RFC3339Nano),
		Payload:    append(models.Payload(nil), payload...),
	}
	m.drafts[draftID] = next

	return next, nil
}

func (m *memoryDraftRepository) Get(ctx context.Context, draftID string) (models.ServerDraftSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	current, ok := m.drafts[draftID]
	if !ok {
		return models.ServerDraftSnapshot{}, ErrDraftNotFound
	}

	return current, nil
}
