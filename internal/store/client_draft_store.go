package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	busyRetries = 3
	busyBackoff = 50 * time.Millisecond
)

// SQLiteDraftStore is the [LocalDraftStore] backed by a SQLite file.
//
// The database is opened and migrated on first use. Concurrent first callers
// share a single initialisation; a failed initialisation is not cached and
// is attempted again by the next operation.
type SQLiteDraftStore struct {
	open   func(ctx context.Context) (*DB, error)
	mu     sync.Mutex
	db     atomic.Pointer[DB]
	logger *logger.Logger
}

// NewLocalDraftStore returns a lazily initialised store for the database at
// cfg.DSN. No I/O happens until the first Set, Get or Delete.
func NewLocalDraftStore(cfg config.ClientDB, log *logger.Logger) *SQLiteDraftStore {
	return newLazyDraftStore(func(ctx context.Context) (*DB, error) {
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return db, nil
	}, log)
}

func newLazyDraftStore(open func(ctx context.Context) (*DB, error), log *logger.Logger) *SQLiteDraftStore {
	return &SQLiteDraftStore{
		open:   open,
		logger: log,
	}
}

func (s *SQLiteDraftStore) conn(ctx context.Context) (*DB, error) {
	if db := s.db.Load(); db != nil {
		return db, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if db := s.db.Load(); db != nil {
		return db, nil
	}

	db, err := s.open(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "SQLiteDraftStore.conn").Msg("failed to initialise local draft store")
		return nil, fmt.Errorf("%w: %w", ErrLocalStoreUnavailable, err)
	}
	s.db.Store(db)

	return db, nil
}

// Set implements [LocalDraftStore].
func (s *SQLiteDraftStore) Set(ctx context.Context, draftID string, rec models.LocalDraftRecord) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	query, args, err := buildUpsertLocalDraftQuery(models.DraftKey(draftID), rec)
	if err != nil {
		return err
	}

	if err = db.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "SQLiteDraftStore.Set").
			Str("draft_id", draftID).
			Msg("failed to upsert local draft")
		return fmt.Errorf("failed to save local draft (draft_id=%s): %w", draftID, err)
	}

	return nil
}

// Get implements [LocalDraftStore].
func (s *SQLiteDraftStore) Get(ctx context.Context, draftID string) (models.LocalDraftRecord, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return models.LocalDraftRecord{}, err
	}

	query, args, err := buildSelectLocalDraftQuery(models.DraftKey(draftID))
	if err != nil {
		return models.LocalDraftRecord{}, err
	}

	var (
		payload []byte
		version sql.NullInt64
		ts      int64
		server  []byte
	)
	err = db.QueryRowContext(ctx, query, args...).Scan(&payload, &version, &ts, &server)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalDraftRecord{}, ErrLocalDraftNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "SQLiteDraftStore.Get").
			Str("draft_id", draftID).
			Msg("failed to read local draft")
		return models.LocalDraftRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rec := models.LocalDraftRecord{
		Payload: models.Payload(payload),
		TS:      time.UnixMilli(ts),
	}
	if version.Valid {
		rec.Version = models.Int64Ptr(version.Int64)
	}
	if len(server) > 0 {
		rec.Server = server
	}

	return rec, nil
}

// Delete implements [LocalDraftStore].
func (s *SQLiteDraftStore) Delete(ctx context.Context, draftID string) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	query, args, err := buildDeleteLocalDraftQuery(models.DraftKey(draftID))
	if err != nil {
		return err
	}

	if err = db.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "SQLiteDraftStore.Delete").
			Str("draft_id", draftID).
			Msg("failed to delete local draft")
		return fmt.Errorf("failed to delete local draft (draft_id=%s): %w", draftID, err)
	}

	return nil
}

// Close releases the database handle if it was ever opened.
func (s *SQLiteDraftStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.db.Swap(nil)
	if db == nil {
		return nil
	}
	return db.Close()
}

// exec runs a write statement, retrying briefly while the file is busy or
// locked by another process.
func (db *DB) exec(ctx context.Context, query string, args ...any) error {
	backoff := retry.WithMaxRetries(busyRetries, retry.NewConstant(busyBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	})
}
