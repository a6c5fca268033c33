// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-draft-keeper/models"
)

const localDraftsTable = "local_drafts"

var localDraftColumns = []string{"payload", "version", "ts", "server"}

// sqlite uses ? placeholders
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildUpsertLocalDraftQuery builds the INSERT ... ON CONFLICT statement that
// replaces the queued record of a draft.
func buildUpsertLocalDraftQuery(key string, rec models.LocalDraftRecord) (string, []any, error) {
	var version sql.NullInt64
	if rec.Version != nil {
		version = sql.NullInt64{Int64: *rec.Version, Valid: true}
	}

	// nil []byte is bound as an empty blob by the driver, so NULL is passed explicitly
	var server any
	if len(rec.Server) > 0 {
		server = []byte(rec.Server)
	}

	query, args, err := sqlite.
		Insert(localDraftsTable).
		Columns("draft_key", "payload", "version", "ts", "server").
		Values(key, []byte(rec.Payload), version, rec.TS.UnixMilli(), server).
		Suffix("ON CONFLICT(draft_key) DO UPDATE SET " +
			"payload = excluded.payload, " +
			"version = excluded.version, " +
			"ts = excluded.ts, " +
			"server = excluded.server").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectLocalDraftQuery(key string) (string, []any, error) {
	query, args, err := sqlite.
		Select(localDraftColumns...).
		From(localDraftsTable).
		Where(sq.Eq{"draft_key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteLocalDraftQuery(key string) (string, []any, error) {
	query, args, err := sqlite.
		Delete(localDraftsTable).
		Where(sq.Eq{"draft_key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
