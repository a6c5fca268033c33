// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the autosave engine to talk
// to the draft-save endpoint.
//
// The primary abstraction is [DraftAdapter], which decouples the service layer
// from HTTP. The package ships a resty-based implementation
// ([NewHTTPDraftAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] and [errors.As]: a 409 is
// a [*ConflictError] matching [ErrVersionConflict]; everything else that is
// not a 2xx matches [ErrUnexpectedStatus].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/draft_adapter_mock.go -package=mock

// DraftAdapter sends save attempts to the server.
type DraftAdapter interface {
	// SaveDraft POSTs the payload fields together with draftId and version.
	// It returns [*ConflictError] on a version mismatch, [ErrMalformedResponse]
	// when a 2xx body lacks a version or a parsable savedAtISO, and
	// [ErrUnexpectedStatus] for any other non-2xx status. Transport errors are
	// returned wrapped.
	SaveDraft(ctx context.Context, req models.SaveDraftRequest) (models.SaveDraftResult, error)
}

// HealthChecker reports whether the server is reachable.
type HealthChecker interface {
	// Health returns nil when the server answered the health probe with a
	// 2xx status.
	Health(ctx context.Context) error
}
