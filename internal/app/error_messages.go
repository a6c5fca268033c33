// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GoDraftKeeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided prefixes the reason a save request body was
	// rejected (malformed JSON, missing draftId, bad version).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidGzipData is returned when a gzip-encoded body cannot be read.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgDraftNotFound is returned when the requested draft was never saved.
	MsgDraftNotFound = "draft not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
