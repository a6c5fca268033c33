// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while decoding the flattened draft-save body.
var (
	// ErrMalformedBody is returned when the body is not a JSON object.
	ErrMalformedBody = errors.New("request body must be a JSON object")

	// ErrInvalidDraftIDField is returned when "draftId" is present but is not
	// a JSON string.
	ErrInvalidDraftIDField = errors.New("`draftId` must be a string")

	// ErrInvalidVersionField is returned when "version" is present but is
	// neither null nor an integer.
	ErrInvalidVersionField = errors.New("`version` must be an integer or null")
)
