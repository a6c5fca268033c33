// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks draft save requests before they reach the
// draft repository.
//
// A [Validator] validates a whole value or only the named fields of it; the
// draft validator knows the draft_id, version and payload fields.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
