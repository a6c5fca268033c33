// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// draftKeyPrefix prefixes every draft id in the local persistence layer.
const draftKeyPrefix = "draft:"

// ErrPayloadNotObject is returned when a payload does not encode a JSON object.
var ErrPayloadNotObject = errors.New("draft payload must be a JSON object")

// DraftKey returns the local persistence key for draftID ("draft:<draftID>").
func DraftKey(draftID string) string {
	return draftKeyPrefix + draftID
}

// Payload is the caller-defined document content of a draft. It always holds
// a JSON object so its fields can be merged into the save request body.
type Payload json.RawMessage

// NewPayload marshals v and checks that the result is a JSON object.
func NewPayload(v any) (Payload, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal draft payload: %w", err)
	}

	return ParsePayload(raw)
}

// ParsePayload validates raw JSON bytes as a draft payload.
func ParsePayload(raw []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrPayloadNotObject
	}

	p := make(Payload, len(trimmed))
	copy(p, trimmed)
	return p, nil
}

// Decode unmarshals the payload into v.
func (p Payload) Decode(v any) error {
	return json.Unmarshal(p, v)
}

// MarshalJSON keeps the payload verbatim on the wire.
func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

// UnmarshalJSON stores a copy of the raw bytes.
func (p *Payload) UnmarshalJSON(b []byte) error {
	if p == nil {
		return errors.New("models.Payload: UnmarshalJSON on nil pointer")
	}
	*p = append((*p)[0:0], b...)
	return nil
}

// Draft is the editable unit of content being autosaved.
type Draft struct {
	// ID is the caller-supplied stable identifier of the draft.
	ID string `json:"draftId"`

	// Payload is the current document content.
	Payload Payload `json:"payload"`

	// Version is the last server-assigned version observed by the client.
	// Nil until the first confirmed save.
	Version *int64 `json:"version,omitempty"`

	// SavedAt is the time of the last confirmed server acknowledgment.
	SavedAt *time.Time `json:"savedAt,omitempty"`
}

// LocalDraftRecord is the snapshot persisted locally whenever a save cannot
// be confirmed immediately (offline, failure or conflict).
type LocalDraftRecord struct {
	// Payload is the content the client attempted to save.
	Payload Payload `json:"payload"`

	// Version is the version the client believed current at attempt time.
	Version *int64 `json:"version,omitempty"`

	// TS is the client wall-clock time of the attempt.
	TS time.Time `json:"ts"`

	// Server is the authoritative remote snapshot returned with a conflict.
	Server json.RawMessage `json:"server,omitempty"`
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}
