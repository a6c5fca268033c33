package models

import (
	"encoding/json"
	"time"
)

// SaveDraftRequest is a single save attempt sent to the draft-save endpoint.
// On the wire the payload fields are flattened next to draftId and version.
type SaveDraftRequest struct {
	DraftID string
	Payload Payload
	// Version is omitted from the body when nil.
	Version *int64
}

// SaveDraftResponse is the success body of the draft-save endpoint.
type SaveDraftResponse struct {
	Version    *int64 `json:"version"`
	SavedAtISO string `json:"savedAtISO"`
}

// ConflictResponse is the 409 body of the draft-save endpoint.
type ConflictResponse struct {
	// Server is the opaque remote snapshot.
	Server json.RawMessage `json:"server"`
}

// ServerDraftSnapshot is the snapshot the reference server attaches to a
// conflict. Clients must treat it as opaque; the terminal editor reads the
// version and payload when the shape matches.
type ServerDraftSnapshot struct {
	DraftID    string  `json:"draftId"`
	Version    int64   `json:"version"`
	SavedAtISO string  `json:"savedAtISO"`
	Payload    Payload `json:"payload"`
}

// SaveDraftResult is a validated success response.
type SaveDraftResult struct {
	Version int64
	SavedAt time.Time
}
