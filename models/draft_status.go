package models

import (
	"encoding/json"
	"time"
)

// DraftStatus is the observable state of a draft autosave session.
type DraftStatus string

const (
	// StatusIdle means no attempt is in flight and nothing is pending.
	StatusIdle DraftStatus = "idle"
	// StatusSaving means a network attempt is in flight.
	StatusSaving DraftStatus = "saving"
	// StatusSaved means the last attempt was confirmed by the server.
	StatusSaved DraftStatus = "saved"
	// StatusOffline means the last attempt skipped the network and was
	// persisted locally.
	StatusOffline DraftStatus = "offline"
	// StatusError means the last attempt failed; it is persisted locally and
	// a retry is scheduled.
	StatusError DraftStatus = "error"
	// StatusConflict means the server rejected the attempt with a version
	// mismatch. Local edits are retained and the server snapshot attached.
	StatusConflict DraftStatus = "conflict"
)

// String implements fmt.Stringer.
func (s DraftStatus) String() string {
	return string(s)
}

// DraftState is the public status surface of an autosave session.
type DraftState struct {
	DraftID string      `json:"draftId"`
	Status  DraftStatus `json:"status"`

	// SavedAt is the time of the last confirmed save, nil before the first one.
	SavedAt *time.Time `json:"savedAt,omitempty"`

	// Version is the last server version adopted by the session.
	Version *int64 `json:"version,omitempty"`

	// Server holds the remote snapshot while Status is StatusConflict.
	Server json.RawMessage `json:"server,omitempty"`

	// LastError describes the most recent failure, if any.
	LastError string `json:"lastError,omitempty"`

	// NextRetryIn is the delay of the scheduled retry while Status is StatusError.
	NextRetryIn time.Duration `json:"nextRetryIn,omitempty"`
}
