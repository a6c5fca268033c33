package adapter

import (
	"encoding/json"
	"errors"
)

var (
	// ErrVersionConflict is matched by every [*ConflictError].
	ErrVersionConflict = errors.New("version conflict")

	// ErrMalformedResponse is returned when a success or conflict body cannot
	// be used.
	ErrMalformedResponse = errors.New("malformed save response")

	// ErrUnexpectedStatus is returned for any non-2xx status other than 409.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// ConflictError carries the server snapshot of a rejected save.
type ConflictError struct {
	// Server is the opaque snapshot from the 409 body.
	Server json.RawMessage
}

func (e *ConflictError) Error() string {
	return ErrVersionConflict.Error()
}

// Is reports ErrVersionConflict as the sentinel of every conflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}
