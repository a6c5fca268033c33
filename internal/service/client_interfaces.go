package service

import "context"

// AutosaveService opens autosave sessions on the client.
type AutosaveService interface {
	// Open creates a session for draftID, attaches it to connectivity
	// transitions and flushes any draft queued by a previous run. The caller
	// owns the session and must Close it.
	Open(ctx context.Context, draftID string) (*DraftSession, error)
}
