package tui

import "github.com/MKhiriev/go-draft-keeper/models"

// stateMsg carries a status update from the autosave session.
type stateMsg models.DraftState

// statesClosedMsg is sent once the session stops publishing.
type statesClosedMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type errMsg struct {
	err error
}
