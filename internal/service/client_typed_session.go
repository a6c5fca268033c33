package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// TypedSession binds a [DraftSession] to a document type P. P must marshal
// to a JSON object.
type TypedSession[P any] struct {
	*DraftSession
}

// Typed wraps s for documents of type P.
func Typed[P any](s *DraftSession) *TypedSession[P] {
	return &TypedSession[P]{DraftSession: s}
}

// Edit encodes doc and schedules a debounced save.
func (t *TypedSession[P]) Edit(doc P) error {
	p, err := models.NewPayload(doc)
	if err != nil {
		return err
	}
	t.DraftSession.Edit(p)
	return nil
}

// Save encodes doc and runs one save attempt.
func (t *TypedSession[P]) Save(ctx context.Context, doc P, version *int64) error {
	p, err := models.NewPayload(doc)
	if err != nil {
		return err
	}
	t.DraftSession.Save(ctx, p, version)
	return nil
}

// ServerDocument decodes the server snapshot attached to a conflict. It
// returns false when there is no snapshot or it does not carry a payload
// decodable into P.
func (t *TypedSession[P]) ServerDocument() (doc P, version int64, ok bool) {
	st := t.State()
	if st.Status != models.StatusConflict || len(st.Server) == 0 {
		return doc, 0, false
	}

	var snap models.ServerDraftSnapshot
	if err := json.Unmarshal(st.Server, &snap); err != nil || len(snap.Payload) == 0 {
		return doc, 0, false
	}
	if err := snap.Payload.Decode(&doc); err != nil {
		return doc, 0, false
	}

	return doc, snap.Version, true
}
