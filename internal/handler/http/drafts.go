package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type conflictResponse struct {
	Server models.ServerDraftSnapshot `json:"server"`
}

func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeSaveDraftRequest(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveDraft").Msg("invalid save draft body")
		http.Error(w, errorMessage(http.StatusBadRequest, err), http.StatusBadRequest)
		return
	}

	snapshot, err := h.services.DraftService.SaveDraft(r.Context(), req)
	if errors.Is(err, service.ErrDraftVersionConflict) {
		log.Info().
			Str("draft_id", req.DraftID).
			Int64("server_version", snapshot.Version).
			Msg("draft version conflict")
		writeJSON(w, r, http.StatusConflict, conflictResponse{Server: snapshot})
		return
	}
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.saveDraft").Int("status", status).Msg("error saving draft")
		http.Error(w, errorMessage(status, err), status)
		return
	}

	writeJSON(w, r, http.StatusOK, models.SaveDraftResponse{
		Version:    &snapshot.Version,
		SavedAtISO: snapshot.SavedAtISO,
	})
}

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshot, err := h.services.DraftService.GetDraft(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getDraft").Int("status", status).Msg("error getting draft")
		http.Error(w, errorMessage(status, err), status)
		return
	}

	writeJSON(w, r, http.StatusOK, snapshot)
}

// decodeSaveDraftRequest splits the flat body into draftId, version and the
// remaining payload fields.
func decodeSaveDraftRequest(body io.Reader) (models.SaveDraftRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return models.SaveDraftRequest{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if fields == nil {
		return models.SaveDraftRequest{}, ErrMalformedBody
	}

	var req models.SaveDraftRequest
	if raw, ok := fields["draftId"]; ok {
		if err := json.Unmarshal(raw, &req.DraftID); err != nil {
			return models.SaveDraftRequest{}, ErrInvalidDraftIDField
		}
		delete(fields, "draftId")
	}
	if raw, ok := fields["version"]; ok {
		if err := json.Unmarshal(raw, &req.Version); err != nil {
			return models.SaveDraftRequest{}, ErrInvalidVersionField
		}
		delete(fields, "version")
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return models.SaveDraftRequest{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	req.Payload = models.Payload(payload)

	return req, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if _, err := utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("failed to write response")
	}
}
