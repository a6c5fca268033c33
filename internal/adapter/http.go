package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	saveDraftPath = "/api/drafts/save"
	healthPath    = "/api/health"
)

// HTTPDraftAdapter implements [DraftAdapter] and [HealthChecker] over HTTP.
type HTTPDraftAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDraftAdapter constructs the resty implementation of [DraftAdapter]
// and [HealthChecker]. It normalises adapterCfg.HTTPAddress (a missing scheme
// defaults to http) and applies adapterCfg.RequestTimeout to every request.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPDraftAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (*HTTPDraftAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().Configure(baseURL, adapterCfg.RequestTimeout)

	return &HTTPDraftAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SaveDraft implements [DraftAdapter].
func (h *HTTPDraftAdapter) SaveDraft(ctx context.Context, req models.SaveDraftRequest) (models.SaveDraftResult, error) {
	body, err := buildSaveBody(req)
	if err != nil {
		return models.SaveDraftResult{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(saveDraftPath)
	if err != nil {
		return models.SaveDraftResult{}, fmt.Errorf("save draft request: %w", err)
	}
	h.logger.Debug().
		Str("func", "HTTPDraftAdapter.SaveDraft").
		Str("draft_id", req.DraftID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("save draft response")
	if err = mapHTTPError(resp); err != nil {
		return models.SaveDraftResult{}, err
	}

	var sr models.SaveDraftResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SaveDraftResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if sr.Version == nil {
		return models.SaveDraftResult{}, fmt.Errorf("%w: missing version", ErrMalformedResponse)
	}
	savedAt, err := time.Parse(time.RFC3339, sr.SavedAtISO)
	if err != nil {
		return models.SaveDraftResult{}, fmt.Errorf("%w: savedAtISO: %w", ErrMalformedResponse, err)
	}

	return models.SaveDraftResult{Version: *sr.Version, SavedAt: savedAt}, nil
}

// Health implements [HealthChecker].
func (h *HTTPDraftAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Head(healthPath)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// buildSaveBody flattens the payload object and adds draftId and version on
// top of it. A nil version removes any "version" key the payload carried.
func buildSaveBody(req models.SaveDraftRequest) ([]byte, error) {
	fields := make(map[string]json.RawMessage)
	if len(req.Payload) > 0 {
		if err := json.Unmarshal(req.Payload, &fields); err != nil {
			return nil, fmt.Errorf("%w: %w", models.ErrPayloadNotObject, err)
		}
		if fields == nil {
			return nil, models.ErrPayloadNotObject
		}
	}

	id, err := json.Marshal(req.DraftID)
	if err != nil {
		return nil, err
	}
	fields["draftId"] = id

	if req.Version != nil {
		fields["version"] = json.RawMessage(fmt.Sprintf("%d", *req.Version))
	} else {
		delete(fields, "version")
	}

	return json.Marshal(fields)
}
