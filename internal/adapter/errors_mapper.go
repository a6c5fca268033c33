package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-draft-keeper/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusConflict {
		// a 409 without a usable snapshot cannot be reconciled and is retried
		var body models.ConflictResponse
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return fmt.Errorf("%w: conflict body: %w", ErrMalformedResponse, err)
		}
		if len(body.Server) == 0 || string(body.Server) == "null" {
			return fmt.Errorf("%w: conflict body has no server snapshot", ErrMalformedResponse)
		}
		return &ConflictError{Server: body.Server}
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
}
