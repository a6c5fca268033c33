// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/models"
)

type DraftValidator struct {
}

func NewDraftValidator() Validator {
	return &DraftValidator{}
}

func (v *DraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SaveDraftRequest:
		return v.validateSaveDraftRequest(ctx, value, fields...)
	case *models.SaveDraftRequest:
		return v.validateSaveDraftRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DraftValidator) validateSaveDraftRequest(ctx context.Context, req models.SaveDraftRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDraftID, FieldPayload, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldDraftID:
			if strings.TrimSpace(req.DraftID) == "" {
				return ErrInvalidDraftID
			}
			if len(req.DraftID) > MaxDraftIDLength {
				return ErrDraftIDTooLong
			}
		case FieldPayload:
			if err := validatePayload(req.Payload); err != nil {
				return err
			}
		case FieldVersion:
			if req.Version != nil && *req.Version <= 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// reserved keys are added to the save body by the client
var reservedPayloadKeys = []string{"draftId", "version"}

func validatePayload(p models.Payload) error {
	trimmed := bytes.TrimSpace(p)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrInvalidPayload
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return ErrInvalidPayload
	}
	for _, k := range reservedPayloadKeys {
		if _, ok := fields[k]; ok {
			return ErrReservedField
		}
	}

	return nil
}
