package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-draft-keeper/internal/app"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMalformedBody:       http.StatusBadRequest,
	ErrInvalidDraftIDField: http.StatusBadRequest,
	ErrInvalidVersionField: http.StatusBadRequest,

	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrDraftVersionConflict: http.StatusConflict,

	store.ErrVersionConflict: http.StatusConflict,
	store.ErrDraftNotFound:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage is the response body for an error answered with status.
// Internal failures are not described to the client.
func errorMessage(status int, err error) string {
	switch status {
	case http.StatusBadRequest:
		return app.MsgInvalidDataProvided + ": " + err.Error()
	case http.StatusNotFound:
		return app.MsgDraftNotFound
	case http.StatusInternalServerError:
		return app.MsgInternalServerError
	default:
		return http.StatusText(status)
	}
}
