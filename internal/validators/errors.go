package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDraftID = errors.New("invalid draft id")
	ErrDraftIDTooLong = errors.New("draft id is too long")
	ErrInvalidPayload = errors.New("payload must be a JSON object")
	ErrReservedField  = errors.New("payload uses a reserved field")
	ErrInvalidVersion = errors.New("invalid version")
)
