package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrDraftVersionConflict = errors.New("draft version conflict")
	ErrEmptyDraftID         = errors.New("draft id is empty")
)
