package models

import "errors"

// Sentinel errors shared by the stores and handlers.
// Handlers match these with errors.Is to pick the HTTP status code,
// so store and model code should wrap them (fmt.Errorf("%w: ...")) rather
// than invent new ones.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPersistence       = errors.New("persistence failure")
	ErrInvalidCredential = errors.New("invalid credential")
)
