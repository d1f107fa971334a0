package services

import "errors"

// Sentinel errors shared by all services. Handlers map these onto HTTP
// statuses with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
