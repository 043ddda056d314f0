package services

import "errors"

// Expected failure kinds. Handlers map these onto the response envelope;
// anything else is treated as an internal fault.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid input")
)
