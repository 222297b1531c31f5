package service

import "errors"

var (
	// ErrGenerationExhausted means every candidate code collided. Safe to retry.
	ErrGenerationExhausted = errors.New("short code generation exhausted")
	ErrShareNotFound       = errors.New("share not found")
	ErrShareExpired        = errors.New("share expired")
	ErrInvalidExpiry       = errors.New("expiry must be in the future")
)
