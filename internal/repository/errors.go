package repository

import "errors"

var (
	ErrNotFound = errors.New("share not found")
	// ErrCodeTaken reports that the short code of an insert is already stored.
	ErrCodeTaken = errors.New("short code already taken")
	// ErrSerialization is a transient conflict; the whole transaction may be retried.
	ErrSerialization = errors.New("transaction serialization failure")
)
