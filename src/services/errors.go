package services

import "errors"

// Domain errors surfaced to handlers; raw datastore errors never cross the
// service boundary.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidUserRef = errors.New("user does not exist")
	ErrIntegrity      = errors.New("integrity constraint violated")
)
