package domain

import "errors"

var (
	// ErrInvalidDate returned for malformed calendar dates
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrInvalidCapacity returned when (available, total) cannot describe a session
	ErrInvalidCapacity = errors.New("domain: invalid capacity")

	// ErrInvalidSession returned when a session record violates its invariants
	ErrInvalidSession = errors.New("domain: invalid session")
)
