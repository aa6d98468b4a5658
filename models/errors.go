package models

import "errors"

// Outcome variants shared by every mutating operation. Controllers map
// these onto HTTP statuses; services wrap them with context.
var (
	// ErrNotAuthenticated is returned when a mutating operation is
	// attempted with no active identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when a referenced profile, conversation,
	// post, event, or group is absent from its collection.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRequested is returned when a connection request already
	// exists between two profiles, in either direction, or the pair is
	// already connected.
	ErrAlreadyRequested = errors.New("connection already requested")

	// ErrInvalidState is returned for operations whose precondition does
	// not hold, e.g. accepting a request that was never sent or posting
	// into a group the author has not joined.
	ErrInvalidState = errors.New("invalid state")
)
