package errors

import "errors"

var (
	// ErrAuthRequired signals that no bearer token was available for a
	// protected operation; no upstream call is made in that case.
	ErrAuthRequired = errors.New("authentication required")
	// ErrNotFound signals an empty result set for a query.
	ErrNotFound = errors.New("not found")
)
