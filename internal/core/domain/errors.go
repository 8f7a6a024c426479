package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// Network Errors.

	// ErrUnexpectedStatus indicates a remote service answered with a non-2xx status.
	// Pages answered this way are treated as carrying no data.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrNoSearchResults indicates the search provider returned nothing for a query.
	ErrNoSearchResults = errors.New("no search results")

	// Storage Errors.

	// ErrArchiveFormat indicates an archive could not be decoded.
	ErrArchiveFormat = errors.New("unreadable archive")
)
