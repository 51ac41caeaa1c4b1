package settings

import "errors"

var (
	// ErrNotFound is returned by callers (e.g. the CLI with --fail) when a
	// service/item entry does not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrEmptyKey is returned when a service or item key is empty.
	ErrEmptyKey = errors.New("service and item keys cannot be empty")
)
