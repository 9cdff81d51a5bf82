package servable

import "errors"

// Error definitions for the servable package.
var (
	ErrNotFound = errors.New("servable not found in registry")
)
