// Package common defines sentinel errors shared by the logbook packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("entry not found")

	// Import document errors.
	ErrInvalidFormat     = errors.New("invalid data format")
	ErrMalformedDocument = errors.New("malformed document")

	// File boundary errors.
	ErrUnsupportedFile = errors.New("unsupported file type")
)
