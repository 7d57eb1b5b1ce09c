// Package common defines sentinel errors shared by the generator, the
// staging store and the applier. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Encoder / generator errors.
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrMalformedValue = errors.New("malformed serialized value")

	// Batch file errors.
	ErrUnsupportedFormat = errors.New("unsupported batch file format")
	ErrNoEntries         = errors.New("no entries in batch file")

	// Apply flow control (operator declined the confirmation prompt).
	ErrAborted = errors.New("aborted by operator")
)
