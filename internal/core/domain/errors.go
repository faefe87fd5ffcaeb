package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedFormat indicates an unrecognised file extension.
	// The upload is rejected before any extraction attempt.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExtraction indicates a decoder failed on a recognised format.
	// Wrapped by ExtractionError which carries format and filename.
	ErrExtraction = errors.New("extraction failed")

	// ErrGeneratorUnavailable indicates the text-generation service is
	// not configured. Grounded answer generation is disabled.
	ErrGeneratorUnavailable = errors.New("generator service unavailable")
)

// ExtractionError reports a failed extraction with enough context to
// log usefully. It wraps both ErrExtraction and the decoder's cause,
// so callers can match either with errors.Is.
type ExtractionError struct {
	// Format is the declared document format.
	Format Format

	// Filename is the original upload filename.
	Filename string

	// Cause is the underlying decoder error. A context deadline or
	// cancellation surfaces here so callers can distinguish timeouts
	// from corrupt input.
	Cause error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s (%s): %v", e.Filename, e.Format, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Is matches ErrExtraction in addition to the wrapped cause chain.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// NewExtractionError wraps a decoder failure with format and filename.
func NewExtractionError(format Format, filename string, cause error) *ExtractionError {
	return &ExtractionError{Format: format, Filename: filename, Cause: cause}
}
