package driven

import (
	"context"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

// Extractor converts raw uploaded bytes into plain text.
// Each extractor handles one document format, keyed by file extension.
// Extractors are pure: no side effects beyond the return value.
type Extractor interface {
	// Format returns the document format this extractor produces.
	Format() domain.Format

	// SupportedExtensions returns the file extensions this extractor
	// handles, lowercase with leading dot (e.g., ".txt").
	SupportedExtensions() []string

	// Extract returns the plain-text content of the raw document.
	// A decoder failure is returned as a *domain.ExtractionError;
	// extractors never silently return empty text on failure.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)
}

// ExtractorRegistry selects the appropriate extractor for an upload.
// Dispatch is by the caller-supplied file extension; an unrecognised
// extension is a caller error, never treated as plain text.
type ExtractorRegistry interface {
	// Extract converts a raw document using the extractor registered
	// for its extension. Returns domain.ErrUnsupportedFormat before
	// any extraction attempt when the extension is unknown.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, domain.Format, error)

	// FormatFor resolves the format for a filename without extracting.
	FormatFor(filename string) (domain.Format, error)

	// Register adds an extractor to the registry.
	Register(extractor Extractor)

	// SupportedExtensions returns all extensions that can be extracted.
	SupportedExtensions() []string
}
