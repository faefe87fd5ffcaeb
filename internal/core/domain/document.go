package domain

import "time"

// Format identifies the file format of an uploaded document.
type Format string

const (
	// FormatText is plain text (.txt).
	FormatText Format = "text"

	// FormatDocx is a word-processor document (.docx).
	FormatDocx Format = "docx"

	// FormatPDF is a PDF document (.pdf).
	FormatPDF Format = "pdf"
)

// Status tracks a document through the ingestion pipeline.
type Status string

const (
	// StatusProcessing means extraction is in progress.
	StatusProcessing Status = "processing"

	// StatusCompleted means extraction succeeded and metadata was computed.
	StatusCompleted Status = "completed"

	// StatusFailed means extraction failed; no document is stored.
	StatusFailed Status = "failed"
)

// Metadata holds properties derived from a document's text and filename.
type Metadata struct {
	// Title is the derived document title.
	Title string

	// Author is the detected author, empty if none was found.
	Author string

	// CreatedAt is when the metadata was computed.
	CreatedAt time.Time

	// Size is the original upload size in bytes.
	Size int64

	// WordCount is the number of whitespace-delimited tokens.
	WordCount int

	// Topics are the business topics detected in the text.
	Topics []string

	// Keywords are the most frequent significant terms, ordered by frequency.
	Keywords []string
}

// Document represents an ingested document owned by a single tenant.
// It is the canonical representation after extraction.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// TenantID identifies the owning tenant. Documents are never
	// visible across tenants.
	TenantID string

	// Filename is the original upload filename.
	Filename string

	// Format is the declared file format, derived from the extension.
	Format Format

	// Content is the full extracted plain text.
	Content string

	// Metadata contains derived document properties.
	Metadata Metadata

	// Status is the processing state.
	Status Status

	// ProcessedAt is when ingestion finished.
	ProcessedAt time.Time
}

// RawDocument represents opaque uploaded bytes before extraction.
type RawDocument struct {
	// TenantID identifies the owning tenant.
	TenantID string

	// Filename is the caller-supplied filename; its extension
	// determines the format.
	Filename string

	// Content is the raw bytes.
	Content []byte
}
