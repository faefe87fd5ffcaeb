package driving

import (
	"context"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

// IngestService turns uploaded documents into searchable knowledge.
type IngestService interface {
	// Ingest extracts, analyses and stores an uploaded document for a
	// tenant, then extracts knowledge items from its segments.
	// Extraction failures leave nothing half-written: on error no
	// document and no items are stored.
	Ingest(ctx context.Context, tenantID, filename string, content []byte) (*domain.Document, error)

	// ListDocuments returns all of a tenant's ingested documents.
	ListDocuments(ctx context.Context, tenantID string) ([]domain.Document, error)

	// GetDocument retrieves one of a tenant's documents by ID.
	GetDocument(ctx context.Context, tenantID, documentID string) (*domain.Document, error)
}
