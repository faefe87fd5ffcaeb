package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

// KnowledgeStore persists documents and knowledge items, partitioned
// by tenant. Every operation is scoped to a single tenant; a tenant id
// that was never written behaves as an empty tenant, not an error.
//
// Implementations must be safe for concurrent use and must not let one
// tenant's writes block another tenant's reads.
type KnowledgeStore interface {
	// SaveDocument stores a completed document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveItems appends knowledge items for a tenant. Items are
	// append-only; re-ingesting a document produces new items
	// alongside the old ones.
	SaveItems(ctx context.Context, items []domain.KnowledgeItem) error

	// GetDocument retrieves one of the tenant's documents by ID.
	GetDocument(ctx context.Context, tenantID, documentID string) (*domain.Document, error)

	// ListDocuments returns all documents owned by the tenant.
	ListDocuments(ctx context.Context, tenantID string) ([]domain.Document, error)

	// ListItems returns all knowledge items owned by the tenant.
	ListItems(ctx context.Context, tenantID string) ([]domain.KnowledgeItem, error)

	// RecordUsage increments the usage count and sets the last-used
	// time for the given items. Counts are exact; the store serialises
	// concurrent bumps per tenant.
	RecordUsage(ctx context.Context, tenantID string, itemIDs []string, usedAt time.Time) error

	// Stats summarises the tenant's knowledge base.
	Stats(ctx context.Context, tenantID string) (*domain.KnowledgeStats, error)

	// Clear removes every document and knowledge item owned by the
	// tenant. Irreversible; there is no soft delete.
	Clear(ctx context.Context, tenantID string) error

	// Close releases resources.
	Close() error
}
