package driving

import (
	"context"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

// QueryService answers free-text queries from a tenant's knowledge base
// and exposes the administrative operations alongside them.
type QueryService interface {
	// Query ranks the tenant's knowledge items against the query text
	// and returns the top matches. Query never errors on unmatched
	// input: an empty or unmatched query degrades to an empty,
	// zero-confidence response.
	Query(ctx context.Context, tenantID, text string) (*domain.ContextualResponse, error)

	// Answer runs Query and hands the ranked items to a text generator
	// for a natural-language reply. Returns ErrGeneratorUnavailable
	// when no generator is configured.
	Answer(ctx context.Context, tenantID, text string) (string, *domain.ContextualResponse, error)

	// Stats summarises the tenant's knowledge base.
	Stats(ctx context.Context, tenantID string) (*domain.KnowledgeStats, error)

	// Wipe removes every document and knowledge item owned by the
	// tenant. Irreversible.
	Wipe(ctx context.Context, tenantID string) error
}
