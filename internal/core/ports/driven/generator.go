package driven

import (
	"context"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

// Generator produces natural-language text from a grounding payload.
// This is an optional service - when nil, queries still return ranked
// knowledge items and the caller assembles its own reply.
//
// Implementations may include OpenAI, Anthropic, or local inference
// servers; groundkit only guarantees the shape and ordering of the
// payload it hands over, not how the generator prompts with it.
type Generator interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

// GroundingEntry is one knowledge item serialised for the generator.
type GroundingEntry struct {
	// Content is the knowledge item text.
	Content string

	// Context is the item's provenance string.
	Context string
}

// GroundingPayload is the ordered knowledge selection handed to the
// generator alongside a query. Entries preserve ranking order.
type GroundingPayload struct {
	// Entries are the ranked content+context pairs.
	Entries []GroundingEntry

	// Confidence is the aggregate confidence of the selection.
	Confidence domain.Confidence
}
