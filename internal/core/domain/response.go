package domain

// ResponseSource identifies where a query answer was grounded.
type ResponseSource string

const (
	// SourceKnowledgeBase means items from the tenant's knowledge base
	// grounded the response.
	SourceKnowledgeBase ResponseSource = "knowledge_base"

	// SourceNone means no relevant knowledge was found.
	SourceNone ResponseSource = "none"
)

// ContextualResponse is the result of a knowledge query.
// It is not persisted.
type ContextualResponse struct {
	// Items are the ranked knowledge items, at most five.
	Items []KnowledgeItem

	// Confidence is the mean confidence of the returned items,
	// zero when Items is empty.
	Confidence Confidence

	// Source tags where the response was grounded.
	Source ResponseSource

	// Reasoning is a short human-readable explanation of the result.
	Reasoning string
}

// ItemUsage is a usage summary for one knowledge item.
type ItemUsage struct {
	// Preview is a truncated excerpt of the item content.
	Preview string

	// UsageCount is how many times the item has been returned.
	UsageCount int
}

// KnowledgeStats summarises a tenant's knowledge base.
type KnowledgeStats struct {
	// DocumentCount is the number of stored documents.
	DocumentCount int

	// ItemCount is the number of stored knowledge items.
	ItemCount int

	// ByCategory counts items per category.
	ByCategory map[Category]int

	// MeanConfidence is the average confidence across all items,
	// zero when the tenant has no items.
	MeanConfidence Confidence

	// TopItems are the five most-used items.
	TopItems []ItemUsage
}
