package domain

import "time"

// Category is the closed set of knowledge item categories.
type Category string

const (
	// CategoryProduct covers product and feature descriptions.
	CategoryProduct Category = "product"

	// CategoryService covers service and support offerings.
	CategoryService Category = "service"

	// CategoryFAQ covers question/answer style content.
	CategoryFAQ Category = "faq"

	// CategoryProcess covers procedures and workflows.
	// It is also the default when no category pattern matches.
	CategoryProcess Category = "process"

	// CategoryPolicy covers rules, terms and compliance content.
	CategoryPolicy Category = "policy"

	// CategoryTechnical covers implementation and configuration content.
	CategoryTechnical Category = "technical"
)

// Categories lists all valid categories in evaluation order.
// Ties during categorisation favour the earlier entry.
var Categories = []Category{
	CategoryProduct,
	CategoryService,
	CategoryFAQ,
	CategoryProcess,
	CategoryPolicy,
	CategoryTechnical,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Confidence is a heuristic quality score clamped to [0, 1].
type Confidence float64

// NewConfidence clamps v to the closed interval [0, 1].
func NewConfidence(v float64) Confidence {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return Confidence(v)
}

// Valid reports whether the confidence is within [0, 1].
func (c Confidence) Valid() bool {
	return c >= 0 && c <= 1
}

// KnowledgeItem is a scored, categorised fragment of a source document.
// It is the unit retrieved at query time.
type KnowledgeItem struct {
	// ID is the unique identifier for the item.
	ID string

	// TenantID identifies the owning tenant. Items are never scored
	// against another tenant's query.
	TenantID string

	// DocumentID references the source document. The reference is
	// ownership provenance only; deleting the document does not
	// cascade to items.
	DocumentID string

	// Content is the segment text.
	Content string

	// Context is a human-readable provenance string built from the
	// source document's title, topics and top keywords.
	Context string

	// Category is the assigned knowledge category.
	Category Category

	// Confidence is the heuristic quality score in [0, 1].
	Confidence Confidence

	// Keywords are the segment's most frequent significant terms.
	Keywords []string

	// CreatedAt is when the item was extracted.
	CreatedAt time.Time

	// LastUsed is when the item was last returned by a query,
	// nil if never used.
	LastUsed *time.Time

	// UsageCount is how many times the item has been returned.
	// It starts at zero and never decreases.
	UsageCount int
}
