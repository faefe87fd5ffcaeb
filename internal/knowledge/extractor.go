// Package knowledge turns document segments into scored, categorised
// knowledge items - the unit retrieved at query time.
package knowledge

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/groundkit/internal/analysis"
	"github.com/custodia-labs/groundkit/internal/core/domain"
)

// minSegmentLength is the floor below which segments are discarded
// as noise.
const minSegmentLength = 50

// Confidence scoring constants.
const (
	baseConfidence      = 0.5
	lengthBonus         = 0.1
	lengthBonusAt       = 100
	longLengthBonusAt   = 300
	technicalTermBonus  = 0.05
	listMarkerBonus     = 0.1
	contextKeywordCount = 3
)

// Keyword extraction parameters for segment-level keywords.
const (
	segKeywordMinLength = 2
	segKeywordMinFreq   = 1
	segKeywordLimit     = 10
)

// technicalTerms raise confidence when present in a segment.
var technicalTerms = []string{
	"implementation", "configuration", "integration", "solution", "method",
}

// categoryPatterns score a segment against each category.
// Evaluated in domain.Categories order; ties favour the earlier entry.
var categoryPatterns = map[domain.Category][]string{
	domain.CategoryProduct:   {"product", "feature", "version", "release", "upgrade"},
	domain.CategoryService:   {"service", "offering", "subscription", "maintenance", "consulting"},
	domain.CategoryFAQ:       {"question", "answer", "how to", "how do", "what is", "faq"},
	domain.CategoryProcess:   {"process", "procedure", "workflow", "step", "stage"},
	domain.CategoryPolicy:    {"policy", "rule", "regulation", "compliance", "terms"},
	domain.CategoryTechnical: {"technical", "system", "software", "configuration", "architecture"},
}

// Extractor builds knowledge items from document segments.
type Extractor struct{}

// New creates a new knowledge extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractItems converts a document's segments into knowledge items.
// Segments at or under fifty characters are discarded as noise.
func (e *Extractor) ExtractItems(doc *domain.Document, segments []string) []domain.KnowledgeItem {
	context := BuildContext(doc)

	var items []domain.KnowledgeItem
	for _, segment := range segments {
		if len(segment) <= minSegmentLength {
			continue
		}

		items = append(items, domain.KnowledgeItem{
			ID:         uuid.New().String(),
			TenantID:   doc.TenantID,
			DocumentID: doc.ID,
			Content:    segment,
			Context:    context,
			Category:   Categorize(segment),
			Confidence: Confidence(segment),
			Keywords:   analysis.ExtractKeywords(segment, segKeywordMinLength, segKeywordMinFreq, segKeywordLimit),
			CreatedAt:  time.Now(),
		})
	}
	return items
}

// BuildContext assembles the human-readable provenance string from
// whichever metadata the source document has.
func BuildContext(doc *domain.Document) string {
	var parts []string

	if doc.Metadata.Title != "" {
		parts = append(parts, "Document: "+doc.Metadata.Title)
	}
	if len(doc.Metadata.Topics) > 0 {
		parts = append(parts, "Topics: "+strings.Join(doc.Metadata.Topics, ", "))
	}
	if len(doc.Metadata.Keywords) > 0 {
		top := doc.Metadata.Keywords
		if len(top) > contextKeywordCount {
			top = top[:contextKeywordCount]
		}
		parts = append(parts, "Keywords: "+strings.Join(top, ", "))
	}

	return strings.Join(parts, " | ")
}

// Categorize assigns the category whose pattern dictionary matches the
// segment most often. Ties favour the earlier category in evaluation
// order; a segment matching nothing defaults to process.
// Deterministic: identical input always yields the identical category.
func Categorize(segment string) domain.Category {
	lower := strings.ToLower(segment)

	best := domain.CategoryProcess
	bestScore := 0
	for _, category := range domain.Categories {
		score := 0
		for _, pattern := range categoryPatterns[category] {
			if strings.Contains(lower, pattern) {
				score++
			}
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}
	return best
}

// Confidence scores a segment's quality. Longer segments, technical
// vocabulary and list structure all raise the score; the result is
// clamped to [0, 1].
func Confidence(segment string) domain.Confidence {
	score := baseConfidence

	if len(segment) > lengthBonusAt {
		score += lengthBonus
	}
	if len(segment) > longLengthBonusAt {
		score += lengthBonus
	}

	lower := strings.ToLower(segment)
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			score += technicalTermBonus
		}
	}

	if hasListMarkers(segment) {
		score += listMarkerBonus
	}

	return domain.NewConfidence(score)
}

// hasListMarkers reports whether the segment contains numbered or
// bulleted list structure.
func hasListMarkers(segment string) bool {
	return strings.Contains(segment, "1.") ||
		strings.Contains(segment, "•") ||
		strings.Contains(segment, "- ")
}
