// Package analysis derives document metadata from extracted text.
// It provides the title, author, word count, topic and keyword
// heuristics used during ingestion. All functions are pure.
package analysis

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

// Keyword extraction parameters for document-level metadata.
const (
	docKeywordMinLength = 4
	docKeywordMinFreq   = 2
	docKeywordLimit     = 20
)

// Title length bounds for the first-line heuristic.
const (
	titleMinLength = 10
	titleMaxLength = 100
)

// topicHits is how many dictionary terms must appear before a topic
// is assigned.
const topicHits = 2

// authorPatterns match an author declaration and capture the remainder
// of the line. Evaluated in order; first match wins.
var authorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)author\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)by\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)autor\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)auteur\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)verfasser\s*:\s*(.+)`),
}

// topicDictionary maps each business topic to its representative terms.
// A topic is assigned when at least topicHits terms appear anywhere in
// the text (case-insensitive substring match).
var topicDictionary = []struct {
	name  string
	terms []string
}{
	{"Sales", []string{"sales", "deal", "pipeline", "prospect", "quota"}},
	{"Marketing", []string{"marketing", "campaign", "brand", "audience", "advertising", "outreach"}},
	{"Product", []string{"product", "feature", "roadmap", "release", "launch"}},
	{"Support", []string{"support", "ticket", "customer", "helpdesk", "troubleshoot"}},
	{"Financial", []string{"revenue", "cost", "budget", "pricing", "invoice", "payment"}},
	{"Technical", []string{"software", "integration", "server", "database", "deployment", "architecture"}},
}

// Analyze derives the metadata block for an extracted document.
func Analyze(text, filename string, size int64) domain.Metadata {
	return domain.Metadata{
		Title:     ExtractTitle(text, filename),
		Author:    ExtractAuthor(text),
		CreatedAt: time.Now(),
		Size:      size,
		WordCount: CountWords(text),
		Topics:    DetectTopics(text),
		Keywords:  ExtractKeywords(text, docKeywordMinLength, docKeywordMinFreq, docKeywordLimit),
	}
}

// ExtractTitle returns the first non-empty line when its length falls
// within the title bounds, otherwise the filename with its extension
// stripped.
func ExtractTitle(text, filename string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) >= titleMinLength && len(line) <= titleMaxLength {
			return line
		}
		break
	}

	// Fall back to the filename stem.
	stem := filepath.Base(filename)
	if ext := filepath.Ext(stem); ext != "" {
		stem = strings.TrimSuffix(stem, ext)
	}
	stem = strings.ReplaceAll(stem, "_", " ")
	stem = strings.ReplaceAll(stem, "-", " ")
	return stem
}

// ExtractAuthor returns the first author declaration found in the text,
// empty when none matches.
func ExtractAuthor(text string) string {
	for _, pattern := range authorPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// DetectTopics returns every topic whose dictionary has at least
// topicHits terms present in the text. Multiple topics may be assigned.
func DetectTopics(text string) []string {
	lower := strings.ToLower(text)

	var topics []string
	for _, topic := range topicDictionary {
		hits := 0
		for _, term := range topic.terms {
			if strings.Contains(lower, term) {
				hits++
			}
		}
		if hits >= topicHits {
			topics = append(topics, topic.name)
		}
	}
	return topics
}
