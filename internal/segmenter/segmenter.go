// Package segmenter splits document text into coherent sections for
// independent retrieval.
package segmenter

import (
	"regexp"
	"strings"
)

// minParagraphs is the paragraph count below which the sentence
// fallback kicks in. Plain prose without paragraph breaks would
// otherwise yield a single giant, unusable section.
const minParagraphs = 3

// minFragmentLength filters out trivial sentence fragments.
const minFragmentLength = 20

// maxFragments caps the sentence fallback output.
const maxFragments = 10

var blankLine = regexp.MustCompile(`\n\s*\n`)

// Segment splits text into sections. Primary strategy: blank-line
// separated paragraphs, trimmed, empties dropped. When that produces
// fewer than three paragraphs the text is re-split on sentence
// terminators instead, keeping fragments longer than twenty characters
// and capping the result at ten.
func Segment(text string) []string {
	paragraphs := splitParagraphs(text)
	if len(paragraphs) >= minParagraphs {
		return paragraphs
	}
	return splitSentences(text)
}

// splitParagraphs splits on blank lines and drops empty results.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, part := range blankLine.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}

// splitSentences splits on sentence terminators and keeps only
// fragments long enough to carry meaning.
func splitSentences(text string) []string {
	var fragments []string
	var current strings.Builder

	flush := func() {
		fragment := strings.TrimSpace(current.String())
		current.Reset()
		if len(fragment) > minFragmentLength {
			fragments = append(fragments, fragment)
		}
	}

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
			if len(fragments) >= maxFragments {
				return fragments
			}
		}
	}
	flush()

	if len(fragments) > maxFragments {
		fragments = fragments[:maxFragments]
	}
	return fragments
}
