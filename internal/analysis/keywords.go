package analysis

import (
	"sort"
	"strings"
	"unicode"
)

// ExtractKeywords returns the most frequent significant terms in text,
// ordered by descending frequency (ties broken alphabetically so the
// output is deterministic).
//
// The text is lowercased, punctuation is stripped, and tokens are split
// on whitespace. Tokens longer than minLength survive, stopwords are
// dropped, and only tokens appearing more than minFrequency times are
// kept. At most limit keywords are returned.
func ExtractKeywords(text string, minLength, minFrequency, limit int) []string {
	freq := make(map[string]int)
	for _, token := range Tokenize(text) {
		if len(token) <= minLength {
			continue
		}
		if IsStopword(token) {
			continue
		}
		freq[token]++
	}

	candidates := make([]string, 0, len(freq))
	for token, count := range freq {
		if count > minFrequency {
			candidates = append(candidates, token)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if freq[candidates[i]] != freq[candidates[j]] {
			return freq[candidates[i]] > freq[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Tokenize lowercases text, strips punctuation and splits on whitespace.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, text)

	return strings.Fields(cleaned)
}
