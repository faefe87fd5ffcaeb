package analysis

// stopwords are common function words excluded from keyword extraction.
// Covers English plus the other languages the author patterns support.
var stopwords = map[string]struct{}{
	// English
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {}, "have": {}, "this": {},
	"that": {}, "with": {}, "from": {}, "they": {}, "will": {}, "would": {},
	"there": {}, "their": {}, "what": {}, "about": {}, "which": {},
	"when": {}, "were": {}, "your": {}, "them": {}, "than": {}, "then": {},
	"been": {}, "these": {}, "those": {}, "into": {}, "more": {}, "other": {},
	"some": {}, "could": {}, "should": {}, "also": {}, "after": {},
	"before": {}, "where": {}, "while": {}, "because": {}, "between": {},
	"through": {}, "during": {}, "under": {}, "over": {}, "such": {},
	"each": {}, "only": {}, "very": {}, "just": {}, "most": {}, "both": {},
	"being": {}, "does": {}, "doing": {}, "here": {}, "again": {},
	// Spanish
	"los": {}, "las": {}, "una": {}, "del": {}, "por": {}, "para": {},
	"como": {}, "pero": {}, "esta": {}, "este": {}, "sobre": {},
	// German
	"der": {}, "die": {}, "das": {}, "und": {}, "ist": {}, "nicht": {},
	"mit": {}, "sich": {}, "auch": {}, "eine": {}, "einen": {},
	// French
	"les": {}, "des": {}, "dans": {}, "pour": {}, "avec": {}, "sont": {},
	"cette": {}, "mais": {}, "plus": {}, "tout": {},
}

// IsStopword reports whether token is a common function word.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
