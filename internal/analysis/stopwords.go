package analysis

// defaultStopwords are common words filtered from free-text fields during
// term extraction. They carry no discriminative power across UI docs.
// Component-name fields are never filtered (see Analyzer.NameTerms).
var defaultStopwords = []string{
	// Articles and prepositions
	"the", "a", "an", "and", "or", "to", "of", "in", "for", "with",
	"on", "at", "by", "from", "as", "into", "through",
	// Common verbs
	"is", "are", "was", "were", "be", "been", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may",
	"can", "must",
	// Pronouns and question words
	"it", "its", "this", "that", "these", "those", "which", "what",
	"when", "where", "how", "why", "who",
	// Words that appear in nearly every doc page
	"use", "used", "using", "see", "note", "example", "following",
	"also", "more", "each", "all", "any", "some",
}

// DefaultStopwords returns a fresh copy of the default stop-word set.
func DefaultStopwords() map[string]struct{} {
	m := make(map[string]struct{}, len(defaultStopwords))
	for _, w := range defaultStopwords {
		m[w] = struct{}{}
	}
	return m
}
