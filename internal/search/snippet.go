package search

import (
	"strings"

	"github.com/blendsdk/fluentui-mcp/internal/docs"
)

// snippet extracts the result excerpt: the section whose body contains the
// most matched-term occurrences, truncated around the first occurrence.
// Ties go to the earliest section so repeated queries stay reproducible.
func (s *Searcher) snippet(doc *docs.Document, matchedTerms []string) string {
	if len(doc.Sections) == 0 {
		return truncate(doc.RawText, s.cfg.SnippetRunes)
	}

	best := 0
	bestCount := -1
	for i, sec := range doc.Sections {
		count := 0
		for _, term := range s.an.Terms(sec.Body) {
			for _, m := range matchedTerms {
				if term == m {
					count++
					break
				}
			}
		}
		if count > bestCount {
			best, bestCount = i, count
		}
	}

	body := doc.Sections[best].Body
	if bestCount <= 0 {
		return truncate(body, s.cfg.SnippetRunes)
	}
	return window(body, matchedTerms, s.cfg.SnippetRunes)
}

// window truncates text around the first occurrence of any matched term.
func window(text string, matchedTerms []string, maxRunes int) string {
	lower := strings.ToLower(text)
	first := -1
	for _, term := range matchedTerms {
		if i := strings.Index(lower, term); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	if first < 0 {
		return truncate(text, maxRunes)
	}

	runes := []rune(text)
	firstRune := len([]rune(text[:first]))

	start := firstRune - maxRunes/4
	if start < 0 {
		start = 0
	}
	end := start + maxRunes
	if end > len(runes) {
		end = len(runes)
		if start = end - maxRunes; start < 0 {
			start = 0
		}
	}

	out := strings.TrimSpace(string(runes[start:end]))
	if start > 0 {
		out = "…" + out
	}
	if end < len(runes) {
		out += "…"
	}
	return out
}

func truncate(text string, maxRunes int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
