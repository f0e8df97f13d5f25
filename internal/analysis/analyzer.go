// Package analysis provides the tokenizer shared by index construction and
// query evaluation. Both sides must use the same Analyzer instance (or one
// built with the same stop-word table) for matches to occur.
package analysis

import (
	"strings"
	"unicode"
)

// Analyzer converts raw text into a canonical sequence of terms. It is
// deterministic: identical input always yields the identical token sequence,
// in source order, with duplicates retained.
type Analyzer struct {
	stopwords map[string]struct{}
}

// NewAnalyzer returns an Analyzer using the default stop-word table.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithStopwords(DefaultStopwords())
}

// NewAnalyzerWithStopwords returns an Analyzer with a caller-supplied
// stop-word table. Pass an empty map to disable stop-word filtering.
func NewAnalyzerWithStopwords(stopwords map[string]struct{}) *Analyzer {
	return &Analyzer{stopwords: stopwords}
}

// Terms tokenizes free text: lower-cased, punctuation stripped except
// internal hyphens, camelCase identifiers emitted whole and split, and
// stop-words removed.
func (a *Analyzer) Terms(text string) []string {
	return a.tokenize(text, true)
}

// NameTerms tokenizes a component name or other identifier field. It applies
// the same splitting as Terms but never filters stop-words: short common
// words can be legitimate component names (e.g. "Text", "Link").
func (a *Analyzer) NameTerms(name string) []string {
	return a.tokenize(name, false)
}

func (a *Analyzer) tokenize(text string, filterStopwords bool) []string {
	words := splitWords(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		for _, t := range expandWord(w) {
			if len(t) == 0 {
				continue
			}
			if filterStopwords {
				if _, stop := a.stopwords[t]; stop {
					continue
				}
			}
			out = append(out, stem(t))
		}
	}
	return out
}

// splitWords breaks text on whitespace and punctuation, keeping hyphens that
// sit between alphanumeric runes so "multi-word" survives as one word.
func splitWords(text string) []string {
	var words []string
	var cur strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			cur.WriteRune(r)
		case r == '-' && cur.Len() > 0 && i+1 < len(runes) &&
			(unicode.IsLetter(runes[i+1]) || unicode.IsDigit(runes[i+1])):
			cur.WriteRune(r)
		default:
			if cur.Len() > 0 {
				words = append(words, cur.String())
				cur.Reset()
			}
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}

// expandWord lowers a word and, when it contains case boundaries or hyphens,
// also emits the lowered parts. "ColorPicker" becomes ["colorpicker",
// "color", "picker"] so component names match both whole and by part.
func expandWord(word string) []string {
	lower := strings.ToLower(word)
	parts := splitBoundaries(word)
	if len(parts) <= 1 {
		return []string{lower}
	}
	whole := strings.ReplaceAll(lower, "-", "")
	out := make([]string, 0, len(parts)+1)
	out = append(out, whole)
	for _, p := range parts {
		out = append(out, strings.ToLower(p))
	}
	return out
}

// splitBoundaries splits a word at hyphens and lower-to-upper case
// transitions. Runs of upper case stay together until a trailing lower-case
// rune starts a new part, so "HTMLParser" splits as ["HTML", "Parser"].
func splitBoundaries(word string) []string {
	var parts []string
	runes := []rune(word)
	start := 0
	for i := 1; i < len(runes); i++ {
		r, prev := runes[i], runes[i-1]
		boundary := false
		switch {
		case r == '-':
			if i > start {
				parts = append(parts, string(runes[start:i]))
			}
			start = i + 1
			continue
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = true
		case unicode.IsDigit(r) != unicode.IsDigit(prev):
			boundary = true
		}
		if boundary && i > start {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}

// stem applies minimal plural stemming so "checkboxes" and "checkbox" or
// "forms" and "form" match. Deliberately far lighter than Porter stemming:
// UI terms are short and aggressive stemming causes false conflations.
func stem(t string) string {
	switch {
	case len(t) > 4 && strings.HasSuffix(t, "ies"):
		return t[:len(t)-3] + "y"
	case len(t) > 4 && strings.HasSuffix(t, "es") &&
		(strings.HasSuffix(t, "xes") || strings.HasSuffix(t, "ches") || strings.HasSuffix(t, "shes")):
		return t[:len(t)-2]
	case len(t) > 3 && strings.HasSuffix(t, "s") &&
		!strings.HasSuffix(t, "ss") && !strings.HasSuffix(t, "us") && !strings.HasSuffix(t, "is"):
		return t[:len(t)-1]
	default:
		return t
	}
}

// FoldName canonicalizes a component name for exact lookup: lower-cased with
// spaces and hyphens removed, so "Color Picker", "color-picker", and
// "ColorPicker" all fold to "colorpicker".
func FoldName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
