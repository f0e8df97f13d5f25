// Package search implements ranked free-text search over a generation's
// store and inverted index. Scoring is field-weighted BM25 with a
// deterministic tie-break so identical queries always return identical
// ordered results.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/docs"
	"github.com/blendsdk/fluentui-mcp/internal/index"
)

// Config holds the BM25 tuning parameters and per-field weights. These are
// policy data, not derived values; override them via NewSearcherWithConfig.
type Config struct {
	K1           float64 // term frequency saturation
	B            float64 // length normalization strength
	FieldWeights [index.NumFields]float64
	SnippetRunes int // max snippet length in runes
}

// DefaultConfig returns the standard parameters: title matches outrank
// component-name matches, which outrank headings, which outrank body text.
func DefaultConfig() Config {
	cfg := Config{
		K1:           1.2,
		B:            0.75,
		SnippetRunes: 240,
	}
	cfg.FieldWeights[index.FieldTitle] = 3.0
	cfg.FieldWeights[index.FieldComponentName] = 2.5
	cfg.FieldWeights[index.FieldHeading] = 1.5
	cfg.FieldWeights[index.FieldBody] = 1.0
	return cfg
}

// Query is one transient search request.
type Query struct {
	Raw string

	// Optional filters. Category narrows results to one category;
	// ComponentName to documents declaring that name (alias-resolved);
	// RequireComponents to component-bearing documents only.
	Category          string
	ComponentName     string
	RequireComponents bool
}

// Result is one ranked hit.
type Result struct {
	Doc           *docs.Document
	Score         float64
	MatchedFields []index.Field
	Snippet       string
}

// Searcher scores queries against an index. It is stateless apart from its
// configuration and safe for concurrent use.
type Searcher struct {
	cfg Config
	an  *analysis.Analyzer
}

// NewSearcher creates a Searcher with default configuration. The analyzer
// must be the one used at index-build time.
func NewSearcher(an *analysis.Analyzer) *Searcher {
	return NewSearcherWithConfig(an, DefaultConfig())
}

// NewSearcherWithConfig creates a Searcher with caller-supplied parameters.
func NewSearcherWithConfig(an *analysis.Analyzer, cfg Config) *Searcher {
	return &Searcher{cfg: cfg, an: an}
}

// Terms exposes the query-side tokenization, letting callers detect queries
// that are empty after normalization.
func (s *Searcher) Terms(raw string) []string {
	return s.an.Terms(raw)
}

type accumulator struct {
	score  float64
	fields map[index.Field]struct{}
	terms  []string // matched query terms, for snippet extraction
}

// Search evaluates a query and returns up to limit results in rank order.
// Documents matching zero query terms are excluded. Scoring is computed for
// every match first; the top-limit cut happens after the full sort.
func (s *Searcher) Search(st *catalog.Store, ix *index.Index, q Query, limit int) []Result {
	terms := s.an.Terms(q.Raw)
	if len(terms) == 0 {
		return nil
	}

	// Unique terms in first-appearance order. Scoring iterates this slice,
	// not the frequency map, so float accumulation order is identical on
	// every call and repeated queries return bit-identical scores.
	queryFreq := make(map[string]int, len(terms))
	var unique []string
	for _, t := range terms {
		if queryFreq[t] == 0 {
			unique = append(unique, t)
		}
		queryFreq[t]++
	}

	n := float64(ix.DocCount())
	scores := make(map[string]*accumulator)

	for _, term := range unique {
		qf := queryFreq[term]
		df := float64(ix.DocFreq(term))
		if df == 0 {
			continue
		}
		idf := math.Log(1.0 + (n-df+0.5)/(df+0.5))

		for _, p := range ix.Lookup(term) {
			weight := s.cfg.FieldWeights[p.Field]
			if weight == 0 {
				continue
			}
			avgLen := ix.AvgFieldLength(p.Field)
			if avgLen == 0 {
				continue
			}
			fieldLen := float64(ix.FieldLength(p.DocID, p.Field))
			tf := float64(p.TermFreq)
			norm := tf + s.cfg.K1*(1.0-s.cfg.B+s.cfg.B*(fieldLen/avgLen))
			contribution := weight * idf * (tf * (s.cfg.K1 + 1.0)) / norm * float64(qf)

			acc := scores[p.DocID]
			if acc == nil {
				acc = &accumulator{fields: make(map[index.Field]struct{})}
				scores[p.DocID] = acc
			}
			acc.score += contribution
			if _, seen := acc.fields[p.Field]; !seen {
				acc.fields[p.Field] = struct{}{}
			}
			acc.terms = append(acc.terms, term)
		}
	}

	results := make([]Result, 0, len(scores))
	for docID, acc := range scores {
		doc, ok := st.ByID(docID)
		if !ok {
			continue
		}
		if !s.matchesFilters(st, doc, q) {
			continue
		}
		results = append(results, Result{
			Doc:           doc,
			Score:         acc.score,
			MatchedFields: sortedFields(acc.fields),
			Snippet:       s.snippet(doc, dedupe(acc.terms)),
		})
	}

	// Deterministic order: score desc, shorter document first, then id.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		li, lj := ix.DocLength(results[i].Doc.ID), ix.DocLength(results[j].Doc.ID)
		if li != lj {
			return li < lj
		}
		return results[i].Doc.ID < results[j].Doc.ID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (s *Searcher) matchesFilters(st *catalog.Store, doc *docs.Document, q Query) bool {
	if q.RequireComponents && !doc.HasComponents() {
		return false
	}
	if q.Category != "" && !strings.EqualFold(doc.Category, q.Category) {
		return false
	}
	if q.ComponentName != "" {
		named, ok := st.ByComponentName(q.ComponentName)
		if !ok || named.ID != doc.ID {
			return false
		}
	}
	return true
}

func sortedFields(set map[index.Field]struct{}) []index.Field {
	out := make([]index.Field, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
