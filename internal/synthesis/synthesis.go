// Package synthesis implements the higher-level operations that combine
// several ranked searches into one composite answer: component suggestions
// for a UI description and implementation guides for a goal. Both are
// read-only compositions over the store and ranker; every sentence of their
// output traces back to a retrieved section.
package synthesis

import (
	"errors"
	"sort"
	"strings"

	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/docs"
	"github.com/blendsdk/fluentui-mcp/internal/index"
	"github.com/blendsdk/fluentui-mcp/internal/search"
)

// ErrAmbiguousQuery reports input too sparse to rank meaningfully: empty,
// or nothing left after tokenization and stop-word removal. Callers present
// it as an explicit "insufficient input" result, never as a top-N fallback.
var ErrAmbiguousQuery = errors.New("input too vague to produce a meaningful result")

// RankedComponent is one suggested component with its aggregated relevance
// and a one-line rationale drawn from the best matched snippet.
type RankedComponent struct {
	Name      string
	Score     float64
	Doc       *docs.Document
	Rationale string
}

// GuideEntry pairs one retrieved document with the section most relevant to
// the goal.
type GuideEntry struct {
	Category string
	Doc      *docs.Document
	Section  docs.Section
	Score    float64
}

// Guide is the structured multi-section answer for a goal, ordered by
// category declaration order and rank within each category. Rendering it to
// prose is an adapter concern outside this package.
type Guide struct {
	Goal    string
	Entries []GuideEntry
}

// Engine executes synthesis operations against one generation.
type Engine struct {
	searcher *search.Searcher
}

// NewEngine creates an Engine over the given searcher.
func NewEngine(searcher *search.Searcher) *Engine {
	return &Engine{searcher: searcher}
}

// SuggestComponents ranks components matching a free-text UI description.
// Documents naming several components contribute to each name; the grouped
// set is re-ranked by aggregated score.
func (e *Engine) SuggestComponents(st *catalog.Store, ix *index.Index, description string, limit int) ([]RankedComponent, error) {
	if len(e.searcher.Terms(description)) == 0 {
		return nil, ErrAmbiguousQuery
	}
	if limit <= 0 {
		limit = 5
	}

	results := e.searcher.Search(st, ix, search.Query{
		Raw:               description,
		RequireComponents: true,
	}, 0)

	byName := make(map[string]*RankedComponent)
	for _, r := range results {
		for _, name := range r.Doc.ComponentNames {
			rc := byName[name]
			if rc == nil {
				rc = &RankedComponent{Name: name, Doc: r.Doc, Rationale: r.Snippet}
				byName[name] = rc
			}
			rc.Score += r.Score
		}
	}

	out := make([]RankedComponent, 0, len(byName))
	for _, rc := range byName {
		out = append(out, *rc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Guide assembly caps. Policy data, not derived.
const (
	guidePerCategory = 3
	guideTotalCap    = 12
)

// BuildGuide retrieves documents relevant to a goal with one unrestricted
// search plus one per known category, deduplicates by document id, and
// assembles the top entries per category up to an overall cap.
func (e *Engine) BuildGuide(st *catalog.Store, ix *index.Index, goal string) (*Guide, error) {
	if len(e.searcher.Terms(goal)) == 0 {
		return nil, ErrAmbiguousQuery
	}

	merged := make(map[string]search.Result)
	record := func(results []search.Result) {
		for _, r := range results {
			if prev, seen := merged[r.Doc.ID]; !seen || r.Score > prev.Score {
				merged[r.Doc.ID] = r
			}
		}
	}

	record(e.searcher.Search(st, ix, search.Query{Raw: goal}, 0))
	for _, cat := range st.Categories() {
		record(e.searcher.Search(st, ix, search.Query{Raw: goal, Category: cat}, guidePerCategory))
	}

	guide := &Guide{Goal: goal}
	total := 0
	perCategory := make(map[string]int)
	for _, cat := range st.Categories() {
		if total >= guideTotalCap {
			break
		}
		for _, r := range rankedInCategory(merged, cat) {
			if perCategory[cat] >= guidePerCategory || total >= guideTotalCap {
				break
			}
			guide.Entries = append(guide.Entries, GuideEntry{
				Category: cat,
				Doc:      r.Doc,
				Section:  bestSection(r),
				Score:    r.Score,
			})
			perCategory[cat]++
			total++
		}
	}

	if len(guide.Entries) == 0 {
		return nil, ErrAmbiguousQuery
	}
	return guide, nil
}

// rankedInCategory filters the merged result set to one category and sorts
// it by score with the ranker's tie-break on id.
func rankedInCategory(merged map[string]search.Result, category string) []search.Result {
	var out []search.Result
	for _, r := range merged {
		if r.Doc.Category == category {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Doc.ID < out[j].Doc.ID
	})
	return out
}

// bestSection picks the section backing the result's snippet: the first
// section whose body contains the snippet core, falling back to the first
// section.
func bestSection(r search.Result) docs.Section {
	if len(r.Doc.Sections) == 0 {
		return docs.Section{Heading: r.Doc.Title, Level: 1, Body: r.Snippet}
	}
	core := strings.Trim(r.Snippet, "…")
	for _, sec := range r.Doc.Sections {
		if core != "" && strings.Contains(sec.Body, core) {
			return sec
		}
	}
	return r.Doc.Sections[0]
}
