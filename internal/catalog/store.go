// Package catalog implements the immutable per-generation document store:
// lookup by id, by alias-resolved component name, and by category, plus
// ordered iteration over the full corpus.
package catalog

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/docs"
)

// Store owns the document collection for one index generation. It is built
// exactly once by the index builder and is read-only afterwards, so it may
// be shared by any number of concurrent queries without locking.
type Store struct {
	all        []*docs.Document
	byID       map[string]*docs.Document
	byName     map[string]*docs.Document
	byCategory map[string][]*docs.Document
	categories []string // first-seen order during build
	aliases    AliasTable
}

// Build constructs a Store from parsed documents. Document order is
// preserved as the corpus build order; it determines category declaration
// order. Duplicate document IDs are a build error.
func Build(documents []*docs.Document, aliases AliasTable) (*Store, error) {
	if aliases == nil {
		aliases = AliasTable{}
	}
	s := &Store{
		all:        make([]*docs.Document, 0, len(documents)),
		byID:       make(map[string]*docs.Document, len(documents)),
		byName:     make(map[string]*docs.Document),
		byCategory: make(map[string][]*docs.Document),
		aliases:    aliases,
	}

	for _, d := range documents {
		if d.Category == "" {
			return nil, fmt.Errorf("document %s has no category", d.ID)
		}
		if _, dup := s.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate document id %s", d.ID)
		}
		s.byID[d.ID] = d
		s.all = append(s.all, d)

		if _, seen := s.byCategory[d.Category]; !seen {
			s.categories = append(s.categories, d.Category)
		}
		s.byCategory[d.Category] = append(s.byCategory[d.Category], d)

		for _, name := range d.ComponentNames {
			folded := analysis.FoldName(name)
			if _, taken := s.byName[folded]; !taken {
				s.byName[folded] = d
			}
		}
	}

	// Deterministic listing order within a category: title, then id.
	for _, cat := range s.categories {
		list := s.byCategory[cat]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Title != list[j].Title {
				return list[i].Title < list[j].Title
			}
			return list[i].ID < list[j].ID
		})
	}

	return s, nil
}

// ByID returns the document with the given id.
func (s *Store) ByID(id string) (*docs.Document, bool) {
	d, ok := s.byID[id]
	return d, ok
}

// ByComponentName looks up a document by component name. Lookup is
// case-insensitive and alias-aware; an unresolved name returns false, never
// a guess.
func (s *Store) ByComponentName(name string) (*docs.Document, bool) {
	folded := s.aliases.Resolve(analysis.FoldName(name))
	d, ok := s.byName[folded]
	return d, ok
}

// ByCategory lists documents in a category, optionally narrowed to a
// subcategory. Category match is case-insensitive; the returned order is
// stable across generations built from the same input set.
func (s *Store) ByCategory(category, subcategory string) []*docs.Document {
	var list []*docs.Document
	for cat, catDocs := range s.byCategory {
		if strings.EqualFold(cat, category) {
			list = catDocs
			break
		}
	}
	if subcategory == "" {
		out := make([]*docs.Document, len(list))
		copy(out, list)
		return out
	}
	var out []*docs.Document
	for _, d := range list {
		if strings.EqualFold(d.Subcategory, subcategory) {
			out = append(out, d)
		}
	}
	return out
}

// Categories returns category names in declaration order as built.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// All iterates over every document in corpus build order. Each call yields a
// fresh iterator.
func (s *Store) All() iter.Seq[*docs.Document] {
	return func(yield func(*docs.Document) bool) {
		for _, d := range s.all {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of documents in the store.
func (s *Store) Len() int {
	return len(s.all)
}
