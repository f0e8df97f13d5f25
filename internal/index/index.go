// Package index builds the per-generation inverted index: term to postings
// with per-field frequencies and positions, plus the precomputed field
// lengths the ranker needs for length normalization.
package index

import (
	"sort"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/docs"
)

// Field identifies which part of a document a posting came from. The ranker
// applies per-field weights so title and component-name matches outrank body
// matches.
type Field uint8

const (
	FieldTitle Field = iota
	FieldComponentName
	FieldHeading
	FieldBody

	// NumFields is the number of indexed fields.
	NumFields
)

// String names a field for logs and debug output.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldComponentName:
		return "component-name"
	case FieldHeading:
		return "heading"
	case FieldBody:
		return "body"
	default:
		return "unknown"
	}
}

// Posting records one term's occurrences in one field of one document.
// Postings are built once at index-construction time and never mutated.
type Posting struct {
	DocID     string
	Field     Field
	TermFreq  int
	Positions []int // token offsets within the field's term sequence
}

// Index is the immutable inverted index for one generation.
type Index struct {
	postings  map[string][]Posting
	docFreq   map[string]int            // docs containing the term in any field
	fieldLen  map[string][NumFields]int // per-document field lengths in tokens
	avgLen    [NumFields]float64
	docCount  int
	termCount int
}

// Build tokenizes every document in the store field by field and assembles
// the inverted index in a single pass. Postings lists end up sorted by
// document id, then field, for merge-friendly multi-term evaluation.
func Build(store *catalog.Store, an *analysis.Analyzer) *Index {
	ix := &Index{
		postings: make(map[string][]Posting),
		docFreq:  make(map[string]int),
		fieldLen: make(map[string][NumFields]int),
	}

	var totals [NumFields]int
	for doc := range store.All() {
		ix.docCount++
		lengths := ix.addDocument(doc, an)
		ix.fieldLen[doc.ID] = lengths
		for f := Field(0); f < NumFields; f++ {
			totals[f] += lengths[f]
		}
	}

	for f := Field(0); f < NumFields; f++ {
		if ix.docCount > 0 {
			ix.avgLen[f] = float64(totals[f]) / float64(ix.docCount)
		}
	}

	for term := range ix.postings {
		list := ix.postings[term]
		sort.Slice(list, func(i, j int) bool {
			if list[i].DocID != list[j].DocID {
				return list[i].DocID < list[j].DocID
			}
			return list[i].Field < list[j].Field
		})
		seen := ""
		for _, p := range list {
			if p.DocID != seen {
				ix.docFreq[term]++
				seen = p.DocID
			}
		}
	}
	ix.termCount = len(ix.postings)

	return ix
}

// addDocument indexes one document and returns its per-field token counts.
func (ix *Index) addDocument(doc *docs.Document, an *analysis.Analyzer) [NumFields]int {
	var fields [NumFields][]string

	fields[FieldTitle] = an.Terms(doc.Title)
	for _, name := range doc.ComponentNames {
		fields[FieldComponentName] = append(fields[FieldComponentName], an.NameTerms(name)...)
	}
	for _, sec := range doc.Sections {
		fields[FieldHeading] = append(fields[FieldHeading], an.Terms(sec.Heading)...)
		fields[FieldBody] = append(fields[FieldBody], an.Terms(sec.Body)...)
	}

	var lengths [NumFields]int
	for f := Field(0); f < NumFields; f++ {
		terms := fields[f]
		lengths[f] = len(terms)
		if len(terms) == 0 {
			continue
		}

		occurrences := make(map[string][]int)
		for pos, term := range terms {
			occurrences[term] = append(occurrences[term], pos)
		}
		for term, positions := range occurrences {
			ix.postings[term] = append(ix.postings[term], Posting{
				DocID:     doc.ID,
				Field:     f,
				TermFreq:  len(positions),
				Positions: positions,
			})
		}
	}
	return lengths
}

// Lookup returns the postings list for a term, or nil when the term occurs
// nowhere in the corpus. Callers must not modify the returned slice.
func (ix *Index) Lookup(term string) []Posting {
	return ix.postings[term]
}

// DocFreq returns the number of documents containing the term in any field.
func (ix *Index) DocFreq(term string) int {
	return ix.docFreq[term]
}

// DocCount returns the number of indexed documents.
func (ix *Index) DocCount() int {
	return ix.docCount
}

// TermCount returns the number of distinct terms in the index.
func (ix *Index) TermCount() int {
	return ix.termCount
}

// FieldLength returns the token count of one field of one document.
func (ix *Index) FieldLength(docID string, f Field) int {
	return ix.fieldLen[docID][f]
}

// DocLength returns the total token count of a document across all fields.
// The ranker uses it as the deterministic tie-break after score.
func (ix *Index) DocLength(docID string) int {
	lengths := ix.fieldLen[docID]
	total := 0
	for f := Field(0); f < NumFields; f++ {
		total += lengths[f]
	}
	return total
}

// AvgFieldLength returns the corpus-wide average token count for a field.
func (ix *Index) AvgFieldLength(f Field) float64 {
	return ix.avgLen[f]
}
