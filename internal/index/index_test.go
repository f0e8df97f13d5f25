package index

import (
	"sort"
	"testing"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/docs"
)

func buildTestIndex(t *testing.T, documents []*docs.Document) (*Index, *catalog.Store) {
	t.Helper()
	store, err := catalog.Build(documents, nil)
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	return Build(store, analysis.NewAnalyzer()), store
}

func testDoc(id, title, body string, names ...string) *docs.Document {
	return &docs.Document{
		ID:             id,
		Title:          title,
		Kind:           docs.KindComponent,
		Category:       "forms",
		ComponentNames: names,
		Sections: []docs.Section{
			{Heading: title, Level: 1, Body: body},
		},
	}
}

func TestBuild_PostingsSortedByDocID(t *testing.T) {
	ix, _ := buildTestIndex(t, []*docs.Document{
		testDoc("z/doc", "Slider", "slider control", "Slider"),
		testDoc("a/doc", "Range", "slider thumb track", "Range"),
		testDoc("m/doc", "Volume", "slider for audio", "Volume"),
	})

	postings := ix.Lookup("slider")
	if len(postings) == 0 {
		t.Fatal("no postings for 'slider'")
	}
	if !sort.SliceIsSorted(postings, func(i, j int) bool {
		if postings[i].DocID != postings[j].DocID {
			return postings[i].DocID < postings[j].DocID
		}
		return postings[i].Field < postings[j].Field
	}) {
		t.Errorf("postings not sorted by doc id: %+v", postings)
	}
}

func TestBuild_FieldSeparation(t *testing.T) {
	ix, _ := buildTestIndex(t, []*docs.Document{
		testDoc("a/checkbox", "Checkbox", "form control body text", "Checkbox"),
	})

	var fields []Field
	for _, p := range ix.Lookup("checkbox") {
		fields = append(fields, p.Field)
	}
	hasTitle, hasName := false, false
	for _, f := range fields {
		if f == FieldTitle {
			hasTitle = true
		}
		if f == FieldComponentName {
			hasName = true
		}
	}
	if !hasTitle || !hasName {
		t.Errorf("'checkbox' postings cover fields %v, want title and component-name", fields)
	}

	for _, p := range ix.Lookup("body") {
		if p.Field != FieldBody {
			t.Errorf("'body' posting in field %v, want body only", p.Field)
		}
	}
}

func TestBuild_TermFreqAndPositions(t *testing.T) {
	ix, _ := buildTestIndex(t, []*docs.Document{
		testDoc("a/input", "Input", "input accepts input values input", "Input"),
	})

	var bodyPosting *Posting
	for i, p := range ix.Lookup("input") {
		if p.Field == FieldBody {
			bodyPosting = &ix.Lookup("input")[i]
		}
	}
	if bodyPosting == nil {
		t.Fatal("no body posting for 'input'")
	}
	if bodyPosting.TermFreq != 3 {
		t.Errorf("body TermFreq = %d, want 3", bodyPosting.TermFreq)
	}
	if len(bodyPosting.Positions) != bodyPosting.TermFreq {
		t.Errorf("positions %v inconsistent with tf %d", bodyPosting.Positions, bodyPosting.TermFreq)
	}
}

func TestBuild_DocFreqCountsDocumentsOnce(t *testing.T) {
	// "grid" appears in both title and body of one doc: docFreq must be 1.
	ix, _ := buildTestIndex(t, []*docs.Document{
		testDoc("a/grid", "Grid", "grid layout grid", "Grid"),
		testDoc("b/list", "List", "vertical stack", "List"),
	})

	if df := ix.DocFreq("grid"); df != 1 {
		t.Errorf("DocFreq(grid) = %d, want 1", df)
	}
	if ix.DocCount() != 2 {
		t.Errorf("DocCount = %d, want 2", ix.DocCount())
	}
}

func TestBuild_FieldLengths(t *testing.T) {
	ix, _ := buildTestIndex(t, []*docs.Document{
		testDoc("a/badge", "Badge", "small status indicator", "Badge"),
	})

	if n := ix.FieldLength("a/badge", FieldBody); n != 3 {
		t.Errorf("body length = %d, want 3", n)
	}
	if ix.DocLength("a/badge") == 0 {
		t.Error("DocLength should be nonzero")
	}
	if ix.AvgFieldLength(FieldBody) != 3 {
		t.Errorf("avg body length = %f, want 3", ix.AvgFieldLength(FieldBody))
	}
}

func TestLookup_UnknownTerm(t *testing.T) {
	ix, _ := buildTestIndex(t, []*docs.Document{
		testDoc("a/badge", "Badge", "small status indicator", "Badge"),
	})
	if got := ix.Lookup("nonexistent"); got != nil {
		t.Errorf("Lookup(nonexistent) = %v, want nil", got)
	}
}
