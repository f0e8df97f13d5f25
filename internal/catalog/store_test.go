package catalog

import (
	"testing"

	"github.com/blendsdk/fluentui-mcp/internal/docs"
)

func compDoc(id, title, category string, names ...string) *docs.Document {
	return &docs.Document{
		ID:             id,
		Path:           id + ".md",
		Title:          title,
		Kind:           docs.KindComponent,
		Category:       category,
		ComponentNames: names,
	}
}

func TestBuild_RejectsDuplicateIDs(t *testing.T) {
	_, err := Build([]*docs.Document{
		compDoc("components/forms/checkbox", "Checkbox", "forms", "Checkbox"),
		compDoc("components/forms/checkbox", "Checkbox", "forms", "Checkbox"),
	}, nil)
	if err == nil {
		t.Fatal("expected error for duplicate document id")
	}
}

func TestBuild_RejectsMissingCategory(t *testing.T) {
	_, err := Build([]*docs.Document{
		{ID: "x", Title: "X", Kind: docs.KindComponent},
	}, nil)
	if err == nil {
		t.Fatal("expected error for empty category")
	}
}

func TestByComponentName_CaseInsensitive(t *testing.T) {
	s, err := Build([]*docs.Document{
		compDoc("components/forms/checkbox", "Checkbox", "forms", "Checkbox"),
	}, DefaultAliases())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, name := range []string{"Checkbox", "checkbox", "CHECKBOX", "check-box"} {
		d, ok := s.ByComponentName(name)
		if !ok {
			t.Errorf("ByComponentName(%q) not found", name)
			continue
		}
		if d.Title != "Checkbox" {
			t.Errorf("ByComponentName(%q) = %s", name, d.Title)
		}
	}
}

func TestByComponentName_AliasResolution(t *testing.T) {
	s, err := Build([]*docs.Document{
		compDoc("components/forms/switch", "Switch", "forms", "Switch"),
	}, DefaultAliases())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	d, ok := s.ByComponentName("toggle")
	if !ok {
		t.Fatal("alias 'toggle' should resolve to Switch")
	}
	if d.Title != "Switch" {
		t.Errorf("resolved to %s, want Switch", d.Title)
	}

	if _, ok := s.ByComponentName("flux-capacitor"); ok {
		t.Error("unknown name must return not found, not a guess")
	}
}

func TestByComponentName_MultiComponentDoc(t *testing.T) {
	s, err := Build([]*docs.Document{
		compDoc("components/forms/colorpicker", "Color Picker", "forms",
			"ColorPicker", "ColorArea", "ColorSlider"),
	}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, name := range []string{"ColorPicker", "ColorArea", "colorslider"} {
		if _, ok := s.ByComponentName(name); !ok {
			t.Errorf("ByComponentName(%q) not found", name)
		}
	}
}

func TestByCategory_Partition(t *testing.T) {
	input := []*docs.Document{
		compDoc("c/forms/input", "Input", "forms", "Input"),
		compDoc("c/forms/checkbox", "Checkbox", "forms", "Checkbox"),
		compDoc("c/forms/dropdown", "Dropdown", "forms", "Dropdown"),
		compDoc("c/forms/switch", "Switch", "forms", "Switch"),
		compDoc("c/forms/slider", "Slider", "forms", "Slider"),
		compDoc("c/nav/breadcrumb", "Breadcrumb", "navigation", "Breadcrumb"),
		compDoc("c/nav/tablist", "TabList", "navigation", "TabList"),
	}
	s, err := Build(input, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	forms := s.ByCategory("forms", "")
	if len(forms) != 5 {
		t.Errorf("forms has %d docs, want 5", len(forms))
	}
	for _, d := range forms {
		if d.Category != "forms" {
			t.Errorf("doc %s leaked into forms listing", d.ID)
		}
	}

	// Union of all categories reproduces the corpus exactly once.
	seen := make(map[string]int)
	for _, cat := range s.Categories() {
		for _, d := range s.ByCategory(cat, "") {
			seen[d.ID]++
		}
	}
	if len(seen) != len(input) {
		t.Errorf("category union has %d docs, want %d", len(seen), len(input))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("doc %s appears %d times across categories", id, n)
		}
	}
}

func TestByCategory_SortedByTitle(t *testing.T) {
	s, err := Build([]*docs.Document{
		compDoc("c/forms/z", "Zed", "forms", "Zed"),
		compDoc("c/forms/a", "Alpha", "forms", "Alpha"),
		compDoc("c/forms/m", "Mid", "forms", "Mid"),
	}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := s.ByCategory("forms", "")
	for i := 1; i < len(got); i++ {
		if got[i-1].Title > got[i].Title {
			t.Errorf("listing not sorted by title: %s before %s", got[i-1].Title, got[i].Title)
		}
	}
}

func TestAll_RestartableIteration(t *testing.T) {
	s, err := Build([]*docs.Document{
		compDoc("c/forms/input", "Input", "forms", "Input"),
		compDoc("c/nav/tablist", "TabList", "navigation", "TabList"),
	}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	count := func() int {
		n := 0
		for range s.All() {
			n++
		}
		return n
	}
	if count() != 2 || count() != 2 {
		t.Error("All must yield a fresh iterator per call")
	}
}

func TestPathMapper(t *testing.T) {
	m := DefaultPathMapper()

	kind, cat, sub, ok := m.Map("components/forms/checkbox.md")
	if !ok || kind != docs.KindComponent || cat != "forms" || sub != "" {
		t.Errorf("Map(components/forms/checkbox.md) = %v %q %q %v", kind, cat, sub, ok)
	}

	kind, cat, sub, ok = m.Map("components/forms/pickers/datepicker.md")
	if !ok || cat != "forms" || sub != "pickers" {
		t.Errorf("Map nested = %v %q %q %v", kind, cat, sub, ok)
	}

	kind, cat, _, ok = m.Map("patterns/layout/grid.md")
	if !ok || kind != docs.KindPattern || cat != "patterns" {
		t.Errorf("Map(patterns/...) = %v %q %v", kind, cat, ok)
	}

	if _, _, _, ok := m.Map("random/unknown.md"); ok {
		t.Error("unknown top-level dir must not map")
	}
	if _, _, _, ok := m.Map("components/loose.md"); ok {
		t.Error("component doc without category dir must not map")
	}
}

func TestPathMapper_BareKindSegment(t *testing.T) {
	m := DefaultPathMapper()

	// A path that is nothing but a known top-level name must be rejected,
	// not crash the build.
	for _, p := range []string{"components", "patterns", "/foundations", "enterprise/"} {
		if _, _, _, ok := m.Map(p); ok {
			t.Errorf("Map(%q) mapped a bare top-level name", p)
		}
	}
}
