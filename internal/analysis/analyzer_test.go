package analysis

import (
	"reflect"
	"testing"
)

func TestTerms_CamelCaseSplit(t *testing.T) {
	a := NewAnalyzer()

	got := a.Terms("ColorPicker")
	want := []string{"colorpicker", "color", "picker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms(ColorPicker) = %v, want %v", got, want)
	}
}

func TestTerms_KeepsInternalHyphens(t *testing.T) {
	a := NewAnalyzer()

	got := a.Terms("Multi-word identifiers")
	want := []string{"multiword", "multi", "word", "identifier"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v", got, want)
	}
}

func TestTerms_StripsPunctuation(t *testing.T) {
	a := NewAnalyzer()

	got := a.Terms("checkbox, switch; (radio)")
	want := []string{"checkbox", "switch", "radio"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v", got, want)
	}
}

func TestTerms_RemovesStopwords(t *testing.T) {
	a := NewAnalyzer()

	got := a.Terms("the checkbox is a form control")
	want := []string{"checkbox", "form", "control"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v", got, want)
	}
}

func TestTerms_RetainsDuplicatesInOrder(t *testing.T) {
	a := NewAnalyzer()

	got := a.Terms("input input field input")
	want := []string{"input", "input", "field", "input"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v", got, want)
	}
}

func TestNameTerms_NeverFiltersStopwords(t *testing.T) {
	a := NewAnalyzer()

	// "Text" alone is not a stop-word, but short common names must survive.
	got := a.NameTerms("Can")
	want := []string{"can"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NameTerms(Can) = %v, want %v", got, want)
	}

	got = a.NameTerms("SpinButton")
	want = []string{"spinbutton", "spin", "button"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NameTerms(SpinButton) = %v, want %v", got, want)
	}
}

func TestTerms_Deterministic(t *testing.T) {
	a := NewAnalyzer()
	input := "The ColorPicker and ColorArea components support multi-word labels."

	first := a.Terms(input)
	for i := 0; i < 10; i++ {
		if got := a.Terms(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}

func TestStem_MinimalPlurals(t *testing.T) {
	cases := []struct{ in, want string }{
		{"forms", "form"},
		{"checkboxes", "checkbox"},
		{"entries", "entry"},
		{"status", "status"},
		{"class", "class"},
		{"axis", "axis"},
		{"tabs", "tab"},
	}
	for _, c := range cases {
		if got := stem(c.in); got != c.want {
			t.Errorf("stem(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitBoundaries_UpperRuns(t *testing.T) {
	got := splitBoundaries("HTMLParser")
	want := []string{"HTML", "Parser"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitBoundaries(HTMLParser) = %v, want %v", got, want)
	}
}

func TestFoldName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ColorPicker", "colorpicker"},
		{"color picker", "colorpicker"},
		{"color-picker", "colorpicker"},
		{"CHECKBOX", "checkbox"},
	}
	for _, c := range cases {
		if got := FoldName(c.in); got != c.want {
			t.Errorf("FoldName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
