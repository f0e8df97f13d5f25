package catalog

import "github.com/blendsdk/fluentui-mcp/internal/analysis"

// AliasTable maps folded alternate spellings to the folded canonical
// component name they resolve to. Resolution happens before name lookup in
// the store; unresolved names simply miss.
type AliasTable map[string]string

// DefaultAliases returns the static alias table for common alternate
// spellings and legacy component names. Keys and values are stored folded
// (see analysis.FoldName).
func DefaultAliases() AliasTable {
	raw := map[string]string{
		"toggle":       "Switch",
		"text field":   "Input",
		"textfield":    "Input",
		"textbox":      "Input",
		"select":       "Dropdown",
		"combo box":    "Combobox",
		"date picker":  "DatePicker",
		"progressbar":  "ProgressBar",
		"progress":     "ProgressBar",
		"breadcrumbs":  "Breadcrumb",
		"tab list":     "TabList",
		"tabs":         "TabList",
		"tooltip icon": "Tooltip",
		"modal":        "Dialog",
		"popup":        "Popover",
	}
	t := make(AliasTable, len(raw))
	for alias, canonical := range raw {
		t[analysis.FoldName(alias)] = analysis.FoldName(canonical)
	}
	return t
}

// Resolve maps a folded name through the table, returning the canonical
// folded name. Names without an alias entry resolve to themselves.
func (t AliasTable) Resolve(folded string) string {
	if canonical, ok := t[folded]; ok {
		return canonical
	}
	return folded
}
