// Package docs defines the document model shared by the parser, store,
// index, and synthesis layers.
package docs

import "strings"

// Kind classifies a document by the part of the corpus it comes from.
// Component docs describe one or more UI components; the other kinds are
// narrative guides without component declarations.
type Kind string

const (
	KindComponent  Kind = "component"
	KindPattern    Kind = "pattern"
	KindFoundation Kind = "foundation"
	KindEnterprise Kind = "enterprise"
)

// MetaField is one key/value pair from a document's leading metadata block.
// Order and original spelling are preserved.
type MetaField struct {
	Key   string
	Value string
}

// Section is one heading-delimited region of a document body.
type Section struct {
	Heading string // Heading text without the leading # markers
	Level   int    // Heading level (1-6)
	Body    string // Text between this heading and the next, trimmed
}

// Document is one parsed source file. Documents are immutable after
// construction; a generation shares them read-only across all queries.
type Document struct {
	ID             string // Stable identifier derived from the source path
	Path           string // Relative source path, e.g. "components/forms/checkbox.md"
	Title          string
	Kind           Kind
	Category       string // Never empty for a successfully parsed document
	Subcategory    string // Optional
	ComponentNames []string // Components this file documents; empty for non-component docs
	Metadata       []MetaField
	Sections       []Section
	RawText        string
}

// MetaValue returns the value of the first metadata field with the given
// key, matched case-insensitively, or "" if absent.
func (d *Document) MetaValue(key string) string {
	for _, f := range d.Metadata {
		if strings.EqualFold(f.Key, key) {
			return f.Value
		}
	}
	return ""
}

// HasComponents reports whether this document declares any component names.
func (d *Document) HasComponents() bool {
	return len(d.ComponentNames) > 0
}
