// Package markdown turns one raw documentation file into a structured
// Document: title, metadata block, component names, and a sectioned body.
package markdown

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/docs"
)

// ParseError reports a document that could not be parsed or categorized.
// The builder records these in build stats and skips the file.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
}

// Parser converts raw markdown into Documents. It is a pure function of its
// inputs: no I/O, no shared mutable state, safe for concurrent use.
type Parser struct {
	md     goldmark.Markdown
	mapper catalog.CategoryMapper
}

// NewParser creates a Parser using the given category mapper for location
// based classification.
func NewParser(mapper catalog.CategoryMapper) *Parser {
	return &Parser{
		md:     goldmark.New(),
		mapper: mapper,
	}
}

// metaLineRe matches one "Key: value" line of a leading metadata block.
var metaLineRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 _-]{0,40}):[ \t]+(\S.*)$`)

// heading is an AST heading with its byte offsets in the source.
type heading struct {
	level        int
	title        string
	lineStart    int // offset of the first byte of the heading line
	contentStart int // offset just past the heading line
}

// Parse builds a Document from one source file. A file whose location maps
// to no known category fails with *ParseError.
func (p *Parser) Parse(path string, raw []byte) (*docs.Document, error) {
	kind, category, subcategory, ok := p.mapper.Map(path)
	if !ok {
		return nil, &ParseError{Path: path, Reason: "location maps to no known category"}
	}

	headings := p.collectHeadings(raw)

	title := ""
	titleIdx := -1
	for i, h := range headings {
		if h.level == 1 {
			title = h.title
			titleIdx = i
			break
		}
	}
	if title == "" {
		title = titleFromFilename(path)
	}

	// The metadata block is a run of "Key: value" lines immediately after
	// the title heading (or at the top of the file when there is none).
	metaScanStart := 0
	if titleIdx >= 0 {
		metaScanStart = headings[titleIdx].contentStart
	}
	metadata, metaEnd := scanMetadata(raw, metaScanStart)

	sections := buildSections(raw, headings, title, titleIdx, metaEnd)

	names := componentNames(metadata, title, kind)

	return &docs.Document{
		ID:             DocID(path),
		Path:           path,
		Title:          title,
		Kind:           kind,
		Category:       category,
		Subcategory:    subcategory,
		ComponentNames: names,
		Metadata:       metadata,
		Sections:       sections,
		RawText:        string(raw),
	}, nil
}

// DocID derives the stable document identifier from a source path: the
// slash-cleaned relative path without its extension.
func DocID(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// collectHeadings walks the AST and returns every heading with its source
// offsets, in document order.
func (p *Parser) collectHeadings(raw []byte) []heading {
	reader := text.NewReader(raw)
	root := p.md.Parser().Parse(reader)

	var out []heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindHeading {
			return ast.WalkContinue, nil
		}
		h := n.(*ast.Heading)
		lines := h.Lines()
		if lines.Len() == 0 {
			return ast.WalkContinue, nil
		}
		first := lines.At(0)
		last := lines.At(lines.Len() - 1)
		out = append(out, heading{
			level:        h.Level,
			title:        strings.TrimSpace(nodeText(h, raw)),
			lineStart:    lineStart(raw, first.Start),
			contentStart: lineEnd(raw, last.Stop),
		})
		return ast.WalkContinue, nil
	})
	return out
}

// buildSections splits the body at heading boundaries, preserving level and
// source order. Text before the first heading becomes an untitled preamble
// section; a document without headings yields a single section under the
// derived title.
func buildSections(raw []byte, headings []heading, title string, titleIdx, metaEnd int) []docs.Section {
	if len(headings) == 0 {
		body := strings.TrimSpace(string(raw[metaEnd:]))
		if body == "" {
			return nil
		}
		return []docs.Section{{Heading: title, Level: 1, Body: body}}
	}

	var sections []docs.Section

	preEnd := headings[0].lineStart
	preStart := 0
	if titleIdx < 0 {
		// Metadata was scanned at the top of the file.
		preStart = metaEnd
	}
	if pre := strings.TrimSpace(string(raw[preStart:preEnd])); pre != "" {
		sections = append(sections, docs.Section{Body: pre})
	}

	for i, h := range headings {
		start := h.contentStart
		if i == titleIdx && metaEnd > start {
			start = metaEnd
		}
		end := len(raw)
		if i+1 < len(headings) {
			end = headings[i+1].lineStart
		}
		sections = append(sections, docs.Section{
			Heading: h.title,
			Level:   h.level,
			Body:    strings.TrimSpace(string(raw[start:end])),
		})
	}
	return sections
}

// scanMetadata consumes a run of "Key: value" lines starting at off,
// skipping leading blank lines. It returns the fields in source order and
// the offset just past the block.
func scanMetadata(raw []byte, off int) ([]docs.MetaField, int) {
	var fields []docs.MetaField
	pos := off
	for pos < len(raw) {
		end := pos
		for end < len(raw) && raw[end] != '\n' {
			end++
		}
		line := strings.TrimRight(string(raw[pos:end]), "\r")

		if strings.TrimSpace(line) == "" {
			if len(fields) > 0 {
				break // blank line ends the block
			}
			pos = advance(end, len(raw))
			continue
		}

		m := metaLineRe.FindStringSubmatch(line)
		if m == nil {
			break
		}
		fields = append(fields, docs.MetaField{
			Key:   strings.TrimSpace(m[1]),
			Value: strings.TrimSpace(m[2]),
		})
		pos = advance(end, len(raw))
	}
	if len(fields) == 0 {
		return nil, off
	}
	return fields, pos
}

// componentNames resolves the declared component set: an explicit
// "Components:" metadata line wins; otherwise a component document is
// assumed to document the single component named by its title.
func componentNames(metadata []docs.MetaField, title string, kind docs.Kind) []string {
	for _, f := range metadata {
		if !strings.EqualFold(f.Key, "Components") {
			continue
		}
		var names []string
		for _, part := range strings.Split(f.Value, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
		return names
	}
	if kind == docs.KindComponent && title != "" {
		return []string{title}
	}
	return nil
}

func titleFromFilename(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// nodeText collects the plain text of a node, dropping inline markup.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// lineStart walks back from off to the byte after the previous newline.
func lineStart(raw []byte, off int) int {
	for off > 0 && raw[off-1] != '\n' {
		off--
	}
	return off
}

// lineEnd walks forward from off past the end of the current line.
func lineEnd(raw []byte, off int) int {
	for off < len(raw) && raw[off] != '\n' {
		off++
	}
	return advance(off, len(raw))
}

func advance(off, max int) int {
	if off < max {
		return off + 1
	}
	return off
}
