package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// Outline returns the heading hierarchy of a markdown document as indented
// lines, one per heading. Used by the document-fetch adapter and the CLI to
// show a table of contents alongside full content.
func Outline(raw []byte) ([]string, error) {
	md := goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	root := md.Parser().Parse(text.NewReader(raw))

	tree, err := toc.Inspect(root, raw,
		toc.MinDepth(1),
		toc.MaxDepth(6),
		toc.Compact(true),
	)
	if err != nil {
		return nil, fmt.Errorf("inspect headings: %w", err)
	}

	var lines []string
	appendItems(tree.Items, 0, &lines)
	return lines, nil
}

func appendItems(items toc.Items, depth int, lines *[]string) {
	for _, item := range items {
		*lines = append(*lines, strings.Repeat("  ", depth)+string(item.Title))
		appendItems(item.Items, depth+1, lines)
	}
}
