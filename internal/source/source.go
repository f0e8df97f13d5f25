// Package source provides the file-discovery collaborators the index
// builder consumes: enumeration of documentation files under a root and
// retrieval of their raw content. The core engine never walks storage
// itself; it sees only (path, content) pairs.
package source

import (
	"context"
	"path"
	"strings"
)

// Source enumerates and fetches documentation files. Paths are relative,
// slash-separated, and stable across calls for an unchanged corpus.
type Source interface {
	// List returns the relative paths of all documentation files, sorted.
	List(ctx context.Context) ([]string, error)

	// Fetch returns the raw content of one file.
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// markdownFile reports whether a path looks like a documentation file.
func markdownFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".mdx", ".markdown":
		return true
	}
	return false
}
