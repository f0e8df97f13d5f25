package catalog

import (
	"path"
	"strings"

	"github.com/blendsdk/fluentui-mcp/internal/docs"
)

// CategoryMapper assigns a kind, category, and optional subcategory to a
// document based on its source location. The mapping is deterministic and
// supplied by the caller; a location that maps to nothing is a parse
// failure, never a silent default.
type CategoryMapper interface {
	Map(docPath string) (kind docs.Kind, category, subcategory string, ok bool)
}

// PathMapper maps the first path segment to a document kind. Component docs
// take their category from the second segment (e.g. "components/forms/..."
// has category "forms"); other kinds use the first segment itself as the
// category with the second segment as subcategory.
type PathMapper struct {
	kinds map[string]docs.Kind
}

// NewPathMapper builds a mapper from top-level directory name to kind.
func NewPathMapper(kinds map[string]docs.Kind) *PathMapper {
	return &PathMapper{kinds: kinds}
}

// DefaultPathMapper covers the standard corpus layout.
func DefaultPathMapper() *PathMapper {
	return NewPathMapper(map[string]docs.Kind{
		"components":  docs.KindComponent,
		"patterns":    docs.KindPattern,
		"foundations": docs.KindFoundation,
		"enterprise":  docs.KindEnterprise,
	})
}

// Map implements CategoryMapper.
func (m *PathMapper) Map(docPath string) (docs.Kind, string, string, bool) {
	segs := strings.Split(path.Clean(strings.TrimPrefix(docPath, "/")), "/")
	if len(segs) == 0 || segs[0] == "." {
		return "", "", "", false
	}
	kind, known := m.kinds[segs[0]]
	if !known {
		return "", "", "", false
	}
	// A bare top-level name has no file segment to classify.
	if len(segs) < 2 {
		return "", "", "", false
	}

	// Directory segments only: the final segment is the file itself.
	dirs := segs[1 : len(segs)-1]

	if kind == docs.KindComponent {
		// Component docs need at least components/<category>/<file>.
		if len(dirs) == 0 {
			return "", "", "", false
		}
		sub := ""
		if len(dirs) > 1 {
			sub = dirs[1]
		}
		return kind, dirs[0], sub, true
	}

	sub := ""
	if len(dirs) > 0 {
		sub = dirs[0]
	}
	return kind, segs[0], sub, true
}
