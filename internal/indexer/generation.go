// Package indexer orchestrates parsing, store construction, and index
// construction into immutable generations, and owns the atomic swap that
// makes a new generation the active one.
package indexer

import (
	"time"

	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/index"
)

// FailedFile records one document that could not be parsed during a build.
type FailedFile struct {
	Path   string
	Reason string
}

// Stats describes one build.
type Stats struct {
	IndexedFiles int
	FailedFiles  []FailedFile
	Duration     time.Duration
}

// Generation is one complete, immutable (store, index) snapshot. It is
// created fully-built-or-not-at-all: partial builds are discarded, never
// published. Once published it is shared read-only by all queries; a later
// reindex supersedes it rather than editing it.
type Generation struct {
	Num     uint64 // monotonically increasing across builds
	BuildID string // random id for log correlation
	BuiltAt time.Time
	Store   *catalog.Store
	Index   *index.Index
	Stats   Stats
}
