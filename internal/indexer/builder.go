package indexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/docs"
	"github.com/blendsdk/fluentui-mcp/internal/index"
	"github.com/blendsdk/fluentui-mcp/internal/markdown"
	"github.com/blendsdk/fluentui-mcp/internal/source"
)

// ErrEmptyCorpus reports a build in which zero documents parsed
// successfully. An empty corpus is useless, not a valid generation; the
// previously active generation (if any) stays in place.
var ErrEmptyCorpus = errors.New("no documents parsed successfully")

// ErrNoGeneration reports a query arriving before the first successful
// build.
var ErrNoGeneration = errors.New("no index generation available yet")

// Builder constructs generations and holds the active-generation pointer.
// Builds are exclusive to the Builder; published generations are read-only.
type Builder struct {
	src      source.Source
	parser   *markdown.Parser
	analyzer *analysis.Analyzer
	aliases  catalog.AliasTable
	logger   *slog.Logger

	active atomic.Pointer[Generation]
	seq    atomic.Uint64
}

// New creates a Builder. A nil logger falls back to slog.Default.
func New(src source.Source, parser *markdown.Parser, analyzer *analysis.Analyzer, aliases catalog.AliasTable, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		src:      src,
		parser:   parser,
		analyzer: analyzer,
		aliases:  aliases,
		logger:   logger,
	}
}

// Active returns the currently published generation, or nil before the
// first successful build. A generation obtained here stays valid for the
// whole of any read using it, even across a concurrent reindex.
func (b *Builder) Active() *Generation {
	return b.active.Load()
}

// Build constructs a brand-new generation without publishing it. Per-file
// parse failures are recorded in stats and skipped; the build fails only
// when zero documents survive, or when discovery or the context fails.
// An aborted build publishes nothing and leaves the active generation
// untouched.
func (b *Builder) Build(ctx context.Context) (*Generation, error) {
	start := time.Now()
	buildID := uuid.New().String()
	log := b.logger.With("build_id", buildID)

	paths, err := b.src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover documents: %w", err)
	}
	log.Info("starting index build", "files", len(paths))

	var parsed []*docs.Document
	stats := Stats{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("build aborted: %w", err)
		}
		raw, err := b.src.Fetch(ctx, path)
		if err != nil {
			log.Warn("failed to fetch document", "path", path, "error", err)
			stats.FailedFiles = append(stats.FailedFiles, FailedFile{Path: path, Reason: err.Error()})
			continue
		}
		doc, err := b.parser.Parse(path, raw)
		if err != nil {
			log.Warn("failed to parse document", "path", path, "error", err)
			stats.FailedFiles = append(stats.FailedFiles, FailedFile{Path: path, Reason: err.Error()})
			continue
		}
		parsed = append(parsed, doc)
		stats.IndexedFiles++
	}

	if stats.IndexedFiles == 0 {
		return nil, fmt.Errorf("%w (%d files failed)", ErrEmptyCorpus, len(stats.FailedFiles))
	}

	store, err := catalog.Build(parsed, b.aliases)
	if err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}
	ix := index.Build(store, b.analyzer)

	stats.Duration = time.Since(start)
	gen := &Generation{
		Num:     b.seq.Add(1),
		BuildID: buildID,
		BuiltAt: time.Now(),
		Store:   store,
		Index:   ix,
		Stats:   stats,
	}
	log.Info("index build complete",
		"documents", stats.IndexedFiles,
		"failed", len(stats.FailedFiles),
		"terms", ix.TermCount(),
		"duration", stats.Duration,
	)
	return gen, nil
}

// Rebuild runs Build and, on success, atomically publishes the new
// generation. Queries in flight at the moment of the swap complete against
// the generation they started with. On failure the previously active
// generation remains active and serving; the error is returned unchanged.
func (b *Builder) Rebuild(ctx context.Context) (*Generation, error) {
	gen, err := b.Build(ctx)
	if err != nil {
		b.logger.Warn("rebuild failed, keeping active generation", "error", err)
		return nil, err
	}
	b.active.Store(gen)
	b.logger.Info("published generation",
		"generation", gen.Num,
		"build_id", gen.BuildID,
		"documents", gen.Stats.IndexedFiles,
		"failed", len(gen.Stats.FailedFiles),
		"duration", gen.Stats.Duration,
	)
	return gen, nil
}
