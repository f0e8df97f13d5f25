package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/markdown"
	"github.com/blendsdk/fluentui-mcp/internal/source"
)

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestWatcher_BurstOfWritesSettlesIntoOneGeneration(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "components/forms/checkbox.md", "# Checkbox\n\nSelect options.\n")

	b := New(source.NewFSSource(root),
		markdown.NewParser(catalog.DefaultPathMapper()),
		analysis.NewAnalyzer(),
		catalog.DefaultAliases(),
		nil,
	)
	_, err := b.Rebuild(context.Background())
	require.NoError(t, err)
	base := b.Active().Num

	w := NewWatcher(b, root, nil)
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before producing events.
	time.Sleep(200 * time.Millisecond)
	for i := 0; i < 5; i++ {
		writeDoc(t, root, fmt.Sprintf("components/forms/extra%d.md", i), "# Extra\n\nBody text.\n")
	}

	deadline := time.After(5 * time.Second)
	for b.Active().Num == base {
		select {
		case <-deadline:
			t.Fatal("no rebuild observed after file changes")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// Let any trailing debounce window flush, then the generation must hold
	// steady: no stray timer may fire once events have settled.
	time.Sleep(6 * w.debounce)
	settled := b.Active().Num
	time.Sleep(6 * w.debounce)
	assert.Equal(t, settled, b.Active().Num, "generation changed without further events")

	// The rebuilt generation sees the new files.
	assert.Equal(t, 6, b.Active().Store.Len())

	cancel()
	<-done
}
