package indexer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/markdown"
	"github.com/blendsdk/fluentui-mcp/internal/search"
)

// fakeSource serves an in-memory corpus.
type fakeSource struct {
	mu    sync.Mutex
	files map[string]string
}

func (f *fakeSource) List(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make([]string, 0, len(f.files))
	for p := range f.files {
		paths = append(paths, p)
	}
	return paths, nil
}

func (f *fakeSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return []byte(content), nil
}

func (f *fakeSource) set(files map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = files
}

func testCorpus() map[string]string {
	return map[string]string{
		"components/forms/checkbox.md": "# Checkbox\n\nPackage: @fluentui/react-checkbox\n\n## Usage\n\nSelect one or more options.\n",
		"components/forms/input.md":    "# Input\n\nText entry field.\n",
		"patterns/layout/grid.md":      "# Grid Layout\n\nArrange content in rows and columns.\n",
	}
}

func newTestBuilder(files map[string]string) (*Builder, *fakeSource) {
	src := &fakeSource{files: files}
	b := New(src,
		markdown.NewParser(catalog.DefaultPathMapper()),
		analysis.NewAnalyzer(),
		catalog.DefaultAliases(),
		nil,
	)
	return b, src
}

func TestBuild_Success(t *testing.T) {
	b, _ := newTestBuilder(testCorpus())

	gen, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, gen.Stats.IndexedFiles)
	assert.Empty(t, gen.Stats.FailedFiles)
	assert.Equal(t, 3, gen.Store.Len())
	assert.NotEmpty(t, gen.BuildID)
	// Build alone must not publish.
	assert.Nil(t, b.Active(), "only Rebuild may publish")
}

func TestBuild_CountsParseFailures(t *testing.T) {
	files := testCorpus()
	files["scratch/notes.md"] = "# Unmapped\n" // location maps to no category
	b, _ := newTestBuilder(files)

	gen, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, gen.Stats.IndexedFiles)
	require.Len(t, gen.Stats.FailedFiles, 1)
	assert.Equal(t, "scratch/notes.md", gen.Stats.FailedFiles[0].Path)

	_, ok := gen.Store.ByID("scratch/notes")
	assert.False(t, ok, "failed document must not be in the store")
}

func TestBuild_EmptyCorpus(t *testing.T) {
	b, _ := newTestBuilder(map[string]string{})

	_, err := b.Build(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestBuild_AbortedByContext(t *testing.T) {
	b, _ := newTestBuilder(testCorpus())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx)
	require.Error(t, err)
	assert.Nil(t, b.Active(), "aborted build must not publish")
}

func TestRebuild_PublishesAndIncrementsGeneration(t *testing.T) {
	b, _ := newTestBuilder(testCorpus())

	first, err := b.Rebuild(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, b.Active())

	second, err := b.Rebuild(context.Background())
	require.NoError(t, err)
	assert.Greater(t, second.Num, first.Num, "generation numbers must be monotonic")
	assert.Same(t, second, b.Active())
}

func TestRebuild_FailureKeepsActiveGeneration(t *testing.T) {
	b, src := newTestBuilder(testCorpus())

	good, err := b.Rebuild(context.Background())
	require.NoError(t, err)

	// Discovery now returns zero files: the rebuild must fail and the old
	// generation must keep serving.
	src.set(map[string]string{})
	_, err = b.Rebuild(context.Background())
	require.ErrorIs(t, err, ErrEmptyCorpus)
	assert.Same(t, good, b.Active(), "failed rebuild must not replace the active generation")

	// Queries against the surviving generation behave as before.
	s := search.NewSearcher(analysis.NewAnalyzer())
	gen := b.Active()
	results := s.Search(gen.Store, gen.Index, search.Query{Raw: "checkbox"}, 5)
	assert.NotEmpty(t, results, "surviving generation should still serve searches")
}

func TestRebuild_ConcurrentSearchesNeverMixGenerations(t *testing.T) {
	b, src := newTestBuilder(testCorpus())
	_, err := b.Rebuild(context.Background())
	require.NoError(t, err)

	s := search.NewSearcher(analysis.NewAnalyzer())
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				gen := b.Active()
				results := s.Search(gen.Store, gen.Index, search.Query{Raw: "checkbox input grid"}, 10)
				// Every result must come from the generation the query
				// started with.
				for _, r := range results {
					if _, ok := gen.Store.ByID(r.Doc.ID); !ok {
						t.Errorf("result %s not in the query's generation", r.Doc.ID)
					}
				}
			}
		}()
	}

	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			src.set(testCorpus())
		} else {
			files := testCorpus()
			delete(files, "components/forms/input.md")
			src.set(files)
		}
		_, err := b.Rebuild(context.Background())
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()
}
