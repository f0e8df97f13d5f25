package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/blendsdk/fluentui-mcp/internal/docs"
	"github.com/blendsdk/fluentui-mcp/internal/indexer"
	"github.com/blendsdk/fluentui-mcp/internal/markdown"
	"github.com/blendsdk/fluentui-mcp/internal/search"
	"github.com/blendsdk/fluentui-mcp/internal/synthesis"
)

const defaultMaxResults = 5

// activeGeneration snapshots the current generation for the duration of one
// tool call. The snapshot stays valid even if a reindex swaps the active
// pointer mid-call.
func activeGeneration(b *indexer.Builder) (*indexer.Generation, error) {
	gen := b.Active()
	if gen == nil {
		return nil, indexer.ErrNoGeneration
	}
	return gen, nil
}

func summarize(d *docs.Document) DocSummary {
	return DocSummary{
		ID:          d.ID,
		Path:        d.Path,
		Title:       d.Title,
		Category:    d.Category,
		Subcategory: d.Subcategory,
		Components:  d.ComponentNames,
	}
}

// makeGetComponentDocHandler creates the get_component_doc tool handler.
// Lookup is case-insensitive and alias-aware; a miss is a normal result with
// Found=false, not a tool error.
func makeGetComponentDocHandler(b *indexer.Builder) func(
	context.Context, *mcp.CallToolRequest, GetComponentDocInput,
) (*mcp.CallToolResult, GetComponentDocOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetComponentDocInput) (
		*mcp.CallToolResult, GetComponentDocOutput, error,
	) {
		gen, err := activeGeneration(b)
		if err != nil {
			return nil, GetComponentDocOutput{}, err
		}

		doc, ok := gen.Store.ByComponentName(input.Name)
		if !ok {
			return nil, GetComponentDocOutput{
				Found:   false,
				Name:    input.Name,
				Message: fmt.Sprintf("No component named %q. Use search_docs or list_docs to discover available components.", input.Name),
			}, nil
		}

		outline, err := markdown.Outline([]byte(doc.RawText))
		if err != nil {
			outline = nil // content is still usable without the outline
		}

		return nil, GetComponentDocOutput{
			Found:       true,
			Name:        input.Name,
			Path:        doc.Path,
			Title:       doc.Title,
			Category:    doc.Category,
			Subcategory: doc.Subcategory,
			Components:  doc.ComponentNames,
			Outline:     outline,
			Content:     fmt.Sprintf("<!-- Source: %s -->\n\n%s", doc.Path, doc.RawText),
		}, nil
	}
}

// makeSearchHandler creates the search_docs tool handler.
func makeSearchHandler(b *indexer.Builder, s *search.Searcher) func(
	context.Context, *mcp.CallToolRequest, SearchDocsInput,
) (*mcp.CallToolResult, SearchDocsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchDocsInput) (
		*mcp.CallToolResult, SearchDocsOutput, error,
	) {
		gen, err := activeGeneration(b)
		if err != nil {
			return nil, SearchDocsOutput{}, err
		}

		maxResults := input.MaxResults
		if maxResults <= 0 {
			maxResults = defaultMaxResults
		}

		hits := s.Search(gen.Store, gen.Index, search.Query{
			Raw:      input.Query,
			Category: input.Category,
		}, maxResults)

		results := make([]SearchResult, 0, len(hits))
		for _, h := range hits {
			fields := make([]string, 0, len(h.MatchedFields))
			for _, f := range h.MatchedFields {
				fields = append(fields, f.String())
			}
			results = append(results, SearchResult{
				ID:            h.Doc.ID,
				Path:          h.Doc.Path,
				Title:         h.Doc.Title,
				Category:      h.Doc.Category,
				Score:         h.Score,
				MatchedFields: fields,
				Snippet:       h.Snippet,
			})
		}

		if len(results) == 0 {
			return nil, SearchDocsOutput{
				Results: []SearchResult{},
				Message: "No matching documents found. Try broader search terms.",
			}, nil
		}
		return nil, SearchDocsOutput{Results: results}, nil
	}
}

// makeListByCategoryHandler creates the list_by_category tool handler.
func makeListByCategoryHandler(b *indexer.Builder) func(
	context.Context, *mcp.CallToolRequest, ListByCategoryInput,
) (*mcp.CallToolResult, ListByCategoryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListByCategoryInput) (
		*mcp.CallToolResult, ListByCategoryOutput, error,
	) {
		gen, err := activeGeneration(b)
		if err != nil {
			return nil, ListByCategoryOutput{}, err
		}

		list := gen.Store.ByCategory(input.Category, input.Subcategory)
		out := ListByCategoryOutput{
			Category: input.Category,
			Docs:     make([]DocSummary, 0, len(list)),
			Count:    len(list),
		}
		for _, d := range list {
			out.Docs = append(out.Docs, summarize(d))
		}
		return nil, out, nil
	}
}

// makeSuggestHandler creates the suggest_components tool handler. A
// description too vague to rank yields an explicit message, never an
// arbitrary top-N list.
func makeSuggestHandler(b *indexer.Builder, e *synthesis.Engine) func(
	context.Context, *mcp.CallToolRequest, SuggestComponentsInput,
) (*mcp.CallToolResult, SuggestComponentsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SuggestComponentsInput) (
		*mcp.CallToolResult, SuggestComponentsOutput, error,
	) {
		gen, err := activeGeneration(b)
		if err != nil {
			return nil, SuggestComponentsOutput{}, err
		}

		ranked, err := e.SuggestComponents(gen.Store, gen.Index, input.Description, input.MaxResults)
		if errors.Is(err, synthesis.ErrAmbiguousQuery) {
			return nil, SuggestComponentsOutput{
				Suggestions: []ComponentSuggestion{},
				Message:     "Description is too vague to suggest components. Describe what the UI should do.",
			}, nil
		}
		if err != nil {
			return nil, SuggestComponentsOutput{}, fmt.Errorf("suggest components: %w", err)
		}

		out := SuggestComponentsOutput{Suggestions: make([]ComponentSuggestion, 0, len(ranked))}
		for _, rc := range ranked {
			out.Suggestions = append(out.Suggestions, ComponentSuggestion{
				Name:      rc.Name,
				Score:     rc.Score,
				DocPath:   rc.Doc.Path,
				Rationale: rc.Rationale,
			})
		}
		if len(out.Suggestions) == 0 {
			out.Message = "No components matched the description. Try naming concrete interactions (pick a date, upload a file)."
		}
		return nil, out, nil
	}
}

// makeGuideHandler creates the build_guide tool handler.
func makeGuideHandler(b *indexer.Builder, e *synthesis.Engine) func(
	context.Context, *mcp.CallToolRequest, BuildGuideInput,
) (*mcp.CallToolResult, BuildGuideOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input BuildGuideInput) (
		*mcp.CallToolResult, BuildGuideOutput, error,
	) {
		gen, err := activeGeneration(b)
		if err != nil {
			return nil, BuildGuideOutput{}, err
		}

		guide, err := e.BuildGuide(gen.Store, gen.Index, input.Goal)
		if errors.Is(err, synthesis.ErrAmbiguousQuery) {
			return nil, BuildGuideOutput{
				Goal:    input.Goal,
				Entries: []GuideEntry{},
				Message: "Goal is too vague to build a guide. State what you want to implement.",
			}, nil
		}
		if err != nil {
			return nil, BuildGuideOutput{}, fmt.Errorf("build guide: %w", err)
		}

		out := BuildGuideOutput{Goal: guide.Goal, Entries: make([]GuideEntry, 0, len(guide.Entries))}
		for _, entry := range guide.Entries {
			out.Entries = append(out.Entries, GuideEntry{
				Category: entry.Category,
				DocPath:  entry.Doc.Path,
				Title:    entry.Doc.Title,
				Section:  entry.Section.Heading,
				Excerpt:  entry.Section.Body,
				Score:    entry.Score,
			})
		}
		return nil, out, nil
	}
}

// makeListHandler creates the list_docs tool handler. The listing order is
// category declaration order, then the store's per-category order.
func makeListHandler(b *indexer.Builder) func(
	context.Context, *mcp.CallToolRequest, ListDocsInput,
) (*mcp.CallToolResult, ListDocsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListDocsInput) (
		*mcp.CallToolResult, ListDocsOutput, error,
	) {
		gen, err := activeGeneration(b)
		if err != nil {
			return nil, ListDocsOutput{}, err
		}

		out := ListDocsOutput{Docs: make([]DocSummary, 0, gen.Store.Len())}
		for _, cat := range gen.Store.Categories() {
			for _, d := range gen.Store.ByCategory(cat, "") {
				out.Docs = append(out.Docs, summarize(d))
			}
		}
		out.Count = len(out.Docs)
		return nil, out, nil
	}
}

// makeRebuildHandler creates the rebuild_index tool handler. A failed
// rebuild returns an error and leaves the previous generation serving.
func makeRebuildHandler(b *indexer.Builder) func(
	context.Context, *mcp.CallToolRequest, RebuildIndexInput,
) (*mcp.CallToolResult, RebuildIndexOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RebuildIndexInput) (
		*mcp.CallToolResult, RebuildIndexOutput, error,
	) {
		gen, err := b.Rebuild(ctx)
		if err != nil {
			return nil, RebuildIndexOutput{}, fmt.Errorf("rebuild failed, previous index still active: %w", err)
		}

		out := RebuildIndexOutput{
			Generation:   gen.Num,
			BuildID:      gen.BuildID,
			IndexedFiles: gen.Stats.IndexedFiles,
			Duration:     gen.Stats.Duration.String(),
		}
		for _, ff := range gen.Stats.FailedFiles {
			out.FailedFiles = append(out.FailedFiles, FailedFile{Path: ff.Path, Reason: ff.Reason})
		}
		return nil, out, nil
	}
}

// makeStatusHandler creates the get_index_status tool handler.
func makeStatusHandler(b *indexer.Builder) func(
	context.Context, *mcp.CallToolRequest, GetIndexStatusInput,
) (*mcp.CallToolResult, GetIndexStatusOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetIndexStatusInput) (
		*mcp.CallToolResult, GetIndexStatusOutput, error,
	) {
		gen, err := activeGeneration(b)
		if err != nil {
			return nil, GetIndexStatusOutput{}, err
		}

		return nil, GetIndexStatusOutput{
			Generation:   gen.Num,
			BuildID:      gen.BuildID,
			BuiltAt:      gen.BuiltAt,
			TotalDocs:    gen.Store.Len(),
			TermCount:    gen.Index.TermCount(),
			Categories:   gen.Store.Categories(),
			FailedFiles:  len(gen.Stats.FailedFiles),
			LastDuration: gen.Stats.Duration.String(),
		}, nil
	}
}
