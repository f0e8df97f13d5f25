package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/blendsdk/fluentui-mcp/internal/indexer"
	"github.com/blendsdk/fluentui-mcp/internal/search"
	"github.com/blendsdk/fluentui-mcp/internal/synthesis"
)

// Server wraps the MCP server with dependencies.
type Server struct {
	server   *mcp.Server
	builder  *indexer.Builder
	searcher *search.Searcher
	engine   *synthesis.Engine
}

// Config holds server dependencies.
type Config struct {
	Builder  *indexer.Builder
	Searcher *search.Searcher
	Engine   *synthesis.Engine
}

// NewServer creates a configured MCP server with tools registered.
func NewServer(cfg *Config) *Server {
	impl := &mcp.Implementation{
		Name:    "fluentui-docs-server",
		Version: "v0.1.0",
	}

	server := mcp.NewServer(impl, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_component_doc",
		Description: "Retrieve the full Fluent UI documentation for a component by name or alias (case-insensitive). Returns markdown content plus a heading outline.",
	}, makeGetComponentDocHandler(cfg.Builder))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search Fluent UI documentation with a free-text query. Matches in titles and component names rank above body matches; camelCase terms match their word parts.",
	}, makeSearchHandler(cfg.Builder, cfg.Searcher))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_by_category",
		Description: "List the documents in one category (e.g. forms, navigation), optionally narrowed to a subcategory. Order is stable across calls.",
	}, makeListByCategoryHandler(cfg.Builder))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_components",
		Description: "Suggest Fluent UI components for a described UI, ranked by relevance with a rationale per suggestion. Vague descriptions get an explicit message instead of guesses.",
	}, makeSuggestHandler(cfg.Builder, cfg.Engine))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_guide",
		Description: "Assemble an implementation guide for a goal from the most relevant documentation sections, grouped by category. Every entry cites its source document and section.",
	}, makeGuideHandler(cfg.Builder, cfg.Engine))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_docs",
		Description: "List every indexed document with its category and component names.",
	}, makeListHandler(cfg.Builder))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rebuild_index",
		Description: "Re-read the documentation source and atomically swap in a fresh index. On failure the previous index keeps serving.",
	}, makeRebuildHandler(cfg.Builder))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_index_status",
		Description: "Get the active index generation: document counts, categories, term count, build time, and per-build failures.",
	}, makeStatusHandler(cfg.Builder))

	return &Server{
		server:   server,
		builder:  cfg.Builder,
		searcher: cfg.Searcher,
		engine:   cfg.Engine,
	}
}

// Run starts the server with stdio transport (blocks until client disconnects).
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server instance.
// Used by transport handlers that need to wrap the server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}
