package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HTTPHandlerOptions configures how the Streamable HTTP transport behaves.
type HTTPHandlerOptions struct {
	// Stateless drops session tracking. The documentation tools are pure
	// request/response, so stateless mode is safe when no server-initiated
	// messages are needed. Default: false (stateful).
	Stateless bool
}

// NewHTTPHandler exposes the MCP server over Streamable HTTP. Mount it next
// to the health and landing handlers:
//
//	mux := http.NewServeMux()
//	mux.Handle("/mcp", mcpserver.NewHTTPHandler(server, nil))
//	mux.HandleFunc("/health", mcpserver.NewHealthHandler(builder))
func NewHTTPHandler(server *Server, opts *HTTPHandlerOptions) http.Handler {
	if opts == nil {
		opts = &HTTPHandlerOptions{}
	}

	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server.MCPServer()
	}, &mcp.StreamableHTTPOptions{
		Stateless: opts.Stateless,
	})
}
