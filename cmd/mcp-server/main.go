// Package main provides the MCP server entry point for Fluent UI documentation.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/indexer"
	"github.com/blendsdk/fluentui-mcp/internal/markdown"
	mcpserver "github.com/blendsdk/fluentui-mcp/internal/mcp"
	"github.com/blendsdk/fluentui-mcp/internal/search"
	"github.com/blendsdk/fluentui-mcp/internal/source"
	"github.com/blendsdk/fluentui-mcp/internal/synthesis"
)

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Create context that cancels on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// Configuration from environment
	port := getEnv("PORT", "8080")
	docsRoot := getEnv("DOCS_ROOT", "./docs")
	reindexMinutes := getEnvInt("REINDEX_INTERVAL_MINUTES", 0)
	watch := getEnv("WATCH", "false") == "true"

	// Pick the documentation source: local filesystem by default, GitHub when
	// DOCS_SOURCE=github.
	var src source.Source
	var fsSrc *source.FSSource
	if getEnv("DOCS_SOURCE", "fs") == "github" {
		owner := getEnv("GITHUB_OWNER", "microsoft")
		repo := getEnv("GITHUB_REPO", "fluentui")
		basePath := getEnv("GITHUB_PATH", "docs")
		ghSrc, err := source.NewGitHubSource(owner, repo, basePath)
		if err != nil {
			log.Fatalf("failed to create GitHub source: %v", err)
		}
		src = ghSrc
	} else {
		fsSrc = source.NewFSSource(docsRoot)
		src = fsSrc
	}

	analyzer := analysis.NewAnalyzer()
	builder := indexer.New(src,
		markdown.NewParser(catalog.DefaultPathMapper()),
		analyzer,
		catalog.DefaultAliases(),
		nil,
	)
	searcher := search.NewSearcher(analyzer)
	engine := synthesis.NewEngine(searcher)

	// Build the first generation before accepting any request. A server with
	// no index is not worth starting.
	if _, err := builder.Rebuild(ctx); err != nil {
		log.Fatalf("initial index build failed: %v", err)
	}

	// Periodic reindex, if configured.
	if reindexMinutes > 0 {
		scheduler := indexer.NewScheduler(builder, time.Duration(reindexMinutes)*time.Minute, nil)
		go func() {
			if err := scheduler.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("scheduler stopped: %v", err)
			}
		}()
	}

	// Filesystem watch mode, if configured and the source is local.
	if watch && fsSrc != nil {
		watcher := indexer.NewWatcher(builder, fsSrc.Root(), nil)
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("watcher stopped: %v", err)
			}
		}()
	}

	// Create MCP server
	server := mcpserver.NewServer(&mcpserver.Config{
		Builder:  builder,
		Searcher: searcher,
		Engine:   engine,
	})

	// Create HTTP server with multiple endpoints
	mux := http.NewServeMux()
	mux.HandleFunc("/", mcpserver.NewLandingHandler())
	mux.HandleFunc("/health", mcpserver.NewHealthHandler(builder))
	mux.Handle("/mcp", mcpserver.NewHTTPHandler(server, nil))

	// Check if running in server mode (HTTP) or stdio mode (local development)
	serverMode := getEnv("SERVER_MODE", "false") == "true"

	if serverMode {
		// HTTP mode: serve MCP over HTTP for remote clients
		addr := "0.0.0.0:" + port
		log.Printf("Starting HTTP server on %s (MCP at /mcp, health at /health)", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	} else {
		// Stdio mode: run MCP server over stdin/stdout for local clients
		// Also start HTTP health endpoint in background for local testing
		go func() {
			addr := "0.0.0.0:" + port
			log.Printf("Starting health server on %s", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Printf("Health server error: %v", err)
			}
		}()

		log.Println("Starting Fluent UI Documentation MCP Server (stdio mode)...")
		if err := server.Run(ctx); err != nil {
			log.Printf("server error: %v", err)
			os.Exit(1)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}
