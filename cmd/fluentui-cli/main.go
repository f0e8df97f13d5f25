// Package main provides a CLI for inspecting the Fluent UI documentation
// index without an MCP client: build stats, search, suggestions, guides,
// and listings straight to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/blendsdk/fluentui-mcp/internal/analysis"
	"github.com/blendsdk/fluentui-mcp/internal/catalog"
	"github.com/blendsdk/fluentui-mcp/internal/indexer"
	"github.com/blendsdk/fluentui-mcp/internal/markdown"
	"github.com/blendsdk/fluentui-mcp/internal/search"
	"github.com/blendsdk/fluentui-mcp/internal/source"
	"github.com/blendsdk/fluentui-mcp/internal/synthesis"
)

var (
	docsRoot   string
	maxResults int
	category   string
)

var rootCmd = &cobra.Command{
	Use:   "fluentui-cli",
	Short: "Fluent UI documentation index tool",
	Long:  "CLI tool for building and querying the Fluent UI documentation index",
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the index and print statistics",
	RunE:  runIndex,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the documentation",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <description>",
	Short: "Suggest components for a described UI",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

var guideCmd = &cobra.Command{
	Use:   "guide <goal>",
	Short: "Assemble an implementation guide for a goal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGuide,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed documents, optionally one category",
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <component>",
	Short: "Show a component document by name or alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&docsRoot, "docs", "./docs", "documentation root directory")
	searchCmd.Flags().IntVarP(&maxResults, "limit", "n", 5, "maximum results")
	searchCmd.Flags().StringVarP(&category, "category", "c", "", "restrict to one category")
	suggestCmd.Flags().IntVarP(&maxResults, "limit", "n", 5, "maximum suggestions")
	listCmd.Flags().StringVarP(&category, "category", "c", "", "list only this category")
	rootCmd.AddCommand(indexCmd, searchCmd, suggestCmd, guideCmd, listCmd, showCmd)
}

func main() {
	// Load .env file if present (local development), ignore if missing
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildGeneration indexes the docs root and returns the generation, shared
// by every query command.
func buildGeneration(ctx context.Context) (*indexer.Generation, error) {
	builder := indexer.New(source.NewFSSource(docsRoot),
		markdown.NewParser(catalog.DefaultPathMapper()),
		analysis.NewAnalyzer(),
		catalog.DefaultAliases(),
		nil,
	)
	gen, err := builder.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", docsRoot, err)
	}
	return gen, nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	start := time.Now()
	gen, err := buildGeneration(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println("Index built")
	fmt.Printf("  Documents: %d\n", gen.Stats.IndexedFiles)
	fmt.Printf("  Terms:     %d\n", gen.Index.TermCount())
	fmt.Printf("  Categories: %v\n", gen.Store.Categories())
	fmt.Printf("  Duration:  %s\n", time.Since(start).Round(time.Millisecond))

	if len(gen.Stats.FailedFiles) > 0 {
		fmt.Println()
		fmt.Println("Failed files:")
		for _, failed := range gen.Stats.FailedFiles {
			fmt.Printf("  - %s: %s\n", failed.Path, failed.Reason)
		}
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	gen, err := buildGeneration(cmd.Context())
	if err != nil {
		return err
	}

	query := joinArgs(args)
	searcher := search.NewSearcher(analysis.NewAnalyzer())
	results := searcher.Search(gen.Store, gen.Index, search.Query{Raw: query, Category: category}, maxResults)
	if len(results) == 0 {
		fmt.Println("No matching documents.")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%d. %s (%s) score=%.3f\n", i+1, r.Doc.Title, r.Doc.Path, r.Score)
		if r.Snippet != "" {
			fmt.Printf("   %s\n", r.Snippet)
		}
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	gen, err := buildGeneration(cmd.Context())
	if err != nil {
		return err
	}

	engine := synthesis.NewEngine(search.NewSearcher(analysis.NewAnalyzer()))
	ranked, err := engine.SuggestComponents(gen.Store, gen.Index, joinArgs(args), maxResults)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		fmt.Println("No components matched the description.")
		return nil
	}

	for i, rc := range ranked {
		fmt.Printf("%d. %s score=%.3f (%s)\n", i+1, rc.Name, rc.Score, rc.Doc.Path)
		if rc.Rationale != "" {
			fmt.Printf("   %s\n", rc.Rationale)
		}
	}
	return nil
}

func runGuide(cmd *cobra.Command, args []string) error {
	gen, err := buildGeneration(cmd.Context())
	if err != nil {
		return err
	}

	engine := synthesis.NewEngine(search.NewSearcher(analysis.NewAnalyzer()))
	guide, err := engine.BuildGuide(gen.Store, gen.Index, joinArgs(args))
	if err != nil {
		return err
	}

	fmt.Printf("Guide: %s\n", guide.Goal)
	lastCategory := ""
	for _, entry := range guide.Entries {
		if entry.Category != lastCategory {
			fmt.Printf("\n[%s]\n", entry.Category)
			lastCategory = entry.Category
		}
		fmt.Printf("  %s — %s (%s)\n", entry.Doc.Title, entry.Section.Heading, entry.Doc.Path)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	gen, err := buildGeneration(cmd.Context())
	if err != nil {
		return err
	}

	categories := gen.Store.Categories()
	if category != "" {
		categories = []string{category}
	}
	for _, cat := range categories {
		docs := gen.Store.ByCategory(cat, "")
		fmt.Printf("%s (%d)\n", cat, len(docs))
		for _, d := range docs {
			fmt.Printf("  %s  %s\n", d.Title, d.Path)
		}
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	gen, err := buildGeneration(cmd.Context())
	if err != nil {
		return err
	}

	doc, ok := gen.Store.ByComponentName(args[0])
	if !ok {
		return fmt.Errorf("no component named %q", args[0])
	}

	fmt.Printf("%s (%s/%s)\n", doc.Title, doc.Category, doc.Subcategory)
	if outline, err := markdown.Outline([]byte(doc.RawText)); err == nil && len(outline) > 0 {
		fmt.Println()
		for _, line := range outline {
			fmt.Println(line)
		}
	}
	fmt.Println()
	fmt.Println(doc.RawText)
	return nil
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
