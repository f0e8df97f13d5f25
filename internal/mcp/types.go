// Package mcp exposes the documentation engine over the Model Context
// Protocol: lookup, search, listing, synthesis, and index administration
// tools.
package mcp

import "time"

// GetComponentDocInput defines the input parameters for the get_component_doc tool.
type GetComponentDocInput struct {
	// Name is the component name or a known alias (e.g. "ColorPicker", "toggle").
	Name string `json:"name" jsonschema:"required,description=Component name or alias to look up (case-insensitive)"`
}

// GetComponentDocOutput contains the retrieved component document.
type GetComponentDocOutput struct {
	// Found indicates whether the name resolved to a document.
	Found bool `json:"found"`
	// Name echoes the requested name.
	Name string `json:"name"`
	// Path is the document source path.
	Path string `json:"path,omitempty"`
	// Title is the document title.
	Title string `json:"title,omitempty"`
	// Category and Subcategory locate the document in the catalog.
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	// Components lists every component this document covers.
	Components []string `json:"components,omitempty"`
	// Outline is the document's heading hierarchy, indented by depth.
	Outline []string `json:"outline,omitempty"`
	// Content is the full markdown content with source header prepended.
	Content string `json:"content,omitempty"`
	// Message provides context for a miss (e.g. the name did not resolve).
	Message string `json:"message,omitempty"`
}

// SearchDocsInput defines the input parameters for the search_docs tool.
type SearchDocsInput struct {
	// Query is the free-text search query.
	Query string `json:"query" jsonschema:"required,description=Free-text query; camelCase identifiers match their word parts"`
	// Category optionally narrows results to one category.
	Category string `json:"category,omitempty" jsonschema:"description=Restrict results to this category (case-insensitive)"`
	// MaxResults is the maximum number of documents to return.
	MaxResults int `json:"max_results,omitempty" jsonschema:"minimum=1,maximum=20,default=5,description=Maximum number of documents to return"`
}

// SearchDocsOutput contains the ranked search results.
type SearchDocsOutput struct {
	// Results is the list of matching documents, best first.
	Results []SearchResult `json:"results"`
	// Message provides informational context (e.g., "No matching documents found").
	Message string `json:"message,omitempty"`
}

// SearchResult represents a single ranked document match.
type SearchResult struct {
	// ID is the stable document identifier.
	ID string `json:"id"`
	// Path is the document source path.
	Path string `json:"path"`
	// Title is the document title.
	Title string `json:"title"`
	// Category locates the document in the catalog.
	Category string `json:"category"`
	// Score is the relevance score; comparable only within one response.
	Score float64 `json:"score"`
	// MatchedFields names the fields the query matched (title, component-name, heading, body).
	MatchedFields []string `json:"matched_fields"`
	// Snippet is a short excerpt around the best match.
	Snippet string `json:"snippet,omitempty"`
}

// ListByCategoryInput defines the input parameters for the list_by_category tool.
type ListByCategoryInput struct {
	// Category is the category to list.
	Category string `json:"category" jsonschema:"required,description=Category name (case-insensitive)"`
	// Subcategory optionally narrows the listing.
	Subcategory string `json:"subcategory,omitempty" jsonschema:"description=Restrict the listing to this subcategory"`
}

// ListByCategoryOutput contains the documents in one category.
type ListByCategoryOutput struct {
	Category string       `json:"category"`
	Docs     []DocSummary `json:"docs"`
	Count    int          `json:"count"`
}

// DocSummary is the listing form of a document: identity and location, no
// content.
type DocSummary struct {
	ID          string   `json:"id"`
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Components  []string `json:"components,omitempty"`
}

// SuggestComponentsInput defines the input parameters for the suggest_components tool.
type SuggestComponentsInput struct {
	// Description is the free-text description of the UI being built.
	Description string `json:"description" jsonschema:"required,description=What the UI should do (e.g. 'form with a date picker and validation')"`
	// MaxResults is the maximum number of components to suggest.
	MaxResults int `json:"max_results,omitempty" jsonschema:"minimum=1,maximum=10,default=5,description=Maximum number of components to suggest"`
}

// SuggestComponentsOutput contains the ranked component suggestions.
type SuggestComponentsOutput struct {
	Suggestions []ComponentSuggestion `json:"suggestions"`
	// Message is set when the description was too vague to rank against.
	Message string `json:"message,omitempty"`
}

// ComponentSuggestion is one suggested component.
type ComponentSuggestion struct {
	Name string `json:"name"`
	// Score is the aggregated relevance across the documents naming this component.
	Score float64 `json:"score"`
	// DocPath points at the document to read next.
	DocPath string `json:"doc_path"`
	// Rationale is an excerpt from the best matching passage.
	Rationale string `json:"rationale,omitempty"`
}

// BuildGuideInput defines the input parameters for the build_guide tool.
type BuildGuideInput struct {
	// Goal is the implementation goal to build a guide for.
	Goal string `json:"goal" jsonschema:"required,description=Implementation goal (e.g. 'build an accessible settings page')"`
}

// BuildGuideOutput contains the assembled guide.
type BuildGuideOutput struct {
	Goal    string       `json:"goal"`
	Entries []GuideEntry `json:"entries"`
	// Message is set when the goal was too vague to retrieve against.
	Message string `json:"message,omitempty"`
}

// GuideEntry is one guide step: a document plus its most relevant section.
type GuideEntry struct {
	Category string  `json:"category"`
	DocPath  string  `json:"doc_path"`
	Title    string  `json:"title"`
	Section  string  `json:"section"`
	Excerpt  string  `json:"excerpt"`
	Score    float64 `json:"score"`
}

// ListDocsInput defines the input parameters for the list_docs tool.
// This tool takes no parameters and lists the whole corpus.
type ListDocsInput struct {
	// No input parameters required
}

// ListDocsOutput contains every indexed document.
type ListDocsOutput struct {
	Docs  []DocSummary `json:"docs"`
	Count int          `json:"count"`
}

// RebuildIndexInput defines the input parameters for the rebuild_index tool.
// This tool takes no parameters.
type RebuildIndexInput struct {
	// No input parameters required
}

// RebuildIndexOutput reports the outcome of a reindex.
type RebuildIndexOutput struct {
	Generation   uint64       `json:"generation"`
	BuildID      string       `json:"build_id"`
	IndexedFiles int          `json:"indexed_files"`
	FailedFiles  []FailedFile `json:"failed_files,omitempty"`
	Duration     string       `json:"duration"`
}

// FailedFile is one source file skipped during a build.
type FailedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// GetIndexStatusInput defines the input parameters for the get_index_status tool.
// This tool takes no parameters.
type GetIndexStatusInput struct {
	// No input parameters required
}

// GetIndexStatusOutput describes the active index generation.
type GetIndexStatusOutput struct {
	Generation   uint64    `json:"generation"`
	BuildID      string    `json:"build_id"`
	BuiltAt      time.Time `json:"built_at"`
	TotalDocs    int       `json:"total_docs"`
	TermCount    int       `json:"term_count"`
	Categories   []string  `json:"categories"`
	FailedFiles  int       `json:"failed_files"`
	LastDuration string    `json:"last_build_duration"`
}
