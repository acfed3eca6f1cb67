// Package tools is the tool boundary: it owns the callable tool catalog,
// decodes raw argument maps, runs the underlying scraping and search
// components, and converts every outcome — including panics and unknown
// names — into the uniform result envelope callers receive.
package tools

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/webscrape/internal/article"
	"github.com/hyperifyio/webscrape/internal/research"
	"github.com/hyperifyio/webscrape/internal/search"
)

// Op enumerates the callable tools. Dispatch switches over this closed set;
// tool names exist only at the catalog boundary.
type Op int

const (
	OpScrapeHTML Op = iota
	OpExtractLinks
	OpExtractMetadata
	OpScrapeTable
	OpWebSearch
	OpNewsSearch
	OpSearchAndScrape
	OpExtractArticle
	OpSmartSearch
)

// ArgType is the JSON schema type of a tool argument.
type ArgType string

const (
	ArgString  ArgType = "string"
	ArgInteger ArgType = "integer"
)

// Arg describes one tool argument for schema generation and decoding.
type Arg struct {
	Name        string
	Type        ArgType
	Description string
	Required    bool
	Default     any
	Enum        []string
}

// Definition describes one tool. The same definition drives the JSON schema
// catalog, the OpenAI encoding, and the MCP registration.
type Definition struct {
	Op          Op
	Name        string
	Description string
	Args        []Arg
}

// InputSchema renders the definition's arguments as a JSON schema object.
func (d Definition) InputSchema() map[string]any {
	props := map[string]any{}
	var required []string
	for _, a := range d.Args {
		p := map[string]any{"type": string(a.Type)}
		if a.Description != "" {
			p["description"] = a.Description
		}
		if a.Default != nil {
			p["default"] = a.Default
		}
		if len(a.Enum) > 0 {
			p["enum"] = a.Enum
		}
		props[a.Name] = p
		if a.Required {
			required = append(required, a.Name)
		}
	}
	schema := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var catalog = []Definition{
	{
		Op:          OpScrapeHTML,
		Name:        "scrape_html",
		Description: "Scrape HTML content from a URL with optional CSS selector filtering",
		Args: []Arg{
			{Name: "url", Type: ArgString, Description: "The URL to scrape", Required: true},
			{Name: "selector", Type: ArgString, Description: "Optional CSS selector to filter content"},
			{Name: "format", Type: ArgString, Description: "Output format for matched content", Default: "text", Enum: []string{"text", "markdown"}},
		},
	},
	{
		Op:          OpExtractLinks,
		Name:        "extract_links",
		Description: "Extract all links from a webpage with optional regex filtering",
		Args: []Arg{
			{Name: "url", Type: ArgString, Description: "The URL to scrape", Required: true},
			{Name: "filter_pattern", Type: ArgString, Description: "Optional regex pattern to filter links"},
		},
	},
	{
		Op:          OpExtractMetadata,
		Name:        "extract_metadata",
		Description: "Extract metadata (title, description, Open Graph tags) from a webpage",
		Args: []Arg{
			{Name: "url", Type: ArgString, Description: "The URL to scrape", Required: true},
		},
	},
	{
		Op:          OpScrapeTable,
		Name:        "scrape_table",
		Description: "Extract table data from a webpage",
		Args: []Arg{
			{Name: "url", Type: ArgString, Description: "The URL to scrape", Required: true},
			{Name: "table_index", Type: ArgInteger, Description: "Index of the table to extract (0-based, default: 0)", Default: 0},
		},
	},
	{
		Op:          OpWebSearch,
		Name:        "web_search",
		Description: "Search the web for any query and get top results with titles, URLs, and snippets",
		Args: []Arg{
			{Name: "query", Type: ArgString, Description: "Search query (e.g., 'latest AI news', 'python tutorials', 'weather in Paris')", Required: true},
			{Name: "max_results", Type: ArgInteger, Description: "Maximum number of results to return (default: 10)", Default: 10},
		},
	},
	{
		Op:          OpNewsSearch,
		Name:        "news_search",
		Description: "Search specifically for news articles with dates, sources, and images",
		Args: []Arg{
			{Name: "query", Type: ArgString, Description: "News search query", Required: true},
			{Name: "max_results", Type: ArgInteger, Description: "Maximum number of news articles (default: 10)", Default: 10},
		},
	},
	{
		Op:          OpSearchAndScrape,
		Name:        "search_and_scrape",
		Description: "Search the web and automatically scrape full content from top results - perfect for research",
		Args: []Arg{
			{Name: "query", Type: ArgString, Description: "Search query", Required: true},
			{Name: "num_results", Type: ArgInteger, Description: "Number of results to scrape (default: 5)", Default: 5},
		},
	},
	{
		Op:          OpExtractArticle,
		Name:        "extract_article",
		Description: "Extract clean article content from news sites and blogs (removes ads, navigation, etc.)",
		Args: []Arg{
			{Name: "url", Type: ArgString, Description: "Article URL", Required: true},
		},
	},
	{
		Op:          OpSmartSearch,
		Name:        "smart_search",
		Description: "Intelligent search with different modes: quick (3 results), standard (5 results), or comprehensive (10 results with full scraping)",
		Args: []Arg{
			{Name: "query", Type: ArgString, Description: "Search query", Required: true},
			{Name: "mode", Type: ArgString, Description: "Search mode: 'quick' for fast results, 'standard' for balanced, 'comprehensive' for deep research", Default: "comprehensive", Enum: []string{"quick", "standard", "comprehensive"}},
		},
	},
}

var opByName = func() map[string]Op {
	m := make(map[string]Op, len(catalog))
	for _, d := range catalog {
		m[d.Name] = d.Op
	}
	return m
}()

// Catalog returns the tool definitions in their stable order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a tool name to its operation.
func Lookup(name string) (Op, bool) {
	op, ok := opByName[name]
	return op, ok
}

// Fetcher downloads one page.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// ArticleExtractor produces merged article content for a URL.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (article.Article, error)
}

// SearchScraper runs the search-then-scrape pipeline.
type SearchScraper interface {
	SearchAndScrape(ctx context.Context, query string, numResults int) ([]research.EnrichedResult, error)
}

// Deps carries the live components the handlers call into.
type Deps struct {
	Fetcher    Fetcher
	Provider   search.Provider
	Articles   ArticleExtractor
	Researcher SearchScraper
}

// Toolset binds the catalog to live dependencies.
type Toolset struct {
	deps Deps
}

func NewToolset(deps Deps) *Toolset {
	return &Toolset{deps: deps}
}

// Dispatch runs the named tool against raw arguments. The returned value
// always marshals to a {success: ...} envelope: unknown names, handler
// errors, and panics all become failure envelopes rather than transport
// errors.
func (t *Toolset) Dispatch(ctx context.Context, name string, args map[string]any) (out any) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("tool", name).Interface("panic", rec).Msg("tool handler panicked")
			out = Failure{Error: fmt.Sprint(rec)}
		}
	}()

	op, ok := Lookup(name)
	if !ok {
		return Failure{Error: "Unknown tool: " + name}
	}
	if args == nil {
		args = map[string]any{}
	}
	return t.run(ctx, op, args)
}

func (t *Toolset) run(ctx context.Context, op Op, args map[string]any) any {
	switch op {
	case OpScrapeHTML:
		return t.scrapeHTML(ctx, args)
	case OpExtractLinks:
		return t.extractLinks(ctx, args)
	case OpExtractMetadata:
		return t.extractMetadata(ctx, args)
	case OpScrapeTable:
		return t.scrapeTable(ctx, args)
	case OpWebSearch:
		return t.webSearch(ctx, args)
	case OpNewsSearch:
		return t.newsSearch(ctx, args)
	case OpSearchAndScrape:
		return t.searchAndScrape(ctx, args)
	case OpExtractArticle:
		return t.extractArticle(ctx, args)
	case OpSmartSearch:
		return t.smartSearch(ctx, args)
	default:
		return Failure{Error: fmt.Sprintf("Unknown tool: op %d", op)}
	}
}
