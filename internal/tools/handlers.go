package tools

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/webscrape/internal/scrape"
)

// maxSearchResults caps max_results for the plain search tools.
const maxSearchResults = 20

func stringArg(args map[string]any, name, def string) string {
	if v, ok := args[name]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

// intArg tolerates the numeric shapes JSON decoding produces.
func intArg(args map[string]any, name string, def int) int {
	v, ok := args[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return def
}

func clampResults(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > maxSearchResults {
		return maxSearchResults
	}
	return limit
}

// fetchDocument downloads a page and parses it; both faults come back as a
// ready failure envelope.
func (t *Toolset) fetchDocument(ctx context.Context, rawURL string) (*goquery.Document, any) {
	markup, err := t.deps.Fetcher.Get(ctx, rawURL)
	if err != nil {
		return nil, Failure{URL: rawURL, Error: err.Error()}
	}
	doc, err := scrape.Parse(markup)
	if err != nil {
		return nil, Failure{URL: rawURL, Error: err.Error()}
	}
	return doc, nil
}

func (t *Toolset) scrapeHTML(ctx context.Context, args map[string]any) any {
	rawURL := stringArg(args, "url", "")
	if rawURL == "" {
		return Failure{Error: "url is required"}
	}
	selector := stringArg(args, "selector", "")
	format := stringArg(args, "format", "text")

	doc, fail := t.fetchDocument(ctx, rawURL)
	if fail != nil {
		return fail
	}
	texts, markup := scrape.Blocks(doc, selector)
	if format == "markdown" {
		for i := range markup {
			if md, err := htmltomarkdown.ConvertString(markup[i]); err == nil {
				texts[i] = strings.TrimSpace(md)
			}
		}
	}
	return scrapeHTMLResult{Success: true, URL: rawURL, Content: texts, HTML: markup, Count: len(texts)}
}

func (t *Toolset) extractLinks(ctx context.Context, args map[string]any) any {
	rawURL := stringArg(args, "url", "")
	if rawURL == "" {
		return Failure{Error: "url is required"}
	}
	pattern := stringArg(args, "filter_pattern", "")

	base, err := url.Parse(rawURL)
	if err != nil {
		return Failure{URL: rawURL, Error: err.Error()}
	}
	doc, fail := t.fetchDocument(ctx, rawURL)
	if fail != nil {
		return fail
	}
	links, err := scrape.Links(doc, base, pattern)
	if err != nil {
		return Failure{URL: rawURL, Error: err.Error()}
	}
	return extractLinksResult{Success: true, SourceURL: rawURL, Links: links, Count: len(links)}
}

func (t *Toolset) extractMetadata(ctx context.Context, args map[string]any) any {
	rawURL := stringArg(args, "url", "")
	if rawURL == "" {
		return Failure{Error: "url is required"}
	}
	doc, fail := t.fetchDocument(ctx, rawURL)
	if fail != nil {
		return fail
	}
	return extractMetadataResult{Success: true, URL: rawURL, Metadata: scrape.Metadata(doc)}
}

func (t *Toolset) scrapeTable(ctx context.Context, args map[string]any) any {
	rawURL := stringArg(args, "url", "")
	if rawURL == "" {
		return Failure{Error: "url is required"}
	}
	index := intArg(args, "table_index", 0)

	doc, fail := t.fetchDocument(ctx, rawURL)
	if fail != nil {
		return fail
	}
	td, err := scrape.Table(doc, index)
	if err != nil {
		return Failure{URL: rawURL, Error: err.Error()}
	}
	return scrapeTableResult{Success: true, URL: rawURL, Headers: td.Headers, Rows: td.Rows, RowCount: td.RowCount}
}

func (t *Toolset) webSearch(ctx context.Context, args map[string]any) any {
	query := stringArg(args, "query", "")
	if query == "" {
		return Failure{Error: "query is required"}
	}
	return t.runWebSearch(ctx, query, intArg(args, "max_results", 10))
}

func (t *Toolset) runWebSearch(ctx context.Context, query string, limit int) any {
	results, err := t.deps.Provider.Search(ctx, query, clampResults(limit))
	if err != nil {
		return Failure{Query: query, Error: err.Error()}
	}
	items := make([]webResultItem, 0, len(results))
	for _, r := range results {
		items = append(items, webResultItem{Title: r.Title, URL: r.URL, Snippet: r.Snippet})
	}
	return webSearchResult{Success: true, Query: query, Results: items, Count: len(items)}
}

func (t *Toolset) newsSearch(ctx context.Context, args map[string]any) any {
	query := stringArg(args, "query", "")
	if query == "" {
		return Failure{Error: "query is required"}
	}
	results, err := t.deps.Provider.SearchNews(ctx, query, clampResults(intArg(args, "max_results", 10)))
	if err != nil {
		return Failure{Query: query, Error: err.Error()}
	}
	items := make([]newsResultItem, 0, len(results))
	for _, r := range results {
		items = append(items, newsResultItem{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Snippet,
			Source:  r.Source,
			Date:    r.Date,
			Image:   r.Image,
		})
	}
	return newsSearchResult{Success: true, Query: query, Results: items, Count: len(items)}
}

func (t *Toolset) searchAndScrape(ctx context.Context, args map[string]any) any {
	query := stringArg(args, "query", "")
	if query == "" {
		return Failure{Error: "query is required"}
	}
	return t.runSearchAndScrape(ctx, query, intArg(args, "num_results", 5))
}

func (t *Toolset) runSearchAndScrape(ctx context.Context, query string, numResults int) any {
	enriched, err := t.deps.Researcher.SearchAndScrape(ctx, query, numResults)
	if err != nil {
		return Failure{Query: query, Error: err.Error()}
	}
	items := make([]enrichedItem, 0, len(enriched))
	for _, r := range enriched {
		items = append(items, enrichedItem{
			Title:         r.Title,
			URL:           r.URL,
			Snippet:       r.Snippet,
			Content:       r.Content,
			ContentLength: r.ContentLength,
		})
	}
	return searchAndScrapeResult{Success: true, Query: query, Results: items, Count: len(items)}
}

func (t *Toolset) extractArticle(ctx context.Context, args map[string]any) any {
	rawURL := stringArg(args, "url", "")
	if rawURL == "" {
		return Failure{Error: "url is required"}
	}
	art, err := t.deps.Articles.Extract(ctx, rawURL)
	if err != nil {
		return Failure{URL: rawURL, Error: err.Error()}
	}
	authors := art.Authors
	if authors == nil {
		authors = []string{}
	}
	return extractArticleResult{
		Success:       true,
		URL:           rawURL,
		Title:         art.Title,
		Authors:       authors,
		PublishDate:   art.PublishDate,
		TopImage:      art.TopImage,
		Content:       art.Content,
		ContentLength: art.ContentLength,
	}
}

// smartSearch routes between the plain and scraping searches. Unrecognized
// modes get the comprehensive path.
func (t *Toolset) smartSearch(ctx context.Context, args map[string]any) any {
	query := stringArg(args, "query", "")
	if query == "" {
		return Failure{Error: "query is required"}
	}
	switch stringArg(args, "mode", "comprehensive") {
	case "quick":
		return t.runWebSearch(ctx, query, 3)
	case "standard":
		return t.runWebSearch(ctx, query, 5)
	default:
		return t.runSearchAndScrape(ctx, query, 10)
	}
}
