package tools

import "github.com/hyperifyio/webscrape/internal/scrape"

// Failure is the shared failure envelope: success stays false, the echoed
// request context (url or query) is present when known, and Error carries
// the fault text.
type Failure struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Query   string `json:"query,omitempty"`
	Error   string `json:"error"`
}

type scrapeHTMLResult struct {
	Success bool     `json:"success"`
	URL     string   `json:"url"`
	Content []string `json:"content"`
	HTML    []string `json:"html"`
	Count   int      `json:"count"`
}

type extractLinksResult struct {
	Success   bool          `json:"success"`
	SourceURL string        `json:"source_url"`
	Links     []scrape.Link `json:"links"`
	Count     int           `json:"count"`
}

type extractMetadataResult struct {
	Success  bool                `json:"success"`
	URL      string              `json:"url"`
	Metadata scrape.PageMetadata `json:"metadata"`
}

type scrapeTableResult struct {
	Success  bool       `json:"success"`
	URL      string     `json:"url"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"row_count"`
}

type webResultItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type webSearchResult struct {
	Success bool            `json:"success"`
	Query   string          `json:"query"`
	Results []webResultItem `json:"results"`
	Count   int             `json:"count"`
}

type newsResultItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Date    string `json:"date"`
	Image   string `json:"image"`
}

type newsSearchResult struct {
	Success bool             `json:"success"`
	Query   string           `json:"query"`
	Results []newsResultItem `json:"results"`
	Count   int              `json:"count"`
}

type enrichedItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Snippet       string `json:"snippet"`
	Content       string `json:"content"`
	ContentLength int    `json:"content_length"`
}

type searchAndScrapeResult struct {
	Success bool           `json:"success"`
	Query   string         `json:"query"`
	Results []enrichedItem `json:"results"`
	Count   int            `json:"count"`
}

type extractArticleResult struct {
	Success       bool     `json:"success"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	PublishDate   string   `json:"publish_date"`
	TopImage      string   `json:"top_image"`
	Content       string   `json:"content"`
	ContentLength int      `json:"content_length"`
}
