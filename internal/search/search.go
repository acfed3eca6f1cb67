package search

import (
	"context"
)

// Result represents a single search hit from any provider. Source, Date and
// Image are populated by news searches and stay empty for web searches.
type Result struct {
	Title   string
	URL     string
	Snippet string
	Source  string // publisher name, news only
	Date    string // publication time, news only
	Image   string // thumbnail URL, news only
}

// Provider runs web and news queries against a single search engine.
// Implementations return at most limit results in engine order.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
	SearchNews(ctx context.Context, query string, limit int) ([]Result, error)
	Name() string
}
