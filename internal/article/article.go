// Package article extracts readable article content from web pages. Two
// strategies run per URL: a readability pass that also yields structured
// fields (title, authors, publish date, lead image) and a content-focused
// trafilatura pass used when the readability body comes up empty. Their
// outcomes are merged by a pure function.
package article

import (
	"context"
	"fmt"
)

// Article is the merged extraction result for one page.
type Article struct {
	Title         string
	Authors       []string
	PublishDate   string
	TopImage      string
	Content       string
	ContentLength int
}

// Candidate is a single strategy's output before merging. Structured fields
// are only honored on the primary strategy's candidate.
type Candidate struct {
	Title       string
	Authors     []string
	PublishDate string
	TopImage    string
	Body        string
}

// Strategy produces a candidate for a URL. Run reports an error only for
// faults that prevent producing any candidate; an empty body is a valid
// candidate.
type Strategy interface {
	Name() string
	Run(ctx context.Context, url string) (Candidate, error)
}

// Extractor runs the primary strategy and the fallback strategy in order and
// merges their candidates. An error from either strategy fails the whole
// extraction; no partial structured fields are returned.
type Extractor struct {
	Primary  Strategy
	Fallback Strategy
}

// Fetcher is the download dependency both built-in strategies share.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// NewExtractor wires the readability and trafilatura strategies onto a
// shared fetcher.
func NewExtractor(f Fetcher) *Extractor {
	return &Extractor{
		Primary:  &ReadabilityStrategy{Fetcher: f},
		Fallback: &TrafilaturaStrategy{Fetcher: f},
	}
}

func (e *Extractor) Extract(ctx context.Context, url string) (Article, error) {
	primary, err := e.Primary.Run(ctx, url)
	if err != nil {
		return Article{}, fmt.Errorf("%s: %w", e.Primary.Name(), err)
	}
	fallback, err := e.Fallback.Run(ctx, url)
	if err != nil {
		return Article{}, fmt.Errorf("%s: %w", e.Fallback.Name(), err)
	}
	return merge(primary, fallback), nil
}

// merge keeps the primary body when present and falls back otherwise.
// Structured fields always come from the primary candidate.
func merge(primary, fallback Candidate) Article {
	body := primary.Body
	if body == "" {
		body = fallback.Body
	}
	authors := primary.Authors
	if authors == nil {
		authors = []string{}
	}
	return Article{
		Title:         primary.Title,
		Authors:       authors,
		PublishDate:   primary.PublishDate,
		TopImage:      primary.TopImage,
		Content:       body,
		ContentLength: len(body),
	}
}
