package article

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ReadabilityStrategy downloads the page and runs readability over it. It is
// the only strategy that yields structured fields.
type ReadabilityStrategy struct {
	Fetcher Fetcher
}

func (s *ReadabilityStrategy) Name() string { return "readability" }

func (s *ReadabilityStrategy) Run(ctx context.Context, rawURL string) (Candidate, error) {
	markup, err := s.Fetcher.Get(ctx, rawURL)
	if err != nil {
		return Candidate{}, fmt.Errorf("download: %w", err)
	}
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return Candidate{}, fmt.Errorf("parse url: %w", err)
	}
	art, err := readability.FromReader(bytes.NewReader(markup), pageURL)
	if err != nil {
		return Candidate{}, fmt.Errorf("readability: %w", err)
	}

	c := Candidate{
		Title:    strings.TrimSpace(art.Title),
		Authors:  splitByline(art.Byline),
		TopImage: art.Image,
		Body:     strings.TrimSpace(art.TextContent),
	}
	if art.PublishedTime != nil {
		c.PublishDate = art.PublishedTime.Format(time.RFC3339)
	}
	return c, nil
}

// splitByline turns a byline like "By Jane Doe and John Smith" into the
// individual author names.
func splitByline(byline string) []string {
	s := strings.TrimSpace(byline)
	if s == "" {
		return []string{}
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "by ") {
		s = s[3:]
	}
	s = strings.ReplaceAll(s, " and ", ",")
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
