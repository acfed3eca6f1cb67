package article

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
)

// TrafilaturaStrategy downloads the page and runs content-focused extraction
// over it. It never yields structured fields, and a download failure is an
// empty candidate rather than an error so the primary body still wins.
type TrafilaturaStrategy struct {
	Fetcher Fetcher
}

func (s *TrafilaturaStrategy) Name() string { return "trafilatura" }

func (s *TrafilaturaStrategy) Run(ctx context.Context, rawURL string) (Candidate, error) {
	markup, err := s.Fetcher.Get(ctx, rawURL)
	if err != nil {
		return Candidate{}, nil
	}
	text, err := ExtractContent(markup, rawURL)
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{Body: text}, nil
}

// TextExtractor exposes ExtractContent as an injectable dependency for
// callers that fetch markup themselves.
type TextExtractor struct{}

func (TextExtractor) Text(markup []byte, pageURL string) (string, error) {
	return ExtractContent(markup, pageURL)
}

// ExtractContent runs trafilatura over fetched markup and returns the
// readable body text. Tables are kept, comment sections dropped, and the
// library's own fallback heuristics stay enabled. Pages the library cannot
// extract anything from come back as an empty string, not an error; the
// library reports those as failures but callers here treat "no readable
// content" as a value.
func ExtractContent(markup []byte, pageURL string) (string, error) {
	opts := trafilatura.Options{
		ExcludeComments: true,
		EnableFallback:  true,
	}
	if u, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = u
	}
	res, err := trafilatura.Extract(bytes.NewReader(markup), opts)
	if err != nil || res == nil {
		return "", nil
	}
	return strings.TrimSpace(res.ContentText), nil
}
