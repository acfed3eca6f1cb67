// Package research runs the search-then-scrape pipeline: one provider query
// fanned out into bounded-concurrency page scrapes whose outcomes land in
// order-preserving slots. A failed page never fails the batch; a failed
// search fails the whole call before any page is touched.
package research

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hyperifyio/webscrape/internal/search"
)

// MaxResults caps how many search hits one call will scrape.
const MaxResults = 10

// DefaultResults is used when the caller does not ask for a count.
const DefaultResults = 5

// EnrichedResult is a search hit plus the scraped page content. Content is
// never empty: failed pages carry a placeholder string and a zero length.
type EnrichedResult struct {
	search.Result
	Content       string
	ContentLength int
}

// OutcomeKind enumerates how scraping a single page ended.
type OutcomeKind int

const (
	OutcomeText OutcomeKind = iota
	OutcomeDownloadFailed
	OutcomeEmpty
	OutcomeError
)

// Outcome classifies one page scrape. Text carries the body for
// OutcomeText; Message carries the fault for OutcomeError.
type Outcome struct {
	Kind    OutcomeKind
	Text    string
	Message string
}

// Content maps the outcome onto the content string and length callers embed
// in enriched results.
func (o Outcome) Content() (string, int) {
	switch o.Kind {
	case OutcomeText:
		return o.Text, len(o.Text)
	case OutcomeDownloadFailed:
		return "Failed to download page", 0
	case OutcomeEmpty:
		return "Content extraction failed", 0
	default:
		return "Error: " + o.Message, 0
	}
}

// Fetcher downloads one page.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Extractor turns fetched markup into readable text.
type Extractor interface {
	Text(markup []byte, pageURL string) (string, error)
}

// Researcher wires a search provider to the page scraping fan-out.
type Researcher struct {
	Provider  search.Provider
	Fetcher   Fetcher
	Extractor Extractor

	// Concurrency bounds simultaneous page scrapes. Zero means 4.
	Concurrency int
	// Delay paces scrape starts across the batch. Zero means 500ms.
	Delay time.Duration
}

// SearchAndScrape queries the provider and scrapes every hit concurrently.
// The returned slice preserves the provider's order exactly; per-page faults
// become placeholder entries. A provider error returns verbatim with zero
// pages fetched.
func (r *Researcher) SearchAndScrape(ctx context.Context, query string, numResults int) ([]EnrichedResult, error) {
	if numResults <= 0 {
		numResults = DefaultResults
	}
	if numResults > MaxResults {
		numResults = MaxResults
	}

	results, err := r.Provider.Search(ctx, query, numResults)
	if err != nil {
		return nil, err
	}
	if len(results) > numResults {
		results = results[:numResults]
	}
	log.Debug().Str("query", query).Int("results", len(results)).Msg("scraping search results")

	enriched := make([]EnrichedResult, len(results))
	limiter := rate.NewLimiter(rate.Every(r.delay()), 1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency())
	for i, res := range results {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			out := r.scrapePage(gctx, res.URL)
			content, length := out.Content()
			enriched[i] = EnrichedResult{Result: res, Content: content, ContentLength: length}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// scrapePage downloads and extracts one page, classifying every fault into
// an outcome. A panic in the extraction stack is contained here so one page
// cannot take down the batch.
func (r *Researcher) scrapePage(ctx context.Context, url string) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("url", url).Interface("panic", rec).Msg("page scrape panicked")
			out = Outcome{Kind: OutcomeError, Message: fmt.Sprint(rec)}
		}
	}()

	markup, err := r.Fetcher.Get(ctx, url)
	if err != nil {
		log.Debug().Str("url", url).Err(err).Msg("page download failed")
		return Outcome{Kind: OutcomeDownloadFailed}
	}
	text, err := r.Extractor.Text(markup, url)
	if err != nil {
		log.Debug().Str("url", url).Err(err).Msg("content extraction error")
		return Outcome{Kind: OutcomeError, Message: err.Error()}
	}
	if text == "" {
		return Outcome{Kind: OutcomeEmpty}
	}
	return Outcome{Kind: OutcomeText, Text: text}
}

func (r *Researcher) concurrency() int {
	if r.Concurrency > 0 {
		return r.Concurrency
	}
	return 4
}

func (r *Researcher) delay() time.Duration {
	if r.Delay > 0 {
		return r.Delay
	}
	return 500 * time.Millisecond
}
