package scrape

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Link is one anchor from a page, with its visible text and resolved URL.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Links enumerates every anchor carrying an href, resolves it to an absolute
// URL against base, and keeps it only when pattern is empty or the absolute
// URL contains a match for it (search semantics, not a full-string anchor).
// Document order is preserved. An invalid pattern fails the whole call.
func Links(doc *goquery.Document, base *url.URL, pattern string) ([]Link, error) {
	var re *regexp.Regexp
	if pattern != "" {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern: %w", err)
		}
	}
	links := []Link{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref).String()
		if re != nil && !re.MatchString(abs) {
			return
		}
		links = append(links, Link{Text: CleanText(s.Text()), URL: abs})
	})
	return links, nil
}
