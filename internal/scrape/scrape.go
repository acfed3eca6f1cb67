// Package scrape holds the structural extractors that operate on a parsed
// HTML document: generic content selection, link enumeration, metadata
// collection, and table extraction. All of them work on a goquery document
// produced from already fetched markup and none of them do network I/O.
package scrape

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Parse turns raw markup into a traversable document. goquery tolerates
// malformed HTML the same way browsers do, so this rarely fails.
func Parse(markup []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// Blocks returns the cleaned text of every node matching selector, in
// document order, together with each node's raw outer HTML. With an empty
// selector it removes script and style nodes and returns a single block
// holding the whole document's cleaned text plus the stripped document
// markup.
func Blocks(doc *goquery.Document, selector string) (texts []string, markup []string) {
	texts = []string{}
	markup = []string{}
	if selector == "" {
		doc.Find("script, style").Remove()
		texts = append(texts, CleanText(doc.Text()))
		if h, err := doc.Html(); err == nil {
			markup = append(markup, h)
		} else {
			markup = append(markup, "")
		}
		return texts, markup
	}
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, CleanText(s.Text()))
		if h, err := goquery.OuterHtml(s); err == nil {
			markup = append(markup, h)
		} else {
			markup = append(markup, "")
		}
	})
	return texts, markup
}
