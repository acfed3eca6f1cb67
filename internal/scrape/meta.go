package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageMetadata collects the page title plus standard meta and Open Graph
// fields. Every key stays present in JSON output, empty when the page does
// not carry the tag.
type PageMetadata struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Keywords      string `json:"keywords"`
	Author        string `json:"author"`
	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGImage       string `json:"og_image"`
}

// Metadata extracts the title node's cleaned text, description/keywords/
// author from <meta name=...>, and og:title/og:description/og:image from
// <meta property=...>. Name and property matching is case-insensitive and a
// later duplicate overwrites an earlier one.
func Metadata(doc *goquery.Document) PageMetadata {
	var m PageMetadata
	if t := doc.Find("title").First(); t.Length() > 0 {
		m.Title = CleanText(t.Text())
	}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content := s.AttrOr("content", "")
		switch strings.ToLower(strings.TrimSpace(s.AttrOr("name", ""))) {
		case "description":
			m.Description = content
		case "keywords":
			m.Keywords = content
		case "author":
			m.Author = content
		}
		switch strings.ToLower(strings.TrimSpace(s.AttrOr("property", ""))) {
		case "og:title":
			m.OGTitle = content
		case "og:description":
			m.OGDescription = content
		case "og:image":
			m.OGImage = content
		}
	})
	return m
}
