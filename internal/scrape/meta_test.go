package scrape

import (
	"testing"
)

func TestMetadata_CollectsStandardTags(t *testing.T) {
	html := `<html><head>
<title>Page Title</title>
<meta name="description" content="A description.">
<meta name="keywords" content="a,b,c">
<meta name="author" content="Jane Doe">
<meta property="og:title" content="OG Title">
<meta property="og:description" content="OG description">
<meta property="og:image" content="https://example.com/img.png">
</head><body></body></html>`
	doc, err := Parse([]byte(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := Metadata(doc)
	if m.Title != "Page Title" {
		t.Fatalf("title: got %q", m.Title)
	}
	if m.Description != "A description." {
		t.Fatalf("description: got %q", m.Description)
	}
	if m.Keywords != "a,b,c" {
		t.Fatalf("keywords: got %q", m.Keywords)
	}
	if m.Author != "Jane Doe" {
		t.Fatalf("author: got %q", m.Author)
	}
	if m.OGTitle != "OG Title" {
		t.Fatalf("og:title: got %q", m.OGTitle)
	}
	if m.OGDescription != "OG description" {
		t.Fatalf("og:description: got %q", m.OGDescription)
	}
	if m.OGImage != "https://example.com/img.png" {
		t.Fatalf("og:image: got %q", m.OGImage)
	}
}

func TestMetadata_LastTagWins(t *testing.T) {
	html := `<html><head>
<meta property="og:title" content="A">
<meta property="og:title" content="B">
</head><body></body></html>`
	doc, err := Parse([]byte(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := Metadata(doc)
	if m.OGTitle != "B" {
		t.Fatalf("expected later tag to win, got %q", m.OGTitle)
	}
}

func TestMetadata_CaseInsensitiveAttributes(t *testing.T) {
	html := `<html><head>
<meta name="Description" content="Mixed case">
<meta property="OG:Image" content="https://example.com/x.png">
</head><body></body></html>`
	doc, err := Parse([]byte(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := Metadata(doc)
	if m.Description != "Mixed case" {
		t.Fatalf("description: got %q", m.Description)
	}
	if m.OGImage != "https://example.com/x.png" {
		t.Fatalf("og:image: got %q", m.OGImage)
	}
}

func TestMetadata_MissingFieldsStayEmpty(t *testing.T) {
	doc, err := Parse([]byte(`<html><head></head><body><p>no meta</p></body></html>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := Metadata(doc)
	if m.Title != "" || m.Description != "" || m.OGTitle != "" {
		t.Fatalf("expected empty metadata, got %+v", m)
	}
}
