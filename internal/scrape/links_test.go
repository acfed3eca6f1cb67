package scrape

import (
	"net/url"
	"regexp"
	"testing"
)

func TestLinks_ResolvesRelativeURLs(t *testing.T) {
	doc := mustParse(t, `<html><body>
	  <a href="/docs/intro">Intro</a>
	  <a href="https://other.example.com/page">External</a>
	  <a href="section#frag">Fragment</a>
	  <span>no anchor</span>
	</body></html>`)
	base, _ := url.Parse("https://example.com/root/")

	links, err := Links(doc, base, "")
	if err != nil {
		t.Fatalf("links: %v", err)
	}
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d: %#v", len(links), links)
	}
	if links[0].URL != "https://example.com/docs/intro" || links[0].Text != "Intro" {
		t.Fatalf("unexpected first link: %#v", links[0])
	}
	if links[1].URL != "https://other.example.com/page" {
		t.Fatalf("absolute href should pass through, got %q", links[1].URL)
	}
	if links[2].URL != "https://example.com/root/section#frag" {
		t.Fatalf("relative href resolved wrong: %q", links[2].URL)
	}
}

func TestLinks_FilterPatternUsesSearchSemantics(t *testing.T) {
	doc := mustParse(t, `<html><body>
	  <a href="https://example.com/blog/a">A</a>
	  <a href="https://example.com/docs/b">B</a>
	  <a href="https://example.com/blog/c">C</a>
	</body></html>`)
	base, _ := url.Parse("https://example.com/")

	links, err := Links(doc, base, "/blog/")
	if err != nil {
		t.Fatalf("links: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 filtered links, got %d", len(links))
	}
	re := regexp.MustCompile("/blog/")
	for _, l := range links {
		if !re.MatchString(l.URL) {
			t.Fatalf("emitted link does not match the filter: %q", l.URL)
		}
	}
}

func TestLinks_InvalidPattern(t *testing.T) {
	doc := mustParse(t, `<html><body><a href="/x">x</a></body></html>`)
	base, _ := url.Parse("https://example.com/")
	if _, err := Links(doc, base, "(unclosed"); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestLinks_DocumentOrderPreserved(t *testing.T) {
	doc := mustParse(t, `<html><body>
	  <a href="/1">one</a><a href="/2">two</a><a href="/3">three</a>
	</body></html>`)
	base, _ := url.Parse("https://example.com/")

	links, err := Links(doc, base, "")
	if err != nil {
		t.Fatalf("links: %v", err)
	}
	want := []string{"https://example.com/1", "https://example.com/2", "https://example.com/3"}
	for i, w := range want {
		if links[i].URL != w {
			t.Fatalf("order not preserved at %d: got %q want %q", i, links[i].URL, w)
		}
	}
}
