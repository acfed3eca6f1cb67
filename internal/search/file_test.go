package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestFileProvider_Search_FlatArray(t *testing.T) {
	path := writeFixture(t, `[
{"title":"Go docs","url":"https://go.dev/doc","snippet":"Documentation."},
{"title":"Rust book","url":"https://doc.rust-lang.org","snippet":"The book."}
]`)
	p := &FileProvider{Path: path}
	got, err := p.Search(context.Background(), "go", 10)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://go.dev/doc" {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestFileProvider_Search_KeyedFixture(t *testing.T) {
	path := writeFixture(t, `{
"web": [{"title":"Alpha","url":"https://a.example","snippet":"first"}],
"news": [{"title":"Beta headline","url":"https://b.example","snippet":"breaking","source":"Wire","date":"2024-01-02T00:00:00Z","image":"https://b.example/i.png"}]
}`)
	p := &FileProvider{Path: path}

	web, err := p.Search(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(web) != 1 || web[0].Title != "Alpha" {
		t.Fatalf("unexpected web results: %+v", web)
	}

	news, err := p.SearchNews(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("news search error: %v", err)
	}
	if len(news) != 1 {
		t.Fatalf("unexpected news results: %+v", news)
	}
	if news[0].Source != "Wire" || news[0].Date != "2024-01-02T00:00:00Z" || news[0].Image != "https://b.example/i.png" {
		t.Fatalf("news fields not mapped: %+v", news[0])
	}
}

func TestFileProvider_Search_Limit(t *testing.T) {
	path := writeFixture(t, `[
{"title":"One","url":"https://1.example","snippet":"s"},
{"title":"Two","url":"https://2.example","snippet":"s"},
{"title":"Three","url":"https://3.example","snippet":"s"}
]`)
	p := &FileProvider{Path: path}
	got, err := p.Search(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected limit applied, got %d", len(got))
	}
}

func TestFileProvider_EmptyPath(t *testing.T) {
	p := &FileProvider{}
	if _, err := p.Search(context.Background(), "q", 5); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
