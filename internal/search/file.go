package search

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// FileProvider loads search results from a local JSON file for offline and
// test use. The file holds either a flat array of web results or an object
// with separate "web" and "news" arrays:
//
//	{"web": [{"title","url","snippet"}], "news": [{..., "source","date","image"}]}
type FileProvider struct {
	Path string
}

func (f *FileProvider) Name() string { return "file" }

func (f *FileProvider) Search(_ context.Context, query string, limit int) ([]Result, error) {
	fx, err := f.load()
	if err != nil {
		return nil, err
	}
	return filterResults(fx.Web, query, limit), nil
}

func (f *FileProvider) SearchNews(_ context.Context, query string, limit int) ([]Result, error) {
	fx, err := f.load()
	if err != nil {
		return nil, err
	}
	return filterResults(fx.News, query, limit), nil
}

type fileResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Date    string `json:"date"`
	Image   string `json:"image"`
}

type fileFixture struct {
	Web  []fileResult `json:"web"`
	News []fileResult `json:"news"`
}

func (f *FileProvider) load() (fileFixture, error) {
	if strings.TrimSpace(f.Path) == "" {
		return fileFixture{}, errors.New("file provider path is empty")
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return fileFixture{}, err
	}
	var fx fileFixture
	if err := json.Unmarshal(b, &fx); err == nil {
		return fx, nil
	}
	// Plain array means web results only.
	var flat []fileResult
	if err := json.Unmarshal(b, &flat); err != nil {
		return fileFixture{}, err
	}
	return fileFixture{Web: flat}, nil
}

func filterResults(raw []fileResult, query string, limit int) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Result, 0, len(raw))
	for _, r := range raw {
		if r.URL == "" || r.Title == "" {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Title), q) && !strings.Contains(strings.ToLower(r.Snippet), q) {
			continue
		}
		out = append(out, Result{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Snippet,
			Source:  r.Source,
			Date:    r.Date,
			Image:   r.Image,
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
