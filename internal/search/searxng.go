package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SearxNG queries a SearxNG instance's /search endpoint with format=json.
// Web and news searches differ only in the categories parameter.
type SearxNG struct {
	BaseURL    string
	APIKey     string // optional
	HTTPClient *http.Client
	UserAgent  string // optional custom UA
}

func (s *SearxNG) Name() string { return "searxng" }

func (s *SearxNG) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	return s.query(ctx, query, limit, "general")
}

func (s *SearxNG) SearchNews(ctx context.Context, query string, limit int) ([]Result, error) {
	return s.query(ctx, query, limit, "news")
}

// searxHit mirrors one entry of the instance's JSON results array. The news
// category adds source, publishedDate and one of thumbnail/img_src.
type searxHit struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Content       string `json:"content"`
	Source        string `json:"source"`
	PublishedDate string `json:"publishedDate"`
	Thumbnail     string `json:"thumbnail"`
	ImgSrc        string `json:"img_src"`
}

func (s *SearxNG) query(ctx context.Context, query string, limit int, categories string) ([]Result, error) {
	if s.BaseURL == "" {
		return nil, fmt.Errorf("missing searxng base url")
	}
	if limit <= 0 {
		limit = 10
	}

	endpoint, err := s.endpoint(query, limit, categories)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	hc := s.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("searxng status: %d", resp.StatusCode)
	}

	var payload struct {
		Results []searxHit `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(payload.Results))
	for _, hit := range payload.Results {
		if hit.URL == "" || hit.Title == "" {
			continue
		}
		out = append(out, hit.toResult())
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// endpoint builds the /search URL, normalizing the instance base path so both
// "https://sx.example" and "https://sx.example/search" work.
func (s *SearxNG) endpoint(query string, limit int, categories string) (string, error) {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(u.Path, "/search") {
		u.Path = strings.TrimRight(u.Path, "/") + "/search"
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("language", "auto")
	q.Set("safesearch", "1")
	q.Set("categories", categories)
	q.Set("count", strconv.Itoa(limit))
	if s.APIKey != "" {
		q.Set("apikey", s.APIKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (h searxHit) toResult() Result {
	image := h.ImgSrc
	if image == "" {
		image = h.Thumbnail
	}
	return Result{
		Title:   strings.TrimSpace(h.Title),
		URL:     strings.TrimSpace(h.URL),
		Snippet: strings.TrimSpace(h.Content),
		Source:  strings.TrimSpace(h.Source),
		Date:    strings.TrimSpace(h.PublishedDate),
		Image:   strings.TrimSpace(image),
	}
}
