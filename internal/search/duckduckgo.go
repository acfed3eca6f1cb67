package search

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DuckDuckGo implements Provider against DuckDuckGo's public endpoints: the
// HTML results page for web search and the news.js JSON endpoint for news.
// No API key is required.
type DuckDuckGo struct {
	HTTPClient *http.Client
	UserAgent  string // optional custom UA

	// Endpoint overrides for tests; zero values use the public endpoints.
	HTMLURL  string
	QueryURL string
	NewsURL  string
}

const (
	defaultHTMLURL  = "https://html.duckduckgo.com/html/"
	defaultQueryURL = "https://duckduckgo.com/"
	defaultNewsURL  = "https://duckduckgo.com/news.js"
)

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) client() *http.Client {
	if d.HTTPClient != nil {
		return d.HTTPClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (d *DuckDuckGo) do(ctx context.Context, method, rawURL string, form url.Values) (*http.Response, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	ua := d.UserAgent
	if ua == "" {
		ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	req.Header.Set("User-Agent", ua)
	resp, err := d.client().Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("duckduckgo status: %d", resp.StatusCode)
	}
	return resp, nil
}

// Search posts the query to the HTML results endpoint and parses the result
// blocks. Redirect-wrapped links (/l/?uddg=...) are decoded to their target.
func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	endpoint := d.HTMLURL
	if endpoint == "" {
		endpoint = defaultHTMLURL
	}
	form := url.Values{}
	form.Set("q", query)
	form.Set("b", "")
	resp, err := d.do(ctx, http.MethodPost, endpoint, form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	out := make([]Result, 0, limit)
	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.HasClass("result--ad") {
			return true
		}
		anchor := s.Find("a.result__a").First()
		href, _ := anchor.Attr("href")
		title := strings.TrimSpace(anchor.Text())
		target := decodeRedirect(href)
		if target == "" || title == "" {
			return true
		}
		snippet := strings.TrimSpace(s.Find(".result__snippet").First().Text())
		out = append(out, Result{Title: title, URL: target, Snippet: snippet})
		return len(out) < limit
	})
	return out, nil
}

// SearchNews obtains a vqd token from the query page and then calls the
// news.js JSON endpoint with it.
func (d *DuckDuckGo) SearchNews(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	vqd, err := d.vqd(ctx, query)
	if err != nil {
		return nil, err
	}

	endpoint := d.NewsURL
	if endpoint == "" {
		endpoint = defaultNewsURL
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("l", "wt-wt")
	q.Set("o", "json")
	q.Set("noamp", "1")
	q.Set("q", query)
	q.Set("vqd", vqd)
	q.Set("p", "-1")
	u.RawQuery = q.Encode()

	resp, err := d.do(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var nr newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}
	out := make([]Result, 0, len(nr.Results))
	for _, r := range nr.Results {
		if r.URL == "" || r.Title == "" {
			continue
		}
		date := ""
		if r.Date > 0 {
			date = time.Unix(r.Date, 0).UTC().Format(time.RFC3339)
		}
		out = append(out, Result{
			Title:   stripTags(r.Title),
			URL:     r.URL,
			Snippet: stripTags(r.Excerpt),
			Source:  r.Source,
			Date:    date,
			Image:   r.Image,
		})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// vqd fetches the regular query page and extracts the session token the JSON
// endpoints require.
func (d *DuckDuckGo) vqd(ctx context.Context, query string) (string, error) {
	endpoint := d.QueryURL
	if endpoint == "" {
		endpoint = defaultQueryURL
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	resp, err := d.do(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse query page: %w", err)
	}
	page, err := doc.Html()
	if err != nil {
		return "", err
	}
	m := vqdPattern.FindStringSubmatch(page)
	if m == nil {
		return "", fmt.Errorf("vqd token not found for query %q", query)
	}
	return m[1], nil
}

var (
	vqdPattern = regexp.MustCompile(`vqd=["']?([\d-]+)["']?`)
	tagPattern = regexp.MustCompile(`<[^>]*>`)
)

// decodeRedirect unwraps DuckDuckGo's /l/?uddg=... redirect links; direct
// links pass through, scheme-relative ones get https.
func decodeRedirect(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.Contains(u.Path, "/l/") {
		return href
	}
	target := u.Query().Get("uddg")
	if target == "" {
		return href
	}
	return target
}

// stripTags removes embedded markup and entities from title/excerpt strings
// returned by the news endpoint.
func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(s, "")))
}

type newsResponse struct {
	Results []struct {
		Date    int64  `json:"date"`
		Title   string `json:"title"`
		Excerpt string `json:"excerpt"`
		URL     string `json:"url"`
		Image   string `json:"image"`
		Source  string `json:"source"`
	} `json:"results"`
}
