// Package fetch issues the single-shot page downloads every scraping tool
// builds on. One configured Client is shared process-wide: it holds no
// per-request state, so concurrent tool calls can use it freely.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html/charset"
)

// DefaultUserAgent is the browser-identifying header sent with every page
// request. Many sites serve stripped or blocked pages to obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultTimeout bounds a single page download.
const DefaultTimeout = 10 * time.Second

// Client wraps http.Client with a fixed identity header, a per-request
// timeout, and a concurrency gate. It never retries: a failed page is
// reported to the caller, which decides what that failure means for its own
// batch.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each request. Zero falls back to DefaultTimeout.
	Timeout time.Duration
	// MaxBodyBytes caps how much of a response body is read. Oversized
	// bodies are truncated rather than failed; HTML parsers tolerate a
	// cut-off document. Zero means unlimited.
	MaxBodyBytes int64
	// RedirectMaxHops caps redirect following to avoid loops. Zero means default (5).
	RedirectMaxHops int
	// MaxConcurrent limits concurrent in-flight requests per client instance.
	// Zero means unlimited.
	MaxConcurrent int

	gate     chan struct{} // built lazily when MaxConcurrent > 0
	gateOnce sync.Once
}

// StatusError reports a non-2xx response. The status code is preserved so
// callers can distinguish, say, a 404 from a 503, though none of them is
// retried here.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

// Get downloads rawURL once and returns the body decoded to UTF-8. Non-2xx
// responses surface as *StatusError; transport failures are returned as-is.
// There is exactly one attempt per call.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	c.acquire()
	defer c.release()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	reqCtx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()
	req = req.WithContext(reqCtx)

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var body io.Reader = resp.Body
	if c.MaxBodyBytes > 0 {
		body = io.LimitReader(body, c.MaxBodyBytes)
	}
	// Decode legacy charsets to UTF-8 using the Content-Type header and, when
	// that is silent, the document's own meta declaration.
	decoded, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}
	b, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return b, nil
}

// getHTTPClient shallow-copies the shared client so attaching the redirect
// policy does not leak into other users of the same http.Client.
func (c *Client) getHTTPClient() *http.Client {
	hc := &http.Client{}
	if c.HTTPClient != nil {
		*hc = *c.HTTPClient
	}
	hc.CheckRedirect = c.checkRedirect
	return hc
}

// checkRedirect enforces the hop limit and keeps redirect targets behind the
// same scheme gate as the initial URL.
func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	hops := c.RedirectMaxHops
	if hops <= 0 {
		hops = 5
	}
	if len(via) >= hops {
		return errors.New("too many redirects")
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return errors.New("redirect to unsupported scheme")
	}
	return nil
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	}
	return false
}

func (c *Client) acquire() {
	if c.MaxConcurrent <= 0 {
		return
	}
	c.gateOnce.Do(func() {
		c.gate = make(chan struct{}, c.MaxConcurrent)
	})
	c.gate <- struct{}{}
}

func (c *Client) release() {
	if c.MaxConcurrent <= 0 || c.gate == nil {
		return
	}
	select {
	case <-c.gate:
	default: // release without a matching acquire; never block here
	}
}
