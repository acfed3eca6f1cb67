package app

import (
	"net"
	"net/http"
	"time"
)

// newScrapeHTTPClient returns the HTTP client shared by the page fetcher and
// the search providers. Connection pooling is sized for parallel scraping
// across many hosts; the client-level timeout is a backstop only, per-request
// deadlines come from the fetcher.
func newScrapeHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          0, // no global cap
			MaxIdleConnsPerHost:   64,
			MaxConnsPerHost:       0,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: time.Second,
		},
	}
}
