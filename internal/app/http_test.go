package app

import (
	"net/http"
	"testing"
)

func TestNewScrapeHTTPClient_Pooling(t *testing.T) {
	c := newScrapeHTTPClient()
	if c.Timeout == 0 {
		t.Fatalf("expected non-zero backstop timeout")
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected a dedicated *http.Transport, got %T", c.Transport)
	}
	if tr == http.DefaultTransport {
		t.Fatalf("client must not share the default transport")
	}
	if tr.MaxIdleConnsPerHost < 16 {
		t.Fatalf("expected pooled per-host connections, got %d", tr.MaxIdleConnsPerHost)
	}
	if !tr.ForceAttemptHTTP2 {
		t.Fatalf("expected http2 enabled")
	}
}
