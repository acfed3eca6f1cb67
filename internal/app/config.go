package app

import "time"

// Transport selects how the MCP server is exposed.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Search engine selection.
const (
	EngineDuckDuckGo = "duckduckgo"
	EngineSearxNG    = "searxng"
	EngineFile       = "file"
)

// Defaults shared between flag declarations and the config file overlay.
const (
	DefaultListen            = ":8000"
	DefaultFetchTimeout      = 10 * time.Second
	DefaultFetchMaxBody      = 5 << 20
	DefaultFetchConcurrency  = 8
	DefaultScrapeConcurrency = 4
	DefaultScrapeDelay       = 500 * time.Millisecond
)

// Config holds runtime configuration for the server.
type Config struct {
	// Transport is "stdio" or "http"; Listen applies to the http transport.
	Transport string
	Listen    string

	// Search
	Engine         string
	SearxURL       string
	SearxKey       string
	FileSearchPath string

	// Fetch
	UserAgent        string
	FetchTimeout     time.Duration
	FetchMaxBody     int64
	FetchConcurrency int

	// search_and_scrape batch behavior
	ScrapeConcurrency int
	ScrapeDelay       time.Duration

	Verbose bool
}
