package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidateConfig(t *testing.T) {
	base := Config{Transport: TransportStdio, Engine: EngineDuckDuckGo}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults ok", func(c *Config) {}, ""},
		{"http needs listen", func(c *Config) { c.Transport = TransportHTTP }, "listen address"},
		{"http with listen ok", func(c *Config) { c.Transport = TransportHTTP; c.Listen = ":8000" }, ""},
		{"unknown transport", func(c *Config) { c.Transport = "carrier-pigeon" }, "unknown transport"},
		{"searxng needs url", func(c *Config) { c.Engine = EngineSearxNG }, "searx.url"},
		{"searxng with url ok", func(c *Config) { c.Engine = EngineSearxNG; c.SearxURL = "http://sx.example" }, ""},
		{"file needs path", func(c *Config) { c.Engine = EngineFile }, "search.file"},
		{"unknown engine", func(c *Config) { c.Engine = "bing" }, "unknown search engine"},
		{"negative limit", func(c *Config) { c.ScrapeDelay = -time.Second }, "negative"},
	}
	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		err := ValidateConfig(cfg)
		if tc.wantErr == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: error %v, want substring %q", tc.name, err, tc.wantErr)
		}
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webscrape.yaml")
	content := `
server:
  transport: http
  listen: ":9001"
search:
  engine: searxng
  searx_url: http://sx.example
fetch:
  user_agent: test-agent
  timeout: 4s
  max_concurrent: 3
scrape:
  concurrency: 2
  delay: 250ms
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Server.Transport != "http" || fc.Server.Listen != ":9001" {
		t.Fatalf("server section: %+v", fc.Server)
	}
	if fc.Search.Engine != "searxng" || fc.Search.SearxURL != "http://sx.example" {
		t.Fatalf("search section: %+v", fc.Search)
	}
	if fc.Fetch.Timeout != "4s" || fc.Fetch.MaxConcurrent != 3 {
		t.Fatalf("fetch section: %+v", fc.Fetch)
	}
	if fc.Scrape.Delay != "250ms" {
		t.Fatalf("scrape section: %+v", fc.Scrape)
	}
	if !fc.Verbose {
		t.Fatalf("verbose not read")
	}

	// The overlay parses the duration strings.
	cfg := Config{FetchTimeout: DefaultFetchTimeout, ScrapeDelay: DefaultScrapeDelay}
	ApplyFileConfig(&cfg, fc)
	if cfg.FetchTimeout != 4*time.Second || cfg.ScrapeDelay != 250*time.Millisecond {
		t.Fatalf("duration overlay: timeout=%v delay=%v", cfg.FetchTimeout, cfg.ScrapeDelay)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webscrape.json")
	content := `{"search": {"engine": "file", "results_file": "fixtures.json"}}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Search.Engine != "file" || fc.Search.ResultsFile != "fixtures.json" {
		t.Fatalf("search section: %+v", fc.Search)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	var fc FileConfig
	fc.Server.Listen = ":7000"
	fc.Search.Engine = "searxng"
	fc.Fetch.Timeout = "2s"

	// Explicit non-default flag values must survive the overlay.
	cfg := Config{
		Transport:    TransportStdio,
		Listen:       ":4444",
		Engine:       EngineFile,
		FetchTimeout: 30 * time.Second,
	}
	ApplyFileConfig(&cfg, fc)
	if cfg.Listen != ":4444" {
		t.Fatalf("explicit listen overwritten: %q", cfg.Listen)
	}
	if cfg.Engine != EngineFile {
		t.Fatalf("explicit engine overwritten: %q", cfg.Engine)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Fatalf("explicit timeout overwritten: %v", cfg.FetchTimeout)
	}
}

func TestApplyFileConfig_FillsDefaults(t *testing.T) {
	var fc FileConfig
	fc.Server.Transport = "http"
	fc.Server.Listen = ":7000"
	fc.Search.Engine = "searxng"
	fc.Search.SearxURL = "http://sx.example"
	fc.Scrape.Concurrency = 2

	cfg := Config{
		Transport:         TransportStdio,
		Listen:            DefaultListen,
		Engine:            EngineDuckDuckGo,
		FetchTimeout:      DefaultFetchTimeout,
		ScrapeConcurrency: DefaultScrapeConcurrency,
	}
	ApplyFileConfig(&cfg, fc)
	if cfg.Transport != "http" || cfg.Listen != ":7000" {
		t.Fatalf("server overlay: %+v", cfg)
	}
	if cfg.Engine != "searxng" || cfg.SearxURL != "http://sx.example" {
		t.Fatalf("search overlay: %+v", cfg)
	}
	if cfg.ScrapeConcurrency != 2 {
		t.Fatalf("scrape overlay: %+v", cfg)
	}
}
