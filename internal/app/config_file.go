package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags/env.
type FileConfig struct {
	Server struct {
		Transport string `yaml:"transport" json:"transport"`
		Listen    string `yaml:"listen" json:"listen"`
	} `yaml:"server" json:"server"`

	Search struct {
		Engine      string `yaml:"engine" json:"engine"`
		SearxURL    string `yaml:"searx_url" json:"searx_url"`
		SearxKey    string `yaml:"searx_key" json:"searx_key"`
		ResultsFile string `yaml:"results_file" json:"results_file"`
	} `yaml:"search" json:"search"`

	// Durations are strings ("10s", "500ms") parsed with time.ParseDuration
	// during the overlay; yaml.v3 has no native duration support.
	Fetch struct {
		UserAgent     string `yaml:"user_agent" json:"user_agent"`
		Timeout       string `yaml:"timeout" json:"timeout"`
		MaxBodyBytes  int64  `yaml:"max_body_bytes" json:"max_body_bytes"`
		MaxConcurrent int    `yaml:"max_concurrent" json:"max_concurrent"`
	} `yaml:"fetch" json:"fetch"`

	Scrape struct {
		Concurrency int    `yaml:"concurrency" json:"concurrency"`
		Delay       string `yaml:"delay" json:"delay"`
	} `yaml:"scrape" json:"scrape"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are still at their flag defaults. Flags should already have been
// parsed; this lets the file supply values while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if (cfg.Transport == "" || cfg.Transport == TransportStdio) && fc.Server.Transport != "" {
		cfg.Transport = fc.Server.Transport
	}
	if (cfg.Listen == "" || cfg.Listen == DefaultListen) && fc.Server.Listen != "" {
		cfg.Listen = fc.Server.Listen
	}

	if (cfg.Engine == "" || cfg.Engine == EngineDuckDuckGo) && fc.Search.Engine != "" {
		cfg.Engine = fc.Search.Engine
	}
	if cfg.SearxURL == "" && fc.Search.SearxURL != "" {
		cfg.SearxURL = fc.Search.SearxURL
	}
	if cfg.SearxKey == "" && fc.Search.SearxKey != "" {
		cfg.SearxKey = fc.Search.SearxKey
	}
	if cfg.FileSearchPath == "" && fc.Search.ResultsFile != "" {
		cfg.FileSearchPath = fc.Search.ResultsFile
	}

	if cfg.UserAgent == "" && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.FetchTimeout == 0 || cfg.FetchTimeout == DefaultFetchTimeout {
		if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	if (cfg.FetchMaxBody == 0 || cfg.FetchMaxBody == DefaultFetchMaxBody) && fc.Fetch.MaxBodyBytes > 0 {
		cfg.FetchMaxBody = fc.Fetch.MaxBodyBytes
	}
	if (cfg.FetchConcurrency == 0 || cfg.FetchConcurrency == DefaultFetchConcurrency) && fc.Fetch.MaxConcurrent > 0 {
		cfg.FetchConcurrency = fc.Fetch.MaxConcurrent
	}

	if (cfg.ScrapeConcurrency == 0 || cfg.ScrapeConcurrency == DefaultScrapeConcurrency) && fc.Scrape.Concurrency > 0 {
		cfg.ScrapeConcurrency = fc.Scrape.Concurrency
	}
	if cfg.ScrapeDelay == 0 || cfg.ScrapeDelay == DefaultScrapeDelay {
		if d, err := time.ParseDuration(fc.Scrape.Delay); err == nil && d > 0 {
			cfg.ScrapeDelay = d
		}
	}

	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig checks required settings for the selected transport and
// search engine.
func ValidateConfig(cfg Config) error {
	switch cfg.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("config: unknown transport %q (stdio or http)", cfg.Transport)
	}
	if cfg.Transport == TransportHTTP && trim(cfg.Listen) == "" {
		return errors.New("config: listen address is required for the http transport")
	}

	switch cfg.Engine {
	case EngineDuckDuckGo, "":
	case EngineSearxNG:
		if trim(cfg.SearxURL) == "" {
			return errors.New("config: searx.url is required for the searxng engine (or set SEARX_URL)")
		}
	case EngineFile:
		if trim(cfg.FileSearchPath) == "" {
			return errors.New("config: search.file is required for the file engine")
		}
	default:
		return fmt.Errorf("config: unknown search engine %q (duckduckgo, searxng, or file)", cfg.Engine)
	}

	if cfg.FetchTimeout < 0 || cfg.FetchMaxBody < 0 || cfg.FetchConcurrency < 0 ||
		cfg.ScrapeConcurrency < 0 || cfg.ScrapeDelay < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}

func trim(s string) string {
	i := 0
	j := len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\n' || s[j-1] == '\r') {
		j--
	}
	return s[i:j]
}
