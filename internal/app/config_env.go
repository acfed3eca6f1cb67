package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Transport == "" {
		cfg.Transport = os.Getenv("WEBSCRAPE_TRANSPORT")
	}
	if cfg.Listen == "" {
		cfg.Listen = os.Getenv("WEBSCRAPE_LISTEN")
	}
	if cfg.Engine == "" {
		cfg.Engine = os.Getenv("WEBSCRAPE_SEARCH_ENGINE")
	}

	if cfg.SearxURL == "" {
		// Support both SEARX_URL and SEARXNG_URL; prefer SEARX_URL if set
		v := os.Getenv("SEARX_URL")
		if v == "" {
			v = os.Getenv("SEARXNG_URL")
		}
		cfg.SearxURL = v
	}
	if cfg.SearxKey == "" {
		v := os.Getenv("SEARX_KEY")
		if v == "" {
			v = os.Getenv("SEARXNG_KEY")
		}
		cfg.SearxKey = v
	}
	if cfg.FileSearchPath == "" {
		cfg.FileSearchPath = os.Getenv("WEBSCRAPE_SEARCH_FILE")
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("WEBSCRAPE_UA")
	}
	if cfg.FetchTimeout == 0 {
		if s := os.Getenv("WEBSCRAPE_FETCH_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.FetchTimeout = d
			}
		}
	}
	if cfg.FetchMaxBody == 0 {
		if s := os.Getenv("WEBSCRAPE_FETCH_MAX_BODY"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
				cfg.FetchMaxBody = n
			}
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			if s == "1" || s == "true" || s == "yes" || s == "on" {
				*dst = true
			}
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
}

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// when the corresponding env vars are set. This lets env take precedence over
// values coming from a config file while flags remain highest precedence.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("WEBSCRAPE_TRANSPORT"); v != "" {
		cfg.Transport = v
	}
	if v := os.Getenv("WEBSCRAPE_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("WEBSCRAPE_SEARCH_ENGINE"); v != "" {
		cfg.Engine = v
	}

	if v := os.Getenv("SEARX_URL"); v != "" {
		cfg.SearxURL = v
	}
	if v := os.Getenv("SEARXNG_URL"); v != "" {
		cfg.SearxURL = v
	}
	if v := os.Getenv("SEARX_KEY"); v != "" {
		cfg.SearxKey = v
	}
	if v := os.Getenv("SEARXNG_KEY"); v != "" {
		cfg.SearxKey = v
	}
	if v := os.Getenv("WEBSCRAPE_SEARCH_FILE"); v != "" {
		cfg.FileSearchPath = v
	}

	if v := os.Getenv("WEBSCRAPE_UA"); v != "" {
		cfg.UserAgent = v
	}
	if s := os.Getenv("WEBSCRAPE_FETCH_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.FetchTimeout = d
		}
	}
	if s := os.Getenv("WEBSCRAPE_FETCH_MAX_BODY"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			cfg.FetchMaxBody = n
		}
	}

	if s := strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))); s != "" {
		switch s {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		case "0", "false", "no", "off":
			cfg.Verbose = false
		}
	}
}
