package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// LoadEnvFiles reads KEY=VALUE pairs and populates os.Environ.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv("FOO", "")
	t.Setenv("BAR", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	content := "\n# sample dotenv file\nFOO=alpha\nBAR=beta\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := LoadEnvFiles(envPath); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}

	if got := os.Getenv("FOO"); got != "alpha" {
		t.Fatalf("FOO=%q, want alpha", got)
	}
	if got := os.Getenv("BAR"); got != "beta" {
		t.Fatalf("BAR=%q, want beta", got)
	}
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	t.Setenv("K", "")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env.a")
	b := filepath.Join(dir, ".env.b")
	if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil {
		t.Fatalf("write b: %v", err)
	}

	if err := LoadEnvFiles(a, b); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("K"); got != "second" {
		t.Fatalf("override order failed: got %q, want second", got)
	}
}

// ApplyEnvToConfig reads key settings from the environment, including the
// SEARXNG_URL fallback and duration parsing.
func TestApplyEnvToConfig_FromEnv(t *testing.T) {
	t.Setenv("SEARX_URL", "")
	t.Setenv("SEARXNG_URL", "http://searxng.example")
	t.Setenv("WEBSCRAPE_TRANSPORT", "http")
	t.Setenv("WEBSCRAPE_SEARCH_ENGINE", "searxng")
	t.Setenv("WEBSCRAPE_FETCH_TIMEOUT", "3s")
	t.Setenv("WEBSCRAPE_FETCH_MAX_BODY", "1024")

	var cfg Config
	ApplyEnvToConfig(&cfg)
	if cfg.SearxURL != "http://searxng.example" {
		t.Fatalf("SearxURL=%q, want fallback from SEARXNG_URL", cfg.SearxURL)
	}
	if cfg.Transport != "http" || cfg.Engine != "searxng" {
		t.Fatalf("transport=%q engine=%q", cfg.Transport, cfg.Engine)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Fatalf("FetchTimeout=%v, want 3s", cfg.FetchTimeout)
	}
	if cfg.FetchMaxBody != 1024 {
		t.Fatalf("FetchMaxBody=%d, want 1024", cfg.FetchMaxBody)
	}
}

// Explicit config values win over the environment in the fill-unset pass.
func TestApplyEnvToConfig_KeepsExplicitValues(t *testing.T) {
	t.Setenv("WEBSCRAPE_SEARCH_ENGINE", "file")

	cfg := Config{Engine: EngineDuckDuckGo}
	ApplyEnvToConfig(&cfg)
	if cfg.Engine != EngineDuckDuckGo {
		t.Fatalf("explicit engine overwritten: %q", cfg.Engine)
	}
}

// ApplyEnvOverrides forces env values over file-supplied ones.
func TestApplyEnvOverrides_EnvBeatsFileValues(t *testing.T) {
	t.Setenv("WEBSCRAPE_LISTEN", ":9000")
	t.Setenv("VERBOSE", "false")

	cfg := Config{Listen: ":8000", Verbose: true}
	ApplyEnvOverrides(&cfg)
	if cfg.Listen != ":9000" {
		t.Fatalf("Listen=%q, want :9000", cfg.Listen)
	}
	if cfg.Verbose {
		t.Fatalf("VERBOSE=false must clear the flag")
	}
}
