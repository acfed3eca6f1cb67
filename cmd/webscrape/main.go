package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/webscrape/internal/app"
	"github.com/hyperifyio/webscrape/internal/fetch"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Dotenv files have to be loaded before flag declarations run, because
	// several flag defaults read the environment.
	if paths := envFlagValue(os.Args[1:]); len(paths) > 0 {
		if err := app.LoadEnvFiles(paths...); err != nil {
			log.Warn().Err(err).Msg("load env files")
		}
	}

	var (
		transport         string
		listen            string
		engine            string
		searxURL          string
		searxKey          string
		fileSearchPath    string
		userAgent         string
		fetchTimeout      time.Duration
		fetchMaxBody      int64
		fetchConcurrency  int
		scrapeConcurrency int
		scrapeDelay       time.Duration
		configPath        string
		envFiles          string
		verbose           bool
		showVersion       bool
	)

	flag.StringVar(&transport, "transport", envOr("WEBSCRAPE_TRANSPORT", app.TransportStdio), "MCP transport: stdio or http")
	flag.StringVar(&listen, "listen", envOr("WEBSCRAPE_LISTEN", app.DefaultListen), "Listen address for the http transport")
	flag.StringVar(&engine, "engine", envOr("WEBSCRAPE_SEARCH_ENGINE", app.EngineDuckDuckGo), "Search engine: duckduckgo, searxng or file")
	flag.StringVar(&searxURL, "searx.url", os.Getenv("SEARX_URL"), "SearxNG base URL (required for -engine searxng)")
	flag.StringVar(&searxKey, "searx.key", os.Getenv("SEARX_KEY"), "SearxNG API key (optional)")
	flag.StringVar(&fileSearchPath, "search.file", os.Getenv("WEBSCRAPE_SEARCH_FILE"), "Path to JSON results file (required for -engine file)")
	flag.StringVar(&userAgent, "ua", envOr("WEBSCRAPE_UA", fetch.DefaultUserAgent), "User-Agent header for page fetches")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", envOrDuration("WEBSCRAPE_FETCH_TIMEOUT", app.DefaultFetchTimeout), "Per-request timeout for page fetches")
	flag.Int64Var(&fetchMaxBody, "fetch.max-body", envOrInt64("WEBSCRAPE_FETCH_MAX_BODY", app.DefaultFetchMaxBody), "Maximum page body size in bytes")
	flag.IntVar(&fetchConcurrency, "fetch.concurrency", app.DefaultFetchConcurrency, "Maximum concurrent page fetches")
	flag.IntVar(&scrapeConcurrency, "scrape.concurrency", app.DefaultScrapeConcurrency, "Pages scraped concurrently per search_and_scrape batch")
	flag.DurationVar(&scrapeDelay, "scrape.delay", app.DefaultScrapeDelay, "Pause between search_and_scrape batches")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.StringVar(&envFiles, "env", "", "Comma-separated dotenv files loaded before other configuration")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("webscrape %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	cfg := app.Config{
		Transport:         transport,
		Listen:            listen,
		Engine:            engine,
		SearxURL:          searxURL,
		SearxKey:          searxKey,
		FileSearchPath:    fileSearchPath,
		UserAgent:         userAgent,
		FetchTimeout:      fetchTimeout,
		FetchMaxBody:      fetchMaxBody,
		FetchConcurrency:  fetchConcurrency,
		ScrapeConcurrency: scrapeConcurrency,
		ScrapeDelay:       scrapeDelay,
		Verbose:           verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
		// Env still beats values that came from the file.
		app.ApplyEnvOverrides(&cfg)
	} else {
		app.ApplyEnvToConfig(&cfg)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}

// envFlagValue extracts the value of the -env flag from raw arguments ahead
// of flag.Parse, so dotenv values can seed the other flag defaults.
func envFlagValue(args []string) []string {
	var raw string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-env" || a == "--env":
			if i+1 < len(args) {
				raw = args[i+1]
			}
		case strings.HasPrefix(a, "-env="):
			raw = strings.TrimPrefix(a, "-env=")
		case strings.HasPrefix(a, "--env="):
			raw = strings.TrimPrefix(a, "--env=")
		}
	}
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envOrDuration(key string, fallback time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return fallback
}

func envOrInt64(key string, fallback int64) int64 {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
