// Package app wires configuration into a runnable server: it builds the
// shared fetch client, the selected search provider, the article extractor,
// and the research orchestrator, binds them into the toolset, and serves the
// result over the configured transport.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/webscrape/internal/article"
	"github.com/hyperifyio/webscrape/internal/fetch"
	"github.com/hyperifyio/webscrape/internal/httpapi"
	"github.com/hyperifyio/webscrape/internal/mcpserver"
	"github.com/hyperifyio/webscrape/internal/research"
	"github.com/hyperifyio/webscrape/internal/search"
	"github.com/hyperifyio/webscrape/internal/tools"
)

// App holds the assembled components for one server process.
type App struct {
	cfg     Config
	toolset *tools.Toolset
	mcp     *mcpserver.Server
}

// New assembles the component graph from cfg. The single fetch client and
// HTTP transport are shared read-only by every tool invocation.
func New(cfg Config) (*App, error) {
	httpClient := newScrapeHTTPClient()

	fetcher := &fetch.Client{
		HTTPClient:    httpClient,
		UserAgent:     cfg.UserAgent,
		Timeout:       cfg.FetchTimeout,
		MaxBodyBytes:  cfg.FetchMaxBody,
		MaxConcurrent: cfg.FetchConcurrency,
	}

	provider, err := newProvider(cfg, httpClient)
	if err != nil {
		return nil, err
	}

	researcher := &research.Researcher{
		Provider:    provider,
		Fetcher:     fetcher,
		Extractor:   article.TextExtractor{},
		Concurrency: cfg.ScrapeConcurrency,
		Delay:       cfg.ScrapeDelay,
	}

	toolset := tools.NewToolset(tools.Deps{
		Fetcher:    fetcher,
		Provider:   provider,
		Articles:   article.NewExtractor(fetcher),
		Researcher: researcher,
	})

	a := &App{
		cfg:     cfg,
		toolset: toolset,
		mcp:     mcpserver.New(toolset, BuildVersion),
	}
	log.Debug().
		Str("engine", provider.Name()).
		Str("transport", cfg.Transport).
		Msg("components assembled")
	return a, nil
}

// newProvider selects the search backend. ValidateConfig has already checked
// the engine-specific requirements.
func newProvider(cfg Config, httpClient *http.Client) (search.Provider, error) {
	switch cfg.Engine {
	case EngineSearxNG:
		return &search.SearxNG{
			BaseURL:    cfg.SearxURL,
			APIKey:     cfg.SearxKey,
			HTTPClient: httpClient,
			UserAgent:  cfg.UserAgent,
		}, nil
	case EngineFile:
		return &search.FileProvider{Path: cfg.FileSearchPath}, nil
	case EngineDuckDuckGo, "":
		return &search.DuckDuckGo{HTTPClient: httpClient, UserAgent: cfg.UserAgent}, nil
	default:
		return nil, fmt.Errorf("unknown search engine %q", cfg.Engine)
	}
}

func (a *App) Close() {
	// nothing to release yet
}

// Toolset exposes the bound tool catalog for callers that dispatch directly,
// such as the one-shot CLI.
func (a *App) Toolset() *tools.Toolset {
	return a.toolset
}

// Run serves until ctx is canceled. The stdio transport also ends when
// stdin closes.
func (a *App) Run(ctx context.Context) error {
	switch a.cfg.Transport {
	case TransportHTTP:
		return a.serveHTTP(ctx)
	default:
		log.Info().Msg("serving mcp over stdio")
		return a.mcp.ServeStdio(ctx)
	}
}

func (a *App) serveHTTP(ctx context.Context) error {
	if !a.cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.New(a.toolset, BuildVersion, a.mcp.HTTPHandler()).Router()
	srv := &http.Server{
		Addr:              a.cfg.Listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info().Str("listen", a.cfg.Listen).Msg("serving http")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		<-errCh
		log.Info().Msg("http server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
