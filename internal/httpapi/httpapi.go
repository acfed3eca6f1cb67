// Package httpapi is the REST surface served beside the MCP transport: a
// service-info root, a health probe, the tool catalog (optionally encoded as
// OpenAI function tools), and a direct call-tool endpoint. The streamable
// MCP handler mounts under /mcp on the same engine so one listener serves
// both protocols.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/webscrape/internal/tools"
)

const serviceName = "webscrape"

// API carries what the handlers need: the live toolset, the reported
// version, and the MCP transport to mount.
type API struct {
	toolset *tools.Toolset
	version string
	mcp     http.Handler
}

// New builds the API. mcpHandler may be nil when only the REST surface is
// wanted (tests, one-shot tooling).
func New(ts *tools.Toolset, version string, mcpHandler http.Handler) *API {
	return &API{toolset: ts, version: version, mcp: mcpHandler}
}

// Router assembles the gin engine with recovery, request logging, allow-all
// CORS, the REST routes, and the /mcp mount.
func (a *API) Router() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), cors.New(corsConfig()))

	engine.GET("/", a.root)
	engine.GET("/health", a.health)
	engine.GET("/tools", a.listTools)
	engine.POST("/call-tool", a.callTool)

	if a.mcp != nil {
		engine.Any("/mcp", gin.WrapH(a.mcp))
	}
	return engine
}

// corsConfig allows any origin, mirroring the usual posture of a local tool
// server. Credentials stay disabled, which the allow-all origin requires.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS", "HEAD"}
	cfg.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept", "Authorization",
		"Mcp-Session-Id", "Mcp-Protocol-Version",
	}
	cfg.ExposeHeaders = []string{"Mcp-Session-Id"}
	return cfg
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	}
}

func (a *API) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   serviceName,
		"version":   a.version,
		"transport": "streamable-http",
		"endpoints": gin.H{
			"health":    "/health",
			"tools":     "/tools",
			"call_tool": "/call-tool",
			"mcp":       "/mcp",
		},
	})
}

func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": a.version,
	})
}

type toolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// listTools returns the tool catalog. With ?format=openai the catalog is
// encoded as OpenAI function tools instead.
func (a *API) listTools(c *gin.Context) {
	defs := tools.Catalog()
	if c.Query("format") == "openai" {
		c.JSON(http.StatusOK, gin.H{"tools": tools.EncodeOpenAI(defs)})
		return
	}
	infos := make([]toolInfo, 0, len(defs))
	for _, d := range defs {
		infos = append(infos, toolInfo{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"tools": infos})
}

type callToolRequest struct {
	Tool      string         `json:"tool"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// callTool invokes a tool directly over REST. Tool-level faults, unknown
// names included, come back as ordinary envelopes with HTTP 200; only a
// malformed request body earns a 400.
func (a *API) callTool(c *gin.Context) {
	var req callToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, tools.Failure{Error: "invalid request body: " + err.Error()})
		return
	}
	name := req.Tool
	if name == "" {
		name = req.Name
	}
	c.JSON(http.StatusOK, a.toolset.Dispatch(c.Request.Context(), name, req.Arguments))
}
