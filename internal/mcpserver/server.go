// Package mcpserver exposes the tool catalog over the Model Context
// Protocol. It registers every catalog entry on a mark3labs/mcp-go server
// and serves it over stdio or as a streamable HTTP handler; tool outcomes
// travel as indented JSON text content, failures included, so transport
// errors stay reserved for protocol-level faults.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hyperifyio/webscrape/internal/tools"
)

// ServerName identifies this server in the MCP initialize handshake.
const ServerName = "webscrape"

const instructions = "Web scraping and search tools: fetch pages and extract " +
	"content, links, metadata, tables, and readable articles, or run web and " +
	"news searches. search_and_scrape and smart_search combine searching with " +
	"full-page scraping. Every result is a JSON object with a success flag."

// Server wraps the MCP server with the live toolset behind it.
type Server struct {
	mcp     *server.MCPServer
	toolset *tools.Toolset
}

// New builds the MCP server and registers the full tool catalog on it.
func New(ts *tools.Toolset, version string) *Server {
	s := &Server{toolset: ts}
	s.mcp = server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
		server.WithRecovery(),
		server.WithHooks(newHooks()),
	)
	for _, def := range tools.Catalog() {
		s.mcp.AddTool(buildTool(def), s.toolHandler(def.Name))
	}
	return s
}

// ServeStdio answers MCP requests on stdin/stdout until ctx is canceled or
// stdin closes.
func (s *Server) ServeStdio(ctx context.Context) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// HTTPHandler returns the streamable HTTP transport for mounting under a
// route of the serving mux.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}

// toolHandler adapts one catalog entry to the MCP handler signature. The
// dispatcher already folds handler faults into failure envelopes, so the
// handler only reports encoding problems as tool errors.
func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out := s.toolset.Dispatch(ctx, name, argumentsMap(req.Params.Arguments))
		text, err := renderResult(out)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// renderResult encodes a tool outcome the way clients expect it: an indented
// JSON document.
func renderResult(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// argumentsMap normalizes the request arguments, which arrive as arbitrary
// decoded JSON, into the map the dispatcher consumes.
func argumentsMap(raw any) map[string]any {
	switch value := raw.(type) {
	case nil:
		return nil
	case map[string]any:
		return value
	case map[string]string:
		out := make(map[string]any, len(value))
		for k, v := range value {
			out[k] = v
		}
		return out
	default:
		return nil
	}
}

// buildTool translates a catalog definition into an MCP tool declaration.
// All nine tools are read-only fetch-and-transform operations against the
// open web, so they share the same annotation set.
func buildTool(def tools.Definition) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(def.Description),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	for _, arg := range def.Args {
		var props []mcp.PropertyOption
		if arg.Required {
			props = append(props, mcp.Required())
		}
		if arg.Description != "" {
			props = append(props, mcp.Description(arg.Description))
		}
		if len(arg.Enum) > 0 {
			props = append(props, mcp.Enum(arg.Enum...))
		}
		switch arg.Type {
		case tools.ArgInteger:
			if n, ok := arg.Default.(int); ok {
				props = append(props, mcp.DefaultNumber(float64(n)))
			}
			opts = append(opts, mcp.WithNumber(arg.Name, props...))
		default:
			if s, ok := arg.Default.(string); ok {
				props = append(props, mcp.DefaultString(s))
			}
			opts = append(opts, mcp.WithString(arg.Name, props...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}
