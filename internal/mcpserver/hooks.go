package mcpserver

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// newHooks wires request/response logging into the MCP server. Payloads are
// scrubbed before logging so credentials smuggled into arguments or URLs
// never reach the log stream.
func newHooks() *server.Hooks {
	hooks := &server.Hooks{}

	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcp.MCPMethod, message any) {
		log.Debug().
			Interface("request_id", id).
			Str("method", string(method)).
			Str("request", scrubPayload(message)).
			Msg("mcp request received")
	})

	hooks.AddOnSuccess(func(ctx context.Context, id any, method mcp.MCPMethod, message any, result any) {
		log.Debug().
			Interface("request_id", id).
			Str("method", string(method)).
			Msg("mcp request succeeded")
	})

	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		log.Error().
			Interface("request_id", id).
			Str("method", string(method)).
			Err(err).
			Msg("mcp request failed")
	})

	hooks.AddOnRegisterSession(func(ctx context.Context, session server.ClientSession) {
		log.Debug().Str("session_id", session.SessionID()).Msg("mcp session registered")
	})

	hooks.AddOnUnregisterSession(func(ctx context.Context, session server.ClientSession) {
		log.Debug().Str("session_id", session.SessionID()).Msg("mcp session unregistered")
	})

	return hooks
}

// scrubPayload renders a hook payload as JSON with secrets removed. Returns
// an empty string when the payload cannot be encoded.
func scrubPayload(payload any) string {
	if payload == nil {
		return ""
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return string(data)
	}
	out, err := json.Marshal(scrubValue(decoded))
	if err != nil {
		return string(data)
	}
	return string(out)
}

// scrubValue walks decoded JSON and scrubs string leaves. Maps and arrays
// are processed recursively; other scalars pass through.
func scrubValue(v any) any {
	switch t := v.(type) {
	case string:
		return scrubString(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = scrubValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = scrubValue(vv)
		}
		return out
	default:
		return v
	}
}

var (
	reAuthHeader   = regexp.MustCompile(`(?i)(authorization\s*:\s*)([^\r\n]+)`)
	reCookieHeader = regexp.MustCompile(`(?i)\b(set-cookie|cookie)\s*:\s*[^\r\n]+`)
	reBearer       = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._\-+/=]+`)
)

// scrubString redacts header-like secrets and sanitizes URL strings.
func scrubString(s string) string {
	s = reAuthHeader.ReplaceAllString(s, "$1[redacted]")
	s = reCookieHeader.ReplaceAllString(s, "$1: [redacted]")
	s = reBearer.ReplaceAllString(s, "Bearer [redacted]")

	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		return sanitizeURL(u)
	}
	return s
}

var sensitiveParams = []string{
	"token", "access_token", "id_token", "api_key", "apikey", "x_api_key",
	"key", "secret", "password", "auth",
}

// sanitizeURL strips userinfo and the fragment and redacts the values of
// credential-bearing query parameters.
func sanitizeURL(u *url.URL) string {
	u.User = nil
	u.Fragment = ""
	q := u.Query()
	for _, key := range sensitiveParams {
		if _, ok := q[key]; ok {
			q.Set(key, "[redacted]")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
