package app

// Build metadata injected with -ldflags, for example:
//
//	go build -ldflags "-X github.com/hyperifyio/webscrape/internal/app.BuildVersion=1.2.0"
//
// The zero values serve local builds and tests.
var (
	// BuildVersion is reported by -version, /health, and the MCP handshake.
	BuildVersion = "0.0.0-dev"
	// BuildCommit is the VCS revision the binary was built from.
	BuildCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
