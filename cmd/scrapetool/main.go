// scrapetool runs one tool call against a locally assembled toolset and
// prints the result envelope, no server required. Handy for poking at
// selectors and search engines:
//
//	scrapetool web_search '{"query":"what is mcp","num_results":3}'
//	SEARX_URL=http://localhost:8888 scrapetool news_search '{"query":"go"}'
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hyperifyio/webscrape/internal/app"
	"github.com/hyperifyio/webscrape/internal/tools"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: scrapetool <tool> [json-arguments]")
		fmt.Fprintln(os.Stderr, "tools:")
		for _, def := range tools.Catalog() {
			fmt.Fprintf(os.Stderr, "  %s\n", def.Name)
		}
		os.Exit(2)
	}
	name := os.Args[1]
	args := map[string]any{}
	if len(os.Args) > 2 {
		if err := json.Unmarshal([]byte(os.Args[2]), &args); err != nil {
			fmt.Fprintln(os.Stderr, "arguments must be a JSON object:", err)
			os.Exit(2)
		}
	}

	// Same env surface as the server: WEBSCRAPE_SEARCH_ENGINE, SEARX_URL and
	// friends select the provider; unset means duckduckgo.
	cfg := app.Config{}
	app.ApplyEnvToConfig(&cfg)
	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	out, err := json.MarshalIndent(a.Toolset().Dispatch(ctx, name, args), "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
