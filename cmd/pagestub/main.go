// pagestub is an offline stand-in for the open web: it serves a
// SearxNG-compatible /search endpoint plus a few sample pages the results
// point back at. Run it next to the server for local development without
// touching real engines:
//
//	pagestub &
//	webscrape -transport http -engine searxng -searx.url http://localhost:8082
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

func main() {
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8082"
	}
	base := os.Getenv("BASE_URL")
	if strings.TrimSpace(base) == "" {
		base = "http://localhost" + addr
		if !strings.HasPrefix(addr, ":") {
			base = "http://" + addr
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		results := webResults(base, q)
		if r.URL.Query().Get("categories") == "news" {
			results = newsResults(base, q)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"query":   q,
			"results": results,
		})
	})
	mux.HandleFunc("/pages/article", servePage(articlePage))
	mux.HandleFunc("/pages/table", servePage(tablePage))
	mux.HandleFunc("/pages/links", servePage(linksPage))

	log.Printf("pagestub listening on %s (base=%s)", addr, base)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

func servePage(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}
}

func webResults(base, q string) []map[string]any {
	return []map[string]any{
		{
			"title":   "Sample article about " + q,
			"url":     base + "/pages/article",
			"content": "A long-form article with headline, byline and body text.",
		},
		{
			"title":   "Reference table for " + q,
			"url":     base + "/pages/table",
			"content": "Tabular data with headers and rows.",
		},
		{
			"title":   "Link directory for " + q,
			"url":     base + "/pages/links",
			"content": "A page full of internal and external links.",
		},
	}
}

func newsResults(base, q string) []map[string]any {
	return []map[string]any{
		{
			"title":         "Breaking: " + q,
			"url":           base + "/pages/article",
			"content":       "Latest developments, reported moments ago.",
			"source":        "Stub Daily",
			"publishedDate": "2025-01-02T15:04:05Z",
			"img_src":       base + "/pages/article/thumb.jpg",
		},
		{
			"title":   "Analysis: what " + q + " means",
			"url":     base + "/pages/links",
			"content": "Opinion round-up with further reading.",
			"source":  "Stub Weekly",
		},
	}
}

const articlePage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>The Art of Boiling Water</title>
<meta name="description" content="Everything you never asked about boiling water.">
<meta name="author" content="Pat Kettle">
<meta name="keywords" content="water, boiling, kitchen">
<meta property="og:title" content="The Art of Boiling Water">
<meta property="og:description" content="A deep dive into the bubbliest of topics.">
<meta property="og:image" content="/img/kettle.jpg">
<link rel="canonical" href="https://example.com/articles/boiling-water">
</head>
<body>
<header><nav><a href="/">Home</a> <a href="/pages/links">More</a></nav></header>
<article>
<h1>The Art of Boiling Water</h1>
<p class="byline">By Pat Kettle, Stub Daily</p>
<p>Boiling water looks trivial until you try to do it well. The difference
between a rolling boil and a simmer decides whether your pasta turns out
springy or sad, and the altitude of your kitchen quietly moves the goalposts
by several degrees.</p>
<p>At sea level water boils at one hundred degrees Celsius. Climb a mountain
and the boiling point drops roughly one degree for every three hundred
metres, which is why campsite tea never tastes quite right and why pressure
cookers were invented in the first place.</p>
<p>The kettle itself matters less than people think. What matters is the lid:
an uncovered pot loses enough heat that it can take half again as long to
reach a boil, wasting energy the whole time.</p>
</article>
<footer>&copy; Stub Daily</footer>
</body>
</html>`

const tablePage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Boiling Points by Altitude</title></head>
<body>
<h1>Boiling Points by Altitude</h1>
<table>
<thead>
<tr><th>Altitude (m)</th><th>Boiling point (&deg;C)</th><th>Example location</th></tr>
</thead>
<tbody>
<tr><td>0</td><td>100.0</td><td>Amsterdam</td></tr>
<tr><td>1600</td><td>94.4</td><td>Denver</td></tr>
<tr><td>3600</td><td>87.3</td><td>La Paz</td></tr>
<tr><td>8848</td><td>69.9</td><td>Everest summit</td></tr>
</tbody>
</table>
<table>
<tr><td>no</td><td>headers</td><td>here</td></tr>
</table>
</body>
</html>`

const linksPage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Further Reading</title></head>
<body>
<h1>Further Reading</h1>
<ul>
<li><a href="/pages/article">The Art of Boiling Water</a></li>
<li><a href="/pages/table">Boiling points by altitude</a></li>
<li><a href="https://example.com/external/steam">All about steam</a></li>
<li><a href="https://example.org/external/kettles">A history of kettles</a></li>
<li><a href="#top">Back to top</a></li>
</ul>
</body>
</html>`
