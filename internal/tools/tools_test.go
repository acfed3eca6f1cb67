package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hyperifyio/webscrape/internal/research"
)

func TestCatalog_NamesAndOrder(t *testing.T) {
	want := []string{
		"scrape_html", "extract_links", "extract_metadata", "scrape_table",
		"web_search", "news_search", "search_and_scrape", "extract_article",
		"smart_search",
	}
	defs := Catalog()
	if len(defs) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(defs))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Fatalf("tool %d: got %q want %q", i, defs[i].Name, name)
		}
		if op, ok := Lookup(name); !ok || op != defs[i].Op {
			t.Fatalf("lookup %q mismatch", name)
		}
	}
}

func TestDefinition_InputSchema(t *testing.T) {
	var def Definition
	for _, d := range Catalog() {
		if d.Name == "scrape_table" {
			def = d
		}
	}
	schema := def.InputSchema()
	if schema["type"] != "object" {
		t.Fatalf("schema type: %v", schema["type"])
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("missing properties")
	}
	idx, ok := props["table_index"].(map[string]any)
	if !ok {
		t.Fatalf("missing table_index property")
	}
	if idx["type"] != "integer" || idx["default"] != 0 {
		t.Fatalf("table_index schema: %v", idx)
	}
	req, ok := schema["required"].([]string)
	if !ok || len(req) != 1 || req[0] != "url" {
		t.Fatalf("required: %v", schema["required"])
	}
}

func TestDefinition_InputSchema_Enum(t *testing.T) {
	for _, d := range Catalog() {
		if d.Name != "smart_search" {
			continue
		}
		props := d.InputSchema()["properties"].(map[string]any)
		mode := props["mode"].(map[string]any)
		enum, ok := mode["enum"].([]string)
		if !ok || len(enum) != 3 {
			t.Fatalf("mode enum: %v", mode["enum"])
		}
		return
	}
	t.Fatalf("smart_search not in catalog")
}

func TestDispatch_UnknownTool(t *testing.T) {
	ts := NewToolset(Deps{})
	out := ts.Dispatch(context.Background(), "bogus", map[string]any{})
	fail, ok := out.(Failure)
	if !ok {
		t.Fatalf("expected failure envelope, got %T", out)
	}
	if fail.Error != "Unknown tool: bogus" {
		t.Fatalf("unexpected error text: %q", fail.Error)
	}

	b, err := json.Marshal(fail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["success"] != false {
		t.Fatalf("success must be false: %v", m)
	}
	if _, present := m["url"]; present {
		t.Fatalf("url must be omitted when unknown: %v", m)
	}
	if _, present := m["query"]; present {
		t.Fatalf("query must be omitted when unknown: %v", m)
	}
}

type panicker struct{}

func (panicker) SearchAndScrape(context.Context, string, int) ([]research.EnrichedResult, error) {
	panic("blown fuse")
}

func TestDispatch_PanicBecomesFailure(t *testing.T) {
	ts := NewToolset(Deps{Researcher: panicker{}})
	out := ts.Dispatch(context.Background(), "search_and_scrape", map[string]any{"query": "q"})
	fail, ok := out.(Failure)
	if !ok {
		t.Fatalf("expected failure envelope, got %T", out)
	}
	if fail.Error != "blown fuse" {
		t.Fatalf("unexpected error text: %q", fail.Error)
	}
}

func TestDispatch_NilArguments(t *testing.T) {
	ts := NewToolset(Deps{})
	out := ts.Dispatch(context.Background(), "scrape_html", nil)
	fail, ok := out.(Failure)
	if !ok {
		t.Fatalf("expected failure envelope, got %T", out)
	}
	if fail.Error != "url is required" {
		t.Fatalf("unexpected error text: %q", fail.Error)
	}
}

func TestEncodeOpenAI(t *testing.T) {
	encoded := EncodeOpenAI(Catalog())
	if len(encoded) != 9 {
		t.Fatalf("expected 9 tools, got %d", len(encoded))
	}
	for _, tool := range encoded {
		if tool.Type != "function" {
			t.Fatalf("tool type: %v", tool.Type)
		}
		if tool.Function == nil || tool.Function.Name == "" {
			t.Fatalf("missing function definition: %+v", tool)
		}
		if tool.Function.Parameters == nil {
			t.Fatalf("missing parameters for %s", tool.Function.Name)
		}
	}
}
