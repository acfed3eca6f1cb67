package scrape

import (
	"strings"
	"testing"
)

func TestCleanText_CollapsesRuns(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"hello", "hello"},
		{"  hello   world  ", "hello world"},
		{"line one\n\nline two\tend", "line one line two end"},
		{"a\r\nb c", "a b c"},
	}
	for _, c := range cases {
		if got := CleanText(c.in); got != c.want {
			t.Fatalf("CleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"  spaced   out\ttext \n with newlines \r\n everywhere  ",
		"already clean",
		"\n\n\n",
		"mixed   unicode   spaces",
	}
	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Fatalf("CleanText not idempotent for %q: %q != %q", in, once, twice)
		}
		if strings.Contains(once, "  ") {
			t.Fatalf("output contains consecutive spaces: %q", once)
		}
		if once != strings.TrimSpace(once) {
			t.Fatalf("output has leading/trailing whitespace: %q", once)
		}
	}
}
