package main

import (
	"reflect"
	"testing"
	"time"
)

func TestEnvFlagValue(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []string
	}{
		{"absent", []string{"-v", "-listen", ":9000"}, nil},
		{"separate value", []string{"-env", ".env"}, []string{".env"}},
		{"equals form", []string{"-env=.env,local.env"}, []string{".env", "local.env"}},
		{"double dash", []string{"--env=.env"}, []string{".env"}},
		{"last wins", []string{"-env", "a.env", "-env=b.env"}, []string{"b.env"}},
		{"blank entries dropped", []string{"-env", " , .env , "}, []string{".env"}},
		{"trailing flag without value", []string{"-env"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := envFlagValue(tc.args)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("envFlagValue(%v) = %v, want %v", tc.args, got, tc.want)
			}
		})
	}
}

func TestEnvOrHelpers(t *testing.T) {
	t.Setenv("WEBSCRAPE_TEST_STR", "  :9000  ")
	if got := envOr("WEBSCRAPE_TEST_STR", ":8000"); got != ":9000" {
		t.Fatalf("envOr set: %q", got)
	}
	if got := envOr("WEBSCRAPE_TEST_MISSING", ":8000"); got != ":8000" {
		t.Fatalf("envOr missing: %q", got)
	}

	t.Setenv("WEBSCRAPE_TEST_DUR", "3s")
	if got := envOrDuration("WEBSCRAPE_TEST_DUR", time.Second); got != 3*time.Second {
		t.Fatalf("envOrDuration: %v", got)
	}
	t.Setenv("WEBSCRAPE_TEST_DUR_BAD", "soon")
	if got := envOrDuration("WEBSCRAPE_TEST_DUR_BAD", time.Second); got != time.Second {
		t.Fatalf("envOrDuration bad value: %v", got)
	}

	t.Setenv("WEBSCRAPE_TEST_INT", "1024")
	if got := envOrInt64("WEBSCRAPE_TEST_INT", 5); got != 1024 {
		t.Fatalf("envOrInt64: %d", got)
	}
	t.Setenv("WEBSCRAPE_TEST_INT_NEG", "-3")
	if got := envOrInt64("WEBSCRAPE_TEST_INT_NEG", 5); got != 5 {
		t.Fatalf("envOrInt64 rejects non-positive: %d", got)
	}
}
