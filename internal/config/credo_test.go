// internal/config/credo_test.go
package config

import (
	"strings"
	"testing"
)

func TestParseEntries_FullLine(t *testing.T) {
	in := `"my blog" https://example.com https://discord.com/api/webhooks/1/x "hello world"`

	entries, warnings := parseEntries(strings.NewReader(in))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Description != "my blog" {
		t.Fatalf("description: got %q", e.Description)
	}
	if e.URL != "https://example.com" {
		t.Fatalf("url: got %q", e.URL)
	}
	if e.Webhook != "https://discord.com/api/webhooks/1/x" {
		t.Fatalf("webhook: got %q", e.Webhook)
	}
	if e.Keyword != "hello world" {
		t.Fatalf("keyword: got %q", e.Keyword)
	}
}

func TestParseEntries_KeywordOptional(t *testing.T) {
	in := `"plain" http://example.org https://discord.com/api/webhooks/1/x`

	entries, warnings := parseEntries(strings.NewReader(in))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(entries) != 1 || entries[0].Keyword != "" {
		t.Fatalf("expected 1 entry without keyword, got %+v", entries)
	}
}

func TestParseEntries_CommentsAndBlanksSkippedSilently(t *testing.T) {
	in := "# heading\n\n   \n" +
		`"a" http://a.example https://discord.com/api/webhooks/1/x` + "\n" +
		"# trailing comment\n"

	entries, warnings := parseEntries(strings.NewReader(in))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestParseEntries_MalformedLineSkippedOthersKept(t *testing.T) {
	in := `"valid1" http://a.example https://discord.com/api/webhooks/1/x` + "\n" +
		`"test" http://x.com` + "\n" + // missing webhook
		`"valid2" http://b.example https://discord.com/api/webhooks/2/y` + "\n"

	entries, warnings := parseEntries(strings.NewReader(in))
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "line 2") {
		t.Fatalf("warning should name line 2: %q", warnings[0])
	}
}

func TestParseEntries_UnterminatedQuoteSkipped(t *testing.T) {
	in := `"broken http://a.example https://discord.com/api/webhooks/1/x`

	entries, warnings := parseEntries(strings.NewReader(in))
	if len(entries) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(entries))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
}

func TestParseEntries_NonHTTPURLSkipped(t *testing.T) {
	in := `"ftp" ftp://a.example https://discord.com/api/webhooks/1/x`

	entries, warnings := parseEntries(strings.NewReader(in))
	if len(entries) != 0 || len(warnings) != 1 {
		t.Fatalf("expected skip with warning, got entries=%v warnings=%v", entries, warnings)
	}
}

func TestSplitQuoted_MixedQuoting(t *testing.T) {
	fields, err := splitQuoted(`'single word' plain "double words" tail`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"single word", "plain", "double words", "tail"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d: %v", len(want), len(fields), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("field %d: got %q want %q", i, fields[i], want[i])
		}
	}
}

func TestSplitQuoted_EmptyQuotedField(t *testing.T) {
	fields, err := splitQuoted(`"" http://a.example hook`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != 3 || fields[0] != "" {
		t.Fatalf("expected empty first field, got %v", fields)
	}
}
