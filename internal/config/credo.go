// internal/config/credo.go
package config

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

// Entry is one monitored URL from the .credo file.
// Immutable once loaded.
type Entry struct {
	Description string
	URL         string
	Webhook     string
	Keyword     string // optional; empty means no keyword check
}

// LoadEntries reads the .credo file and returns the valid entries in
// file order, plus one warning per skipped line. A missing or
// unreadable file is fatal to the run.
func LoadEntries(path string) ([]Entry, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("credo: open %s: %w", path, err)
	}
	defer f.Close()

	entries, warnings := parseEntries(f)
	return entries, warnings, nil
}

// parseEntries parses credo lines:
//
//	"description" url webhook_url "optional keyword"
//
// Comments (#) and blank lines are skipped silently. Malformed lines
// are skipped with a warning, never fatal.
func parseEntries(r io.Reader) ([]Entry, []string) {
	var entries []Entry
	var warnings []string

	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, err := parseEntry(line)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", lineNo, err))
			continue
		}

		entries = append(entries, e)
	}

	return entries, warnings
}

func parseEntry(line string) (Entry, error) {
	fields, err := splitQuoted(line)
	if err != nil {
		return Entry{}, err
	}

	if len(fields) < 3 {
		return Entry{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	e := Entry{
		Description: fields[0],
		URL:         fields[1],
		Webhook:     fields[2],
	}
	if len(fields) > 3 {
		e.Keyword = fields[3]
	}

	if err := checkHTTPURL(e.URL); err != nil {
		return Entry{}, fmt.Errorf("url: %v", err)
	}
	if err := checkHTTPURL(e.Webhook); err != nil {
		return Entry{}, fmt.Errorf("webhook: %v", err)
	}

	return e, nil
}

func checkHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q is not an http(s) url", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

// splitQuoted splits a line into whitespace-separated fields with
// shell-like quoting: double or single quotes group words, quotes are
// stripped. An unterminated quote is an error.
func splitQuoted(line string) ([]string, error) {
	var fields []string
	var cur strings.Builder

	inField := false
	var quote byte // 0 when outside quotes

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}

		case c == '"' || c == '\'':
			quote = c
			inField = true

		case c == ' ' || c == '\t':
			if inField {
				fields = append(fields, cur.String())
				cur.Reset()
				inField = false
			}

		default:
			cur.WriteByte(c)
			inField = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote")
	}

	if inField {
		fields = append(fields, cur.String())
	}

	return fields, nil
}
