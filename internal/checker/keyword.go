// internal/checker/keyword.go
package checker

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// keywordInPage reports whether the keyword appears in the visible
// text of the page. Matching is case-insensitive; markup, script and
// style content never match.
func keywordInPage(body []byte, keyword string) bool {
	text := pageText(body)
	return strings.Contains(strings.ToLower(text), strings.ToLower(keyword))
}

// pageText extracts the text content of an HTML document, skipping
// script and style elements. Plain-text bodies pass through
// unchanged: the tokenizer yields them as a single text token.
func pageText(body []byte) string {
	var sb strings.Builder

	z := html.NewTokenizer(bytes.NewReader(body))
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()

		case html.StartTagToken:
			name, _ := z.TagName()
			if isSkippedTag(name) {
				skip++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if isSkippedTag(name) && skip > 0 {
				skip--
			}

		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

func isSkippedTag(name []byte) bool {
	return bytes.Equal(name, []byte("script")) || bytes.Equal(name, []byte("style"))
}
