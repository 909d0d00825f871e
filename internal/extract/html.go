package extract

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// skippedElements are elements whose text content is never prose.
// Their subtrees are dropped entirely.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"template": true,
	"svg":      true,
	"iframe":   true,
}

// blockElements are elements whose boundaries separate sentences. Text on
// either side of a block boundary must not run together, or the readability
// analysis would see one artificially long sentence.
var blockElements = map[string]bool{
	"p":          true,
	"div":        true,
	"section":    true,
	"article":    true,
	"header":     true,
	"footer":     true,
	"main":       true,
	"aside":      true,
	"nav":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"li":         true,
	"ul":         true,
	"ol":         true,
	"dt":         true,
	"dd":         true,
	"table":      true,
	"tr":         true,
	"td":         true,
	"th":         true,
	"blockquote": true,
	"pre":        true,
	"figcaption": true,
	"br":         true,
	"hr":         true,
}

// Text extracts readable plain text from an HTML document.
//
// Design decision: We use golang.org/x/net/html for parsing rather than
// regex because:
//  1. It correctly handles malformed HTML common on the web
//  2. Provides a proper DOM-like structure
//  3. More maintainable than complex regex patterns
//  4. Standard library extension, well-maintained
//
// Block element boundaries become newlines so that headings, list items, and
// paragraphs stay separate sentences for the downstream analysis.
func Text(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if skippedElements[n.Data] {
				return
			}
			if blockElements[n.Data] {
				sb.WriteString("\n")
			}
		case html.TextNode:
			if text := collapseWhitespace(n.Data); text != "" {
				sb.WriteString(text)
				sb.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockElements[n.Data] {
			sb.WriteString("\n")
		}
	}

	walk(doc)

	return tidyLines(sb.String()), nil
}

// TextFromString extracts readable plain text from an HTML string.
func TextFromString(s string) (string, error) {
	return Text(strings.NewReader(s))
}

// IsHTML reports whether the content looks like an HTML document rather
// than plain prose. It is a cheap sniff for callers that accept both.
func IsHTML(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype html") ||
		strings.HasPrefix(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "</p>") ||
		strings.Contains(lower, "</div>")
}

// collapseWhitespace folds runs of whitespace into single spaces.
// HTML source whitespace carries no meaning for prose analysis.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// tidyLines trims each line and drops empty ones, leaving one logical text
// block per line.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
