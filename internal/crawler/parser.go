package crawler

import (
	"bytes"
	"regexp"

	"golang.org/x/net/html"
)

// LinkExtractor pulls hyperlink targets out of a page.
//
// Design decision: Extraction is an interface so the fixed regular
// expression can be swapped for a real HTML tokenizer without touching the
// graph construction logic.
type LinkExtractor interface {
	// Extract returns every href target found in content, in document order.
	// Duplicates are allowed; the Builder removes them.
	Extract(content []byte) []string

	// Name identifies the extractor in logs and configuration.
	Name() string
}

// anchorHrefPattern matches an anchor tag with a double-quoted href value.
// Other attributes may appear before href; single quotes are not recognized.
var anchorHrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// RegexpExtractor extracts links with a fixed regular expression.
type RegexpExtractor struct{}

// NewRegexpExtractor creates a RegexpExtractor.
func NewRegexpExtractor() *RegexpExtractor {
	return &RegexpExtractor{}
}

// Name returns "regexp".
func (e *RegexpExtractor) Name() string {
	return "regexp"
}

// Extract returns the href value of every matching anchor tag.
func (e *RegexpExtractor) Extract(content []byte) []string {
	matches := anchorHrefPattern.FindAllSubmatch(content, -1)
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		links = append(links, string(m[1]))
	}
	return links
}

// HTMLExtractor extracts links by tokenizing the page with x/net/html.
//
// Design decision: We use the tokenizer rather than html.Parse because we
// only need start tags; building the full tree would add nothing.
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTMLExtractor.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Name returns "html".
func (e *HTMLExtractor) Name() string {
	return "html"
}

// Extract returns the href value of every <a> element with a non-empty href.
func (e *HTMLExtractor) Extract(content []byte) []string {
	links := make([]string, 0)
	z := html.NewTokenizer(bytes.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed document; either way we are done.
			return links
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "a" {
				continue
			}
			if href := getAttr(tok, "href"); href != "" {
				links = append(links, href)
			}
		}
	}
}

// getAttr retrieves an attribute value from an HTML token.
func getAttr(tok html.Token, key string) string {
	for _, attr := range tok.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
