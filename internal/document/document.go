// Package document parses page markup once per call and exposes the element
// attributes the selector engine reasons about.
package document

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultMaxDocumentBytes bounds the markup accepted by Parse.
const DefaultMaxDocumentBytes = 2 << 20

// Limits caps the work a single parse may do.
type Limits struct {
	// MaxDocumentBytes is the largest accepted markup size; zero means DefaultMaxDocumentBytes
	MaxDocumentBytes int
}

// DefaultLimits returns the default parse limits.
func DefaultLimits() Limits {
	return Limits{MaxDocumentBytes: DefaultMaxDocumentBytes}
}

func (l Limits) maxBytes() int {
	if l.MaxDocumentBytes <= 0 {
		return DefaultMaxDocumentBytes
	}
	return l.MaxDocumentBytes
}

// Document is a read-only parsed page. It is owned by a single call and never shared.
type Document struct {
	doc  *goquery.Document
	size int
}

// Parse builds a Document from markup. Empty markup yields an empty document.
func Parse(markup string, limits Limits) (*Document, error) {
	if len(markup) > limits.maxBytes() {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrDocumentTooLarge, len(markup), limits.maxBytes())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	return &Document{doc: doc, size: len(markup)}, nil
}

// Size returns the length in bytes of the parsed markup.
func (d *Document) Size() int {
	return d.size
}

// Root returns the document selection.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}

// Match returns every element matched by m, in document order.
func (d *Document) Match(m goquery.Matcher) *goquery.Selection {
	return d.doc.FindMatcher(m)
}

// skippedTextTags never take part in text search.
var skippedTextTags = map[string]bool{
	"head":     true,
	"title":    true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// FindText returns the innermost elements whose whitespace-normalised text equals
// text, compared case-insensitively, in document order.
func (d *Document) FindText(text string) *goquery.Selection {
	want := normalizeText(text)
	if want == "" {
		return d.doc.FindNodes()
	}

	var matches []*html.Node
	var walk func(n *html.Node) bool
	// walk reports whether n or any descendant matched.
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && skippedTextTags[n.Data] {
			return false
		}

		childMatched := false
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				childMatched = true
			}
		}
		if childMatched {
			return true
		}

		if n.Type == html.ElementNode && strings.EqualFold(normalizeText(nodeText(n)), want) {
			matches = append(matches, n)
			return true
		}
		return false
	}
	for _, n := range d.doc.Nodes {
		walk(n)
	}

	// walk appends in post-order; innermost matches never nest, so this is document order.
	// FindNodes builds a fresh slice; the root selection must stay untouched.
	return d.doc.FindNodes(matches...)
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
