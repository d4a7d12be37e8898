package document

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element holds the attributes of one resolved node that selector synthesis uses.
type Element struct {
	Tag       string
	ID        string
	Classes   []string
	Role      string
	AriaLabel string
	TestID    string
	// Text is the element's text content with surrounding whitespace trimmed
	Text string
	// ParentClasses and GrandparentClasses are empty at the top of the tree
	ParentClasses      []string
	GrandparentClasses []string
	// SameTagSiblings counts siblings, excluding the element itself, sharing its tag
	SameTagSiblings int
	// XPath locates the element for diagnostics only
	XPath string
}

// NewElement describes the first node of sel. An empty selection yields a zero Element.
func NewElement(sel *goquery.Selection) Element {
	if sel == nil || sel.Length() == 0 {
		return Element{}
	}
	n := sel.Get(0)
	if n.Type != html.ElementNode {
		return Element{}
	}

	el := Element{
		Tag:             strings.ToLower(n.Data),
		ID:              strings.TrimSpace(attr(n, "id")),
		Classes:         classList(n),
		Role:            strings.TrimSpace(attr(n, "role")),
		AriaLabel:       strings.TrimSpace(attr(n, "aria-label")),
		TestID:          strings.TrimSpace(attr(n, "data-testid")),
		Text:            strings.TrimSpace(nodeText(n)),
		SameTagSiblings: countSameTagSiblings(n),
		XPath:           XPath(n),
	}

	if parent := elementParent(n); parent != nil {
		el.ParentClasses = classList(parent)
		if grandparent := elementParent(parent); grandparent != nil {
			el.GrandparentClasses = classList(grandparent)
		}
	}

	return el
}

// IsZero reports whether el describes no element.
func (el Element) IsZero() bool {
	return el.Tag == ""
}

// Describe renders a short tag#id.class summary of n for diagnostics.
func Describe(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(n.Data))
	if id := strings.TrimSpace(attr(n, "id")); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, class := range classList(n) {
		b.WriteString(".")
		b.WriteString(class)
	}
	return b.String()
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}

func classList(n *html.Node) []string {
	return strings.Fields(attr(n, "class"))
}

// elementParent returns the nearest element ancestor, stopping below the document
// root elements so html and body never act as a parent anchor.
func elementParent(n *html.Node) *html.Node {
	p := n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	switch p.Data {
	case "html", "body":
		return nil
	}
	return p
}

func countSameTagSiblings(n *html.Node) int {
	if n.Parent == nil {
		return 0
	}
	count := 0
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c != n && c.Type == html.ElementNode && c.Data == n.Data {
			count++
		}
	}
	return count
}
