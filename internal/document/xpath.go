package document

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/stability"
	"golang.org/x/net/html"
)

// XPath builds an absolute XPath for n, anchored at the nearest ancestor whose id
// is not generated.
func XPath(n *html.Node) string {
	if n == nil {
		return ""
	}

	var path []string
	for cur := n; cur != nil && cur.Type != html.DocumentNode; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		tag := strings.ToLower(cur.Data)

		id := htmlquery.SelectAttr(cur, "id")
		if id != "" && !strings.Contains(id, "'") && !stability.IsGeneratedIdentifier(id) {
			path = append(path, fmt.Sprintf("//*[@id='%s']", id))
			break
		}

		index := 1
		for prev := cur.PrevSibling; prev != nil; prev = prev.PrevSibling {
			if prev.Type == html.ElementNode && strings.ToLower(prev.Data) == tag {
				index++
			}
		}
		path = append(path, fmt.Sprintf("%s[%d]", tag, index))
	}

	if len(path) == 0 {
		return "/"
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	xpath := strings.Join(path, "/")
	if !strings.HasPrefix(xpath, "//") {
		xpath = "/" + xpath
	}
	return xpath
}
