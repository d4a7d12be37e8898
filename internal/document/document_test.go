package document_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParse_RejectsOversizedDocument(t *testing.T) {
	t.Parallel()

	markup := "<p>" + strings.Repeat("x", 64) + "</p>"
	_, err := document.Parse(markup, document.Limits{MaxDocumentBytes: 32})
	require.Error(t, err)
	assert.True(t, errors.Is(err, document.ErrDocumentTooLarge))
}

func TestParse_EmptyMarkup(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse("", document.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Size())
	assert.Equal(t, 0, doc.FindText("anything").Length())
}

func TestFindText_InnermostCaseInsensitive(t *testing.T) {
	t.Parallel()

	markup := `<div class="hero"><p>  Add   to Cart </p></div><span>add to cart</span>`
	doc, err := document.Parse(markup, document.DefaultLimits())
	require.NoError(t, err)

	found := doc.FindText("ADD TO CART")
	require.Equal(t, 2, found.Length())
	assert.Equal(t, "p", found.Get(0).Data)
	assert.Equal(t, "span", found.Get(1).Data)
}

func TestFindText_IgnoresHeadAndScripts(t *testing.T) {
	t.Parallel()

	markup := `<html><head><title>Buy</title></head><body><script>Buy</script><a>Buy</a></body></html>`
	doc, err := document.Parse(markup, document.DefaultLimits())
	require.NoError(t, err)

	found := doc.FindText("buy")
	require.Equal(t, 1, found.Length())
	assert.Equal(t, "a", found.Get(0).Data)
}

func TestFindText_PartialTextDoesNotMatch(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse(`<button>Buy now</button>`, document.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, 0, doc.FindText("Buy").Length())
}

func TestFindText_LeavesDocumentIntact(t *testing.T) {
	t.Parallel()

	markup := `<div class="wrap"><button>Add to cart</button><button>Other</button></div><button>Third</button>`
	doc, err := document.Parse(markup, document.DefaultLimits())
	require.NoError(t, err)

	buttons := cascadia.MustCompile("button")
	require.Equal(t, 3, doc.Match(buttons).Length())

	for _, text := range []string{"add to cart", "missing", ""} {
		doc.FindText(text)
		assert.Equal(t, 3, doc.Match(buttons).Length(), "after FindText(%q)", text)
		assert.Equal(t, html.DocumentNode, doc.Root().Get(0).Type, "after FindText(%q)", text)
	}
}

func TestNewElement(t *testing.T) {
	t.Parallel()

	markup := `<section class="product">
		<div class="card card--featured">
			<h3 id="title" class="card__heading big" role="heading" aria-label="Product title" data-testid="product-title"> Title </h3>
			<h3 class="card__sub">Sub</h3>
			<p>Body</p>
		</div>
	</section>`
	doc, err := document.Parse(markup, document.DefaultLimits())
	require.NoError(t, err)

	el := document.NewElement(doc.Root().Find("#title"))
	assert.Equal(t, "h3", el.Tag)
	assert.Equal(t, "title", el.ID)
	assert.Equal(t, []string{"card__heading", "big"}, el.Classes)
	assert.Equal(t, "heading", el.Role)
	assert.Equal(t, "Product title", el.AriaLabel)
	assert.Equal(t, "product-title", el.TestID)
	assert.Equal(t, "Title", el.Text)
	assert.Equal(t, []string{"card", "card--featured"}, el.ParentClasses)
	assert.Equal(t, []string{"product"}, el.GrandparentClasses)
	assert.Equal(t, 1, el.SameTagSiblings)
	assert.Equal(t, "//*[@id='title']", el.XPath)
}

func TestNewElement_EmptySelection(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse(`<p>x</p>`, document.DefaultLimits())
	require.NoError(t, err)

	el := document.NewElement(doc.Root().Find("article"))
	assert.True(t, el.IsZero())
}

func TestNewElement_BodyIsNeverAParent(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse(`<body class="page"><button>Go</button></body>`, document.DefaultLimits())
	require.NoError(t, err)

	el := document.NewElement(doc.Root().Find("button"))
	assert.Empty(t, el.ParentClasses)
	assert.Empty(t, el.GrandparentClasses)
	assert.Equal(t, 0, el.SameTagSiblings)
}

func TestXPath_ResolvesBackToElement(t *testing.T) {
	t.Parallel()

	markup := `<div id="template--25767798276440"><ul><li>One</li><li class="target">Two</li></ul></div>`
	doc, err := document.Parse(markup, document.DefaultLimits())
	require.NoError(t, err)

	node := doc.Root().Find("li.target").Get(0)
	xpath := document.XPath(node)
	assert.Equal(t, "/html[1]/body[1]/div[1]/ul[1]/li[2]", xpath, "generated ids are not used as anchors")

	found := htmlquery.FindOne(doc.Root().Get(0), xpath)
	assert.Same(t, node, found)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse(`<a id="buy" class="btn btn--primary">Buy</a>`, document.DefaultLimits())
	require.NoError(t, err)

	assert.Equal(t, "a#buy.btn.btn--primary", document.Describe(doc.Root().Find("a").Get(0)))
	assert.Empty(t, document.Describe(nil))
}
