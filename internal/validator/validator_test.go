package validator_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeBuyButtons = `<div>
	<button class="buy">One</button>
	<button class="buy">Two</button>
	<button class="buy">Three</button>
</div>`

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		selector string
		wantErr  bool
	}{
		{name: "class", selector: ".buy", wantErr: false},
		{name: "attribute", selector: `[data-testid="cta"]`, wantErr: false},
		{name: "contains", selector: `button:contains("Buy")`, wantErr: false},
		{name: "group", selector: "h1, h2", wantErr: false},
		{name: "empty", selector: "", wantErr: true},
		{name: "whitespace", selector: "   ", wantErr: true},
		{name: "unbalanced bracket", selector: "div[", wantErr: true},
		{name: "unknown pseudo class", selector: "a:frobnicate", wantErr: true},
		{name: "script marker", selector: `a[href="javascript:alert(1)"]`, wantErr: true},
		{name: "handler marker", selector: `img[onerror=x]`, wantErr: true},
		{name: "too long", selector: strings.Repeat("a", validator.MaxSelectorLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := validator.Compile(tt.selector)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, validator.ErrInvalidSelector))
				assert.False(t, validator.IsParseable(tt.selector))
				return
			}
			require.NoError(t, err)
			assert.True(t, validator.IsParseable(tt.selector))
		})
	}
}

func TestResolve_Ambiguous(t *testing.T) {
	t.Parallel()

	res, err := validator.Resolve(".buy", threeBuyButtons)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 3, res.Count)
	assert.False(t, res.Unique())
	assert.Equal(t, []string{"button.buy", "button.buy", "button.buy"}, res.Descriptors)
}

func TestResolve_Unique(t *testing.T) {
	t.Parallel()

	res, err := validator.Resolve(`[data-testid="cta"]`, `<button data-testid="cta">Buy</button>`)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Count)
	assert.True(t, res.Unique())
}

func TestResolve_InvalidSelectorNeverFails(t *testing.T) {
	t.Parallel()

	res, err := validator.Resolve("div[[", threeBuyButtons)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Count)
	assert.True(t, res.Invalid)
	assert.Empty(t, res.Descriptors)
}

func TestResolve_DescriptorsAreCapped(t *testing.T) {
	t.Parallel()

	markup := strings.Repeat(`<li class="item">x</li>`, 8)
	res, err := validator.Resolve("li", "<ul>"+markup+"</ul>")
	require.NoError(t, err)
	assert.Equal(t, 8, res.Count)
	assert.Len(t, res.Descriptors, 5)
}

func TestResolve_ContainsIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	res, err := validator.Resolve(`a:contains("SHOP NOW")`, `<a>Shop now</a><a>Later</a>`)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestResolveIn_DoesNotMutateDocument(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse(threeBuyButtons, document.DefaultLimits())
	require.NoError(t, err)

	first := validator.ResolveIn(doc, ".buy")
	_ = validator.ResolveIn(doc, "button:contains('Two')")
	_ = validator.ResolveIn(doc, "div[[")
	second := validator.ResolveIn(doc, ".buy")
	assert.Equal(t, first, second)
}

func TestExistsUniquely(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ExistsUniquely("button:contains('Two')", threeBuyButtons))
	assert.False(t, validator.ExistsUniquely(".buy", threeBuyButtons))
	assert.False(t, validator.ExistsUniquely(".missing", threeBuyButtons))
	assert.False(t, validator.ExistsUniquely("", threeBuyButtons))
}

func TestExistsUniquely_ConcurrentDocuments(t *testing.T) {
	t.Parallel()

	pages := []struct {
		markup string
		want   bool
	}{
		{markup: `<main><p id="only">x</p></main>`, want: true},
		{markup: `<main><p id="only">x</p><p id="only">y</p></main>`, want: false},
		{markup: `<main></main>`, want: false},
	}

	var wg sync.WaitGroup
	for _, page := range pages {
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, page.want, validator.ExistsUniquely("#only", page.markup))
			}()
		}
	}
	wg.Wait()
}
