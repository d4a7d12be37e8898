package generator_test

import (
	"strings"
	"testing"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/generator"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/scorer"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/validator"
	mocklogger "github.com/jonesrussell/north-cloud/pinpoint/testutils/mocks/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func elementFor(t *testing.T, markup, selector string) (*document.Document, document.Element) {
	t.Helper()

	doc, err := document.Parse(markup, document.DefaultLimits())
	require.NoError(t, err)
	sel := doc.Root().Find(selector)
	require.Equal(t, 1, sel.Length(), "fixture selector %q must be unique", selector)
	return doc, document.NewElement(sel)
}

func selectors(candidates []domain.SelectorCandidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Selector)
	}
	return out
}

func TestSynthesize_AllStrategiesInOrder(t *testing.T) {
	t.Parallel()

	markup := `<section class="product-grid">
		<div class="card card--featured">
			<button id="add" class="btn btn--primary add-to-cart" data-testid="add-button"
				role="button" aria-label="Add to cart">Add to cart</button>
		</div>
	</section>`
	_, el := elementFor(t, markup, "#add")

	got := generator.NewSynthesizer().Synthesize(el)
	assert.Equal(t, []string{
		`[data-testid="add-button"]`,
		`button[role="button"]`,
		`button[aria-label="Add to cart"]`,
		"#add",
		"button.add-to-cart",
		"button.add-to-cart.btn--primary",
		"button.add-to-cart.btn--primary.btn",
		`button:contains("Add to cart")`,
		".card--featured button",
		".card--featured > button",
		".card--featured button.add-to-cart",
		".product-grid button",
		"button",
	}, selectors(got))

	wantTiers := []domain.Tier{
		domain.TierDataAttribute,
		domain.TierAriaRole,
		domain.TierAriaRole,
		domain.TierCleanID,
		domain.TierSemanticClass,
		domain.TierSemanticClass,
		domain.TierSemanticClass,
		domain.TierTextContent,
		domain.TierParentRelation,
		domain.TierParentRelation,
		domain.TierParentRelation,
		domain.TierParentRelation,
		domain.TierTagFallback,
	}
	for i, c := range got {
		assert.Equal(t, wantTiers[i], c.Tier, c.Selector)
		assert.Equal(t, domain.SourceSynthesized, c.Source)
	}
}

func TestSynthesize_FallbackScenario(t *testing.T) {
	t.Parallel()

	markup := `<div class="card"><h3 class="card__heading">Title</h3></div>
		<div class="card"><p>No heading here</p></div>`
	doc, el := elementFor(t, markup, "h3")

	got := selectors(generator.NewSynthesizer().Synthesize(el))
	require.Contains(t, got, "h3.card__heading")

	verdict := scorer.ScoreIn(doc, "h3.card__heading")
	assert.True(t, verdict.Works)
	assert.InDelta(t, 0.8, verdict.Confidence, 1e-9)
}

func TestSynthesize_SkipsGeneratedIdentifiers(t *testing.T) {
	t.Parallel()

	markup := `<div class="shopify-section-template--123456__main">
		<span id="template--25767798276440" class="css-1a2b3c4d5e price">$10</span>
	</div>`
	_, el := elementFor(t, markup, "span")

	got := selectors(generator.NewSynthesizer().Synthesize(el))
	for _, s := range got {
		assert.NotContains(t, s, "template--")
		assert.NotContains(t, s, "css-1a2b3c4d5e")
	}
	assert.Contains(t, got, "span.price")
	assert.Contains(t, got, "span")
}

func TestSynthesize_NeverPositionBased(t *testing.T) {
	t.Parallel()

	markup := `<ul class="menu"><li>One</li><li class="active">Two</li><li>Three</li></ul>`
	_, el := elementFor(t, markup, "li.active")

	got := selectors(generator.NewSynthesizer().Synthesize(el))
	for _, s := range got {
		assert.NotContains(t, s, ":nth-")
	}
	assert.NotContains(t, got, "li", "bare tag omitted when siblings share it")
}

func TestSynthesize_TextLengthBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "too short", text: "Buy", want: false},
		{name: "just long enough", text: "Shop", want: true},
		{name: "too long", text: strings.Repeat("x", 50), want: false},
		{name: "just short enough", text: strings.Repeat("x", 49), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, el := elementFor(t, "<em>"+tt.text+"</em>", "em")
			got := selectors(generator.NewSynthesizer().Synthesize(el))
			assert.Equal(t, tt.want, containsPrefix(got, "em:contains("))
		})
	}
}

func TestSynthesize_EscapesAttributeValuesAndText(t *testing.T) {
	t.Parallel()

	markup := `<a data-testid='say "hi"' aria-label="back\slash">Say "hi" now</a>`
	doc, el := elementFor(t, markup, "a")

	got := generator.NewSynthesizer().Synthesize(el)
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.True(t, validator.IsParseable(c.Selector), c.Selector)
		assert.Equal(t, 1, validator.ResolveIn(doc, c.Selector).Count, c.Selector)
	}
	assert.Equal(t, `[data-testid="say \"hi\""]`, got[0].Selector)
}

func TestSynthesize_DeduplicatesAndCaps(t *testing.T) {
	t.Parallel()

	markup := `<div class="card"><div class="card"><p class="card">Body text</p></div></div>`
	_, el := elementFor(t, markup, "p")

	all := generator.NewSynthesizer().Synthesize(el)
	seen := map[string]bool{}
	for _, c := range all {
		assert.False(t, seen[c.Selector], "duplicate %s", c.Selector)
		seen[c.Selector] = true
	}

	capped := generator.NewSynthesizer(generator.WithMaxCandidates(2)).Synthesize(el)
	assert.Equal(t, selectors(all[:2]), selectors(capped))
}

func TestSynthesize_ZeroElement(t *testing.T) {
	t.Parallel()

	assert.Empty(t, generator.NewSynthesizer().Synthesize(document.Element{}))
}

func TestSynthesize_LogsCandidateCount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocklogger.NewMockInterface(ctrl)
	log.EXPECT().Debug("Synthesized selector candidates",
		"tag", "h1", "candidates", gomock.Any(), "dropped", 0).Times(1)

	_, el := elementFor(t, `<h1 class="hero__title">Welcome home</h1>`, "h1")
	got := generator.NewSynthesizer(generator.WithLogger(log)).Synthesize(el)
	assert.NotEmpty(t, got)
}

func TestGenerateCandidatesYAML(t *testing.T) {
	t.Parallel()

	doc, el := elementFor(t, `<div class="card"><h3 class="card__heading">Title</h3></div>`, "h3")
	candidates := generator.NewSynthesizer().Synthesize(el)
	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, domain.ScoredCandidate{SelectorCandidate: c, Verdict: scorer.ScoreIn(doc, c.Selector)})
	}

	out, err := generator.GenerateCandidatesYAML(el, scored)
	require.NoError(t, err)

	var parsed struct {
		Element struct {
			Tag string `yaml:"tag"`
		} `yaml:"element"`
		Candidates []struct {
			Selector string `yaml:"selector"`
			Tier     string `yaml:"tier"`
			Verdict  struct {
				Works bool `yaml:"works"`
			} `yaml:"verdict"`
		} `yaml:"candidates"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "h3", parsed.Element.Tag)
	require.Len(t, parsed.Candidates, len(scored))
	assert.Equal(t, "h3.card__heading", parsed.Candidates[0].Selector)
	assert.Equal(t, "semantic_class", parsed.Candidates[0].Tier)
	assert.True(t, parsed.Candidates[0].Verdict.Works)
}

func containsPrefix(list []string, prefix string) bool {
	for _, s := range list {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
