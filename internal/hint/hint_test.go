package hint_test

import (
	"errors"
	"testing"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/hint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecoder(t *testing.T) *hint.Decoder {
	t.Helper()
	d, err := hint.NewDecoder()
	require.NoError(t, err)
	return d
}

func TestDecode_SelectorHint(t *testing.T) {
	t.Parallel()

	raw := `{
		"primary_selector": ".product-form__submit",
		"element_identifier": "Add to cart button",
		"alternative_selectors": ["button[name=add]", "form button"],
		"confidence_note": "ignored extra field"
	}`
	h, err := newDecoder(t).Decode([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, domain.Hint{
		PrimarySelector:      ".product-form__submit",
		ElementIdentifier:    "Add to cart button",
		AlternativeSelectors: []string{"button[name=add]", "form button"},
	}, h)
	assert.True(t, h.HasSelector())
	assert.Equal(t, "Add to cart button", h.SearchText())
}

func TestDecode_NotFoundHint(t *testing.T) {
	t.Parallel()

	raw := `{"NOT_FOUND": true, "reason": "no newsletter form on page", "suggestions": ["footer signup", "popup"]}`
	h, err := newDecoder(t).Decode([]byte(raw))
	require.NoError(t, err)
	assert.True(t, h.NotFound)
	assert.Equal(t, "no newsletter form on page", h.Reason)
	assert.Equal(t, []string{"footer signup", "popup"}, h.Suggestions)
	assert.False(t, h.IsEmpty())
}

func TestDecode_EmptyInput(t *testing.T) {
	t.Parallel()

	d := newDecoder(t)
	for _, raw := range []string{"", "   ", "null", "{}"} {
		h, err := d.Decode([]byte(raw))
		require.NoError(t, err, raw)
		assert.True(t, h.IsEmpty(), raw)
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{"primary_selector":`},
		{name: "not an object", raw: `["a", "b"]`},
		{name: "selector is a number", raw: `{"primary_selector": 42}`},
		{name: "alternatives not an array", raw: `{"alternative_selectors": ".a"}`},
		{name: "not found not a boolean", raw: `{"NOT_FOUND": "yes"}`},
	}

	d := newDecoder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := d.Decode([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, hint.ErrInvalidHint))
		})
	}
}

func TestHint_SearchTextPrefersText(t *testing.T) {
	t.Parallel()

	h := domain.Hint{Text: "  Shop now ", ElementIdentifier: "hero button"}
	assert.Equal(t, "Shop now", h.SearchText())
	assert.False(t, h.HasSelector())
	assert.False(t, h.IsEmpty())

	blank := domain.Hint{PrimarySelector: "  ", AlternativeSelectors: []string{""}}
	assert.False(t, blank.HasSelector())
	assert.True(t, blank.IsEmpty())
}
