package analyze_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonesrussell/north-cloud/pinpoint/cmd/analyze"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/hint"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const page = `<main class="checkout"><button class="checkout__pay" aria-label="Pay now">Pay now</button></main>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_SelectorFromStdinJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := analyze.Run(context.Background(), resolver.New(logger.NewNoOp()), analyze.Options{
		HTMLPath: "-",
		Selector: "button",
		Format:   "json",
	}, strings.NewReader(page), &out)
	require.NoError(t, err)

	var result resolver.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, resolver.StateResolvedUnique, result.State)
	require.NotNil(t, result.InjectionPoint)
	assert.Equal(t, `button[aria-label="Pay now"]`, result.InjectionPoint.Selector)
	assert.Empty(t, result.Candidates)
}

func TestRun_HintFileYAML(t *testing.T) {
	t.Parallel()

	htmlPath := writeFile(t, "page.html", page)
	hintPath := writeFile(t, "hint.json", `{"NOT_FOUND": true, "reason": "no banner slot", "suggestions": ["use the header"]}`)

	var out bytes.Buffer
	err := analyze.Run(context.Background(), resolver.New(logger.NewNoOp()), analyze.Options{
		HTMLPath: htmlPath,
		HintPath: hintPath,
		Format:   "yaml",
	}, nil, &out)
	require.NoError(t, err)

	var parsed struct {
		State    string `yaml:"state"`
		NotFound struct {
			Reason string `yaml:"reason"`
		} `yaml:"not_found"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &parsed))
	assert.Equal(t, "NOT_FOUND", parsed.State)
	assert.Equal(t, "no banner slot", parsed.NotFound.Reason)
}

func TestRun_Table(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := analyze.Run(context.Background(), resolver.New(logger.NewNoOp()), analyze.Options{
		HTMLPath:   writeFile(t, "page.html", page),
		Text:       "Pay now",
		Format:     "table",
		Candidates: true,
	}, nil, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "RESOLVED_UNIQUE")
	assert.Contains(t, out.String(), "button.checkout__pay")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	engine := resolver.New(logger.NewNoOp())
	htmlPath := writeFile(t, "page.html", page)

	err := analyze.Run(context.Background(), engine, analyze.Options{HTMLPath: htmlPath, Format: "json"}, nil, &bytes.Buffer{})
	require.ErrorIs(t, err, analyze.ErrNoHint)

	badHint := writeFile(t, "hint.json", `{"primary_selector": ["not", "a", "string"]}`)
	err = analyze.Run(context.Background(), engine, analyze.Options{HTMLPath: htmlPath, HintPath: badHint, Format: "json"}, nil, &bytes.Buffer{})
	require.ErrorIs(t, err, hint.ErrInvalidHint)

	err = analyze.Run(context.Background(), engine, analyze.Options{HTMLPath: "-", HintPath: "-"}, nil, &bytes.Buffer{})
	require.Error(t, err)
}
