package generator

import (
	"bytes"
	"fmt"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// CandidateReport is the YAML shape of one synthesis run.
type CandidateReport struct {
	Element    ElementSummary           `yaml:"element"`
	Candidates []domain.ScoredCandidate `yaml:"candidates"`
}

// ElementSummary identifies the element selectors were synthesized for.
type ElementSummary struct {
	Tag   string   `yaml:"tag"`
	ID    string   `yaml:"id,omitempty"`
	Class []string `yaml:"class,omitempty"`
	Text  string   `yaml:"text,omitempty"`
	XPath string   `yaml:"xpath,omitempty"`
}

// GenerateCandidatesYAML renders scored candidates for el as a YAML document.
func GenerateCandidatesYAML(el document.Element, scored []domain.ScoredCandidate) (string, error) {
	report := CandidateReport{
		Element: ElementSummary{
			Tag:   el.Tag,
			ID:    el.ID,
			Class: el.Classes,
			Text:  truncateText(el.Text, sampleTextLength),
			XPath: el.XPath,
		},
		Candidates: scored,
	}
	if report.Candidates == nil {
		report.Candidates = []domain.ScoredCandidate{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(report); err != nil {
		return "", fmt.Errorf("failed to encode candidates: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode candidates: %w", err)
	}
	return buf.String(), nil
}

const sampleTextLength = 100

func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
