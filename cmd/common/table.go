package common

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
)

// NewTable returns a table writer rendering to w in the CLI style.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// RenderCandidates prints scored candidates, one row each.
func RenderCandidates(w io.Writer, candidates []domain.ScoredCandidate) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"#", "Selector", "Tier", "Matches", "Confidence", "Works", "Reason"})
	for i, c := range candidates {
		t.AppendRow(table.Row{
			i + 1,
			c.Selector,
			c.Tier.String(),
			c.Verdict.MatchCount,
			fmt.Sprintf("%.2f", c.Verdict.Confidence),
			c.Verdict.Works,
			c.Verdict.Reason,
		})
	}
	t.Render()
}
