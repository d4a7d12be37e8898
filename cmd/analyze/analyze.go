// Package analyze implements the command that resolves a hint against a page
// and prints the resulting InjectionPoint.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/common"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/hint"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
	"github.com/spf13/cobra"
)

// ErrNoHint is returned when neither --hint nor --selector/--text is given.
var ErrNoHint = errors.New("one of --hint, --selector or --text is required")

// Options holds the analyze flags.
type Options struct {
	HTMLPath     string
	HintPath     string
	Selector     string
	Alternatives []string
	Text         string
	Format       string
	Candidates   bool
}

// Command creates the analyze command.
func Command() *cobra.Command {
	opts := Options{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Resolve a hint against a page and print the injection point",
		Long: `Resolves an oracle hint (a JSON file or a selector and text given as flags)
against an HTML page, synthesizes and scores fallback selectors and prints the
resulting injection point.

Example:
  pinpoint analyze --html page.html --hint hint.json
  curl -s https://shop.example | pinpoint analyze --html - --selector "#add" --format table`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}
			return Run(cmd.Context(), deps.NewEngine(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.HTMLPath, "html", "", "HTML page to analyze, - for stdin (required)")
	cmd.Flags().StringVar(&opts.HintPath, "hint", "", "JSON hint file, - for stdin")
	cmd.Flags().StringVarP(&opts.Selector, "selector", "s", "", "primary selector guess")
	cmd.Flags().StringSliceVar(&opts.Alternatives, "alt", nil, "alternative selector guesses")
	cmd.Flags().StringVarP(&opts.Text, "text", "t", "", "visible text of the target element")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", common.FormatJSON, "output format: json, yaml or table")
	cmd.Flags().BoolVar(&opts.Candidates, "candidates", false, "include every scored candidate")
	_ = cmd.MarkFlagRequired("html")

	return cmd
}

// Run executes one analysis and writes the result to out.
func Run(ctx context.Context, engine *resolver.Engine, opts Options, in io.Reader, out io.Writer) error {
	if opts.HTMLPath == "-" && opts.HintPath == "-" {
		return errors.New("--html and --hint cannot both read stdin")
	}

	markup, err := common.ReadInput(opts.HTMLPath, in)
	if err != nil {
		return err
	}
	h, err := loadHint(opts, in)
	if err != nil {
		return err
	}

	result, err := engine.Analyze(ctx, resolver.Request{HTML: markup, Hint: h})
	if err != nil {
		return err
	}
	if !opts.Candidates {
		result.Candidates = nil
	}

	if opts.Format == common.FormatTable {
		renderResult(out, result)
		return nil
	}
	return common.Encode(out, opts.Format, result)
}

func loadHint(opts Options, in io.Reader) (domain.Hint, error) {
	if opts.HintPath != "" {
		raw, err := common.ReadInput(opts.HintPath, in)
		if err != nil {
			return domain.Hint{}, err
		}
		decoder, err := hint.NewDecoder()
		if err != nil {
			return domain.Hint{}, err
		}
		return decoder.Decode([]byte(raw))
	}

	if strings.TrimSpace(opts.Selector) == "" && strings.TrimSpace(opts.Text) == "" && len(opts.Alternatives) == 0 {
		return domain.Hint{}, ErrNoHint
	}
	return domain.Hint{
		PrimarySelector:      opts.Selector,
		AlternativeSelectors: opts.Alternatives,
		Text:                 opts.Text,
	}, nil
}

func renderResult(out io.Writer, result *resolver.Result) {
	t := common.NewTable(out)
	t.AppendRow(table.Row{"State", result.State})
	if result.NotFound != nil {
		t.AppendRow(table.Row{"Reason", result.NotFound.Reason})
		t.AppendRow(table.Row{"Suggestions", strings.Join(result.NotFound.Suggestions, "\n")})
		t.Render()
		return
	}

	point := result.InjectionPoint
	t.AppendRow(table.Row{"Resolved By", result.ResolvedBy})
	t.AppendRow(table.Row{"Matches", result.MatchCount})
	t.AppendRow(table.Row{"Selector", point.Selector})
	t.AppendRow(table.Row{"Confidence", fmt.Sprintf("%.2f", point.Confidence)})
	t.AppendRow(table.Row{"Strategy", point.Strategy})
	t.AppendRow(table.Row{"Alternatives", strings.Join(point.AlternativeSelectors, "\n")})
	t.AppendRow(table.Row{"Reasoning", point.Reasoning})
	t.AppendRow(table.Row{"Text", point.OriginalText})
	t.AppendRow(table.Row{"XPath", result.XPath})
	t.Render()

	if len(result.Candidates) > 0 {
		common.RenderCandidates(out, result.Candidates)
	}
}
