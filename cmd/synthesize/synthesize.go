// Package synthesize implements the command that lists the fallback selectors
// generated for an element.
package synthesize

import (
	"context"
	"fmt"
	"io"

	"github.com/jonesrussell/north-cloud/pinpoint/cmd/common"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/generator"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
	"github.com/spf13/cobra"
)

// Options holds the synthesize flags.
type Options struct {
	HTMLPath string
	Selector string
	Format   string
}

// Command creates the synthesize command.
func Command() *cobra.Command {
	opts := Options{}
	cmd := &cobra.Command{
		Use:   "synthesize",
		Short: "List the selectors synthesized for an element, ranked",
		Long: `Locates the first element matching --selector, runs every synthesis
strategy on it and prints the candidates with their verdicts, best first.

Example:
  pinpoint synthesize --html page.html --selector 'button.add-to-cart' --format yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}
			return Run(cmd.Context(), deps.NewEngine(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.HTMLPath, "html", "", "HTML page, - for stdin (required)")
	cmd.Flags().StringVarP(&opts.Selector, "selector", "s", "", "selector locating the element (required)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", common.FormatTable, "output format: table or yaml")
	_ = cmd.MarkFlagRequired("html")
	_ = cmd.MarkFlagRequired("selector")

	return cmd
}

// Run synthesizes candidates for the element and writes them to out.
func Run(ctx context.Context, engine *resolver.Engine, opts Options, in io.Reader, out io.Writer) error {
	markup, err := common.ReadInput(opts.HTMLPath, in)
	if err != nil {
		return err
	}

	el, scored, err := engine.Synthesize(ctx, markup, opts.Selector)
	if err != nil {
		return err
	}

	switch opts.Format {
	case common.FormatTable:
		fmt.Fprintf(out, "Element: %s  %s\n", el.Tag, el.XPath)
		common.RenderCandidates(out, scored)
		return nil
	case common.FormatYAML:
		report, err := generator.GenerateCandidatesYAML(el, scored)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, report)
		return err
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownFormat, opts.Format)
	}
}
