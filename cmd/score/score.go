// Package score implements the command that rates selectors against a page.
package score

import (
	"fmt"
	"io"

	"github.com/jonesrussell/north-cloud/pinpoint/cmd/common"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
	"github.com/spf13/cobra"
)

// Options holds the score flags.
type Options struct {
	HTMLPath string
	Format   string
}

// Command creates the score command.
func Command() *cobra.Command {
	opts := Options{}
	cmd := &cobra.Command{
		Use:   "score SELECTOR...",
		Short: "Score the reliability of selectors against a page",
		Long: `Scores each selector against one parse of the page and prints its match
count, confidence and verdict in argument order.

Example:
  pinpoint score --html page.html '#add' '.btn' 'button:contains("Add")'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}
			return Run(deps.NewEngine(), opts, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.HTMLPath, "html", "", "HTML page, - for stdin (required)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", common.FormatTable, "output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("html")

	return cmd
}

// Run scores selectors and writes the verdicts to out.
func Run(engine *resolver.Engine, opts Options, selectors []string, in io.Reader, out io.Writer) error {
	markup, err := common.ReadInput(opts.HTMLPath, in)
	if err != nil {
		return err
	}

	scored, err := engine.Score(markup, selectors)
	if err != nil {
		return err
	}

	if opts.Format == common.FormatTable {
		common.RenderCandidates(out, scored)
		return nil
	}
	return common.Encode(out, opts.Format, scored)
}
