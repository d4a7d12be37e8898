// Package validate implements the command that re-checks a stored selector
// against a fresh page.
package validate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jonesrussell/north-cloud/pinpoint/cmd/common"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
	"github.com/spf13/cobra"
)

// ErrSelectorStale is returned when the selector no longer matches exactly one element.
var ErrSelectorStale = errors.New("selector does not match exactly one element")

// Options holds the validate flags.
type Options struct {
	HTMLPath string
	Selector string
}

// Command creates the validate command.
func Command() *cobra.Command {
	opts := Options{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a selector still matches exactly one element",
		Long: `Re-validates a previously stored selector against a page. Exits non-zero
when the selector matches no element or several.

Example:
  pinpoint validate --html page.html --selector '[data-testid="add-button"]'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}
			return Run(deps.NewEngine(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.HTMLPath, "html", "", "HTML page, - for stdin (required)")
	cmd.Flags().StringVarP(&opts.Selector, "selector", "s", "", "selector to check (required)")
	_ = cmd.MarkFlagRequired("html")
	_ = cmd.MarkFlagRequired("selector")

	return cmd
}

// Run validates opts.Selector and prints what it matched.
func Run(engine *resolver.Engine, opts Options, in io.Reader, out io.Writer) error {
	markup, err := common.ReadInput(opts.HTMLPath, in)
	if err != nil {
		return err
	}

	res, err := engine.Validate(opts.Selector, markup)
	if err != nil {
		return err
	}

	t := common.NewTable(out)
	t.AppendRow(table.Row{"Selector", opts.Selector})
	t.AppendRow(table.Row{"Valid", !res.Invalid})
	t.AppendRow(table.Row{"Matches", res.Count})
	t.AppendRow(table.Row{"Elements", strings.Join(res.Descriptors, "\n")})
	t.AppendRow(table.Row{"Unique", res.Unique()})
	t.Render()

	if !res.Unique() {
		return fmt.Errorf("%w: %d matches", ErrSelectorStale, res.Count)
	}
	return nil
}
