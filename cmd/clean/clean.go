// Package clean implements the command that strips text predicates from selectors.
package clean

import (
	"fmt"
	"io"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/cleaner"
	"github.com/spf13/cobra"
)

// Command creates the clean command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "clean SELECTOR...",
		Short: "Remove :contains() predicates and dangling combinators from selectors",
		Example: `  pinpoint clean '.cart > button:contains("Add to cart")'
  .cart > button`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(args, cmd.OutOrStdout())
		},
	}
}

// Run prints the cleaned form of each selector on its own line.
func Run(selectors []string, out io.Writer) error {
	for _, s := range selectors {
		if _, err := fmt.Fprintln(out, cleaner.Clean(s)); err != nil {
			return err
		}
	}
	return nil
}
