package cli

import (
	"fmt"
	"os"

	"github.com/jordanmetzner/pathwise/internal/cli/formatter"
	"github.com/jordanmetzner/pathwise/internal/plan"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <plan.json>",
		Short: "Validate a plan file against the business invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading plan file: %w", err)
			}

			// Structural rejection happens before any invariant check; a
			// malformed file is not a "plan with violations".
			p, err := plan.Parse(data)
			if err != nil {
				return err
			}

			violations := plan.Validate(p)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatViolations(violations))

			if len(violations) > 0 {
				return fmt.Errorf("plan failed validation with %d violation(s)", len(violations))
			}
			return nil
		},
	}
}
