// Package cli wires the pathwise commands: plan generation and candidate
// plan checking.
package cli

import (
	"github.com/jordanmetzner/pathwise/internal/intelligence"
	"github.com/spf13/cobra"
)

// App holds the collaborators CLI commands depend on.
type App struct {
	// Draft is the LLM-backed drafting strategy. Nil when the LLM path is
	// disabled; commands then use the deterministic generator directly.
	Draft intelligence.PlanDraftService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pathwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathwise",
		Short:         "Week-by-week learning plan generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newCheckCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
