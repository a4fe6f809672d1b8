package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/jordanmetzner/pathwise/internal/cli/formatter"
	"github.com/jordanmetzner/pathwise/internal/domain"
	"github.com/jordanmetzner/pathwise/internal/generation"
	"github.com/jordanmetzner/pathwise/internal/intelligence"
	"github.com/jordanmetzner/pathwise/internal/plan"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type generateOpts struct {
	topic       string
	level       string
	goal        string
	weeks       int
	hours       float64
	constraints string
	output      string
	jsonOnly    bool
}

func addInputFlags(fs *pflag.FlagSet, o *generateOpts) {
	fs.StringVarP(&o.topic, "topic", "t", "", "subject to learn")
	fs.StringVarP(&o.level, "level", "l", "beginner", "current skill level")
	fs.StringVarP(&o.goal, "goal", "g", "", "what reaching the topic should enable")
	fs.IntVarP(&o.weeks, "weeks", "w", 0, "plan duration in weeks")
	fs.Float64Var(&o.hours, "hours", 0, "hour budget per week")
	fs.StringVarP(&o.constraints, "constraints", "c", "", "free-text scheduling constraints")
}

func newGenerateCmd(app *App) *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a week-by-week learning plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, &opts)
		},
	}

	addInputFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "path for the JSON artifact (default pathwise-<topic>-<id>.json)")
	cmd.Flags().BoolVar(&opts.jsonOnly, "json", false, "print the raw JSON instead of the formatted plan")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *App, opts *generateOpts) error {
	inputs := domain.PlanInputs{
		Topic:        opts.topic,
		Level:        opts.level,
		Goal:         opts.goal,
		Weeks:        opts.weeks,
		HoursPerWeek: opts.hours,
		Constraints:  opts.constraints,
	}

	if missingInputs(inputs) {
		if !app.interactive() {
			return fmt.Errorf("missing required inputs: provide --topic, --goal, --weeks and --hours, or run from a terminal for the interactive form")
		}
		if err := runInputsForm(&inputs); err != nil {
			return err
		}
	}

	if errs := plan.CheckInputs(inputs); len(errs) > 0 {
		return fmt.Errorf("invalid inputs: %w", errors.Join(errs...))
	}

	result, err := draftPlan(cmd, app, inputs)
	if err != nil {
		return err
	}

	// The generator is invariant-safe by construction and the LLM path
	// re-validates internally; this is defense in depth before anything is
	// written to disk.
	if violations := plan.Validate(result.Plan); len(violations) > 0 {
		return fmt.Errorf("generated plan failed validation: %s", violations[0].Error())
	}

	data, err := plan.Render(result.Plan)
	if err != nil {
		return err
	}

	outPath := opts.output
	if outPath == "" {
		outPath = DefaultArtifactName(inputs.Topic)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing plan artifact: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.jsonOnly {
		fmt.Fprint(out, string(data))
	} else {
		fmt.Fprint(out, formatter.FormatPlan(result.Plan))
	}
	fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("saved to %s (source: %s)", outPath, result.Source)))

	return nil
}

// draftPlan selects the generation strategy: the LLM-backed drafting
// service when wired, the deterministic generator otherwise. A spinner
// covers the model call when a human is watching.
func draftPlan(cmd *cobra.Command, app *App, inputs domain.PlanInputs) (*intelligence.PlanDraft, error) {
	if app.Draft == nil {
		return &intelligence.PlanDraft{
			Plan:   generation.Generate(inputs),
			Source: intelligence.SourceDeterministic,
		}, nil
	}

	var (
		draft    *intelligence.PlanDraft
		draftErr error
	)
	run := func() {
		draft, draftErr = app.Draft.Draft(cmd.Context(), inputs)
	}

	if app.interactive() {
		if err := spinner.New().Title("Drafting your learning plan...").Action(run).Run(); err != nil {
			return nil, err
		}
	} else {
		run()
	}

	if draftErr != nil {
		return nil, draftErr
	}
	return draft, nil
}

func missingInputs(in domain.PlanInputs) bool {
	return in.Topic == "" || in.Goal == "" || in.Weeks == 0 || in.HoursPerWeek == 0
}
