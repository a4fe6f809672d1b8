package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/jordanmetzner/pathwise/internal/domain"
)

// runInputsForm collects any missing plan inputs through an interactive
// form. Flag values already set are used as prefills.
func runInputsForm(in *domain.PlanInputs) error {
	weeksStr := ""
	if in.Weeks > 0 {
		weeksStr = strconv.Itoa(in.Weeks)
	}
	hoursStr := ""
	if in.HoursPerWeek > 0 {
		hoursStr = strconv.FormatFloat(in.HoursPerWeek, 'g', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to learn?").
				Placeholder("e.g. TypeScript").
				Value(&in.Topic).
				Validate(validateRequired("topic")),
			huh.NewInput().
				Title("Current level").
				Placeholder("beginner").
				Value(&in.Level),
			huh.NewInput().
				Title("What should it enable you to do?").
				Placeholder("e.g. Build a REST API").
				Value(&in.Goal).
				Validate(validateRequired("goal")),
			huh.NewInput().
				Title("Duration (weeks)").
				Placeholder("4").
				Value(&weeksStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Hours per week").
				Placeholder("10").
				Value(&hoursStr).
				Validate(validatePositiveFloat),
			huh.NewText().
				Title("Constraints (optional)").
				Placeholder("e.g. weekday evenings only").
				Value(&in.Constraints),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("collecting inputs: %w", err)
	}

	in.Weeks, _ = strconv.Atoi(strings.TrimSpace(weeksStr))
	in.HoursPerWeek, _ = strconv.ParseFloat(strings.TrimSpace(hoursStr), 64)
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
