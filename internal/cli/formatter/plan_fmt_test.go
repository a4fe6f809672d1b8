package formatter

import (
	"strings"
	"testing"

	"github.com/jordanmetzner/pathwise/internal/domain"
	"github.com/jordanmetzner/pathwise/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlan_ContainsAllWeeks(t *testing.T) {
	p := generation.Generate(domain.PlanInputs{
		Topic: "TypeScript", Level: "beginner", Goal: "Build a REST API",
		Weeks: 4, HoursPerWeek: 10,
	})

	out := FormatPlan(p)

	assert.Contains(t, out, "Learning Plan: TypeScript")
	assert.Contains(t, out, "Goal: Build a REST API")
	assert.Contains(t, out, "4 weeks · 10 hours/week")
	for _, w := range p.Plan {
		assert.Contains(t, out, w.Focus)
		assert.Contains(t, out, w.Checkpoint)
		for _, task := range w.Tasks {
			assert.Contains(t, out, task.Title)
			assert.Contains(t, out, task.Deliverable)
		}
	}
}

func TestFormatViolations_Empty(t *testing.T) {
	out := FormatViolations(nil)

	assert.Contains(t, out, "plan is valid")
}

func TestFormatViolations_ListsEveryFinding(t *testing.T) {
	out := FormatViolations([]domain.ValidationError{
		{Kind: domain.KindWeeksMismatch, Message: "plan contains 2 week entries but declares weeks=3"},
		{Kind: domain.KindHoursExceeded, Message: "week 1: hours=8.00 exceeds weekly budget 5.00"},
	})

	assert.Contains(t, out, "2 violation(s)")
	assert.Contains(t, out, "weeks_mismatch")
	assert.Contains(t, out, "hours_exceeded")
	assert.Contains(t, out, "weekly budget 5.00")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"WEEK", "FOCUS"},
		[][]string{
			{"1", "Introduction & Setup"},
			{"2", "Fundamentals, Part 2"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[0], "WEEK")
	assert.Contains(t, lines[2], "Introduction & Setup")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
