package plan

import (
	"testing"

	"github.com/jordanmetzner/pathwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlan() *domain.LearningPlan {
	return &domain.LearningPlan{
		Topic:        "Go",
		Level:        "beginner",
		Goal:         "Build a CLI tool",
		Weeks:        2,
		HoursPerWeek: 6,
		Plan: []domain.Week{
			{
				Week: 1, Focus: "Introduction & Setup", Hours: 6,
				Tasks: []domain.Task{
					{Title: "Set up", EffortHours: 3, Deliverable: "Working setup"},
					{Title: "Read", EffortHours: 3, Deliverable: "Notes"},
				},
				Checkpoint: "You can run a basic example.",
			},
			{
				Week: 2, Focus: "Project Kickoff & Design", Hours: 6,
				Tasks: []domain.Task{
					{Title: "Design", EffortHours: 3, Deliverable: "Design doc"},
					{Title: "Build", EffortHours: 3, Deliverable: "First slice"},
				},
				Checkpoint: "You have a running skeleton.",
			},
		},
	}
}

func TestValidate_ValidPlanReturnsEmpty(t *testing.T) {
	assert.Empty(t, Validate(validPlan()))
}

func TestValidate_WeeksMismatch(t *testing.T) {
	p := validPlan()
	p.Weeks = 3 // only 2 entries present

	errs := Validate(p)

	require.Len(t, errs, 1)
	assert.Equal(t, domain.KindWeeksMismatch, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "2")
	assert.Contains(t, errs[0].Message, "3")
}

func TestValidate_HoursMismatch(t *testing.T) {
	p := validPlan()
	p.Plan[0].Hours = 10
	p.Plan[0].Tasks = []domain.Task{
		{Title: "A", EffortHours: 4, Deliverable: "a"},
		{Title: "B", EffortHours: 4, Deliverable: "b"},
	}
	p.HoursPerWeek = 10

	errs := Validate(p)

	require.Len(t, errs, 1)
	assert.Equal(t, domain.KindHoursMismatch, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "week 1")
	assert.Contains(t, errs[0].Message, "10.00")
	assert.Contains(t, errs[0].Message, "8.00")
}

func TestValidate_HoursExceeded_BothWeeks(t *testing.T) {
	p := validPlan()
	p.HoursPerWeek = 5
	p.Plan[0].Hours = 8
	p.Plan[0].Tasks = []domain.Task{{Title: "A", EffortHours: 8, Deliverable: "a"}}
	p.Plan[1].Hours = 6
	p.Plan[1].Tasks = []domain.Task{{Title: "B", EffortHours: 6, Deliverable: "b"}}

	errs := Validate(p)

	require.Len(t, errs, 2)
	assert.Equal(t, domain.KindHoursExceeded, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "week 1")
	assert.Equal(t, domain.KindHoursExceeded, errs[1].Kind)
	assert.Contains(t, errs[1].Message, "week 2")
}

func TestValidate_MismatchReportedBeforeExceeded_SameWeek(t *testing.T) {
	p := validPlan()
	p.Weeks = 1
	p.HoursPerWeek = 5
	p.Plan = p.Plan[:1]
	p.Plan[0].Hours = 9 // exceeds budget AND disagrees with task sum of 6

	errs := Validate(p)

	require.Len(t, errs, 2)
	assert.Equal(t, domain.KindHoursMismatch, errs[0].Kind)
	assert.Equal(t, domain.KindHoursExceeded, errs[1].Kind)
}

func TestValidate_ToleranceAbsorbsFloatNoise(t *testing.T) {
	// 1.1 + 1.1 + 1.8 evaluates fractionally above 4 in float64.
	p := validPlan()
	p.Weeks = 1
	p.HoursPerWeek = 4
	p.Plan = []domain.Week{{
		Week: 1, Focus: "f", Hours: 4,
		Tasks: []domain.Task{
			{Title: "A", EffortHours: 1.1, Deliverable: "a"},
			{Title: "B", EffortHours: 1.1, Deliverable: "b"},
			{Title: "C", EffortHours: 1.8, Deliverable: "c"},
		},
		Checkpoint: "c",
	}}

	assert.Empty(t, Validate(p))
}

func TestValidate_DoesNotShortCircuit(t *testing.T) {
	p := validPlan()
	p.Weeks = 5 // weeks mismatch
	p.Plan[1].Hours = 9.5

	errs := Validate(p)

	require.Len(t, errs, 3)
	assert.Equal(t, domain.KindWeeksMismatch, errs[0].Kind)
	assert.Equal(t, domain.KindHoursMismatch, errs[1].Kind)
	assert.Equal(t, domain.KindHoursExceeded, errs[2].Kind)
}
