package plan

import (
	"testing"

	"github.com/jordanmetzner/pathwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedJSON = `{
  "topic": "TypeScript",
  "level": "beginner",
  "goal": "Build a REST API",
  "weeks": 1,
  "hours_per_week": 6,
  "plan": [
    {
      "week": 1,
      "focus": "Project Kickoff & Design",
      "hours": 6,
      "tasks": [
        {"title": "Design", "effort_hours": 3, "deliverable": "Design doc"},
        {"title": "Build", "effort_hours": 3, "deliverable": "First slice"}
      ],
      "checkpoint": "You have a running skeleton."
    }
  ]
}`

func TestParse_WellFormed(t *testing.T) {
	p, err := Parse([]byte(wellFormedJSON))

	require.NoError(t, err)
	assert.Equal(t, "TypeScript", p.Topic)
	assert.Equal(t, 1, p.Weeks)
	require.Len(t, p.Plan, 1)
	assert.Len(t, p.Plan[0].Tasks, 2)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"topic": `))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPlan)
}

func TestParse_WrongFieldType(t *testing.T) {
	_, err := Parse([]byte(`{"topic": "Go", "weeks": "four", "hours_per_week": 5, "plan": []}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPlan)
}

func TestParse_StructuralDefectsAccumulated(t *testing.T) {
	raw := `{
	  "topic": "",
	  "level": "beginner",
	  "goal": "g",
	  "weeks": 0,
	  "hours_per_week": -2,
	  "plan": [
	    {"week": 0, "focus": "f", "hours": 0, "tasks": [], "checkpoint": "c"}
	  ]
	}`

	_, err := Parse([]byte(raw))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPlan)
	assert.Contains(t, err.Error(), "topic is required")
	assert.Contains(t, err.Error(), "weeks must be positive")
	assert.Contains(t, err.Error(), "hours_per_week must be positive")
	assert.Contains(t, err.Error(), "plan[0].week must be positive")
	assert.Contains(t, err.Error(), "plan[0].hours must be positive")
	assert.Contains(t, err.Error(), "plan[0].tasks must contain at least one task")
}

func TestParse_EmptyPlanRejected(t *testing.T) {
	_, err := Parse([]byte(`{"topic": "Go", "level": "", "goal": "", "weeks": 1, "hours_per_week": 5, "plan": []}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one week")
}

func TestParse_TaskDefects(t *testing.T) {
	raw := `{
	  "topic": "Go", "level": "b", "goal": "g", "weeks": 1, "hours_per_week": 5,
	  "plan": [
	    {"week": 1, "focus": "f", "hours": 5, "checkpoint": "c",
	     "tasks": [{"title": "", "effort_hours": -1, "deliverable": ""}]}
	  ]
	}`

	_, err := Parse([]byte(raw))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan[0].tasks[0].title is required")
	assert.Contains(t, err.Error(), "plan[0].tasks[0].effort_hours must be positive")
	assert.Contains(t, err.Error(), "plan[0].tasks[0].deliverable is required")
}

func TestCheckInputs(t *testing.T) {
	tests := []struct {
		name    string
		in      domain.PlanInputs
		defects int
	}{
		{"valid", domain.PlanInputs{Topic: "Go", Weeks: 4, HoursPerWeek: 10}, 0},
		{"blank topic", domain.PlanInputs{Topic: "  ", Weeks: 4, HoursPerWeek: 10}, 1},
		{"zero weeks", domain.PlanInputs{Topic: "Go", Weeks: 0, HoursPerWeek: 10}, 1},
		{"negative hours", domain.PlanInputs{Topic: "Go", Weeks: 4, HoursPerWeek: -1}, 1},
		{"everything wrong", domain.PlanInputs{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, CheckInputs(tt.in), tt.defects)
		})
	}
}
