package domain

import "math"

// PlanInputs is the sole entry point into plan generation. It is built once
// per run by the CLI (flags or interactive form) and never mutated.
// Callers must ensure Weeks and HoursPerWeek are positive before handing it
// to the generator.
type PlanInputs struct {
	Topic        string  `json:"topic"`
	Level        string  `json:"level"`
	Goal         string  `json:"goal"`
	Weeks        int     `json:"weeks"`
	HoursPerWeek float64 `json:"hours_per_week"`
	Constraints  string  `json:"constraints,omitempty"`
}

// Task is a single unit of work within a week. It has no identity of its
// own; it lives and dies with its parent week.
type Task struct {
	Title       string  `json:"title"`
	EffortHours float64 `json:"effort_hours"`
	Deliverable string  `json:"deliverable"`
}

// Week is one entry of a learning plan. Hours must equal the sum of its
// tasks' effort within tolerance, and must not exceed the plan's weekly
// budget.
type Week struct {
	Week       int     `json:"week"`
	Focus      string  `json:"focus"`
	Hours      float64 `json:"hours"`
	Tasks      []Task  `json:"tasks"`
	Checkpoint string  `json:"checkpoint"`
}

// TaskHours returns the sum of effort hours across the week's tasks.
func (w Week) TaskHours() float64 {
	var sum float64
	for _, t := range w.Tasks {
		sum += t.EffortHours
	}
	return sum
}

// LearningPlan is the root value produced by the generator. It echoes the
// scalar inputs and carries the ordered weeks. Weeks must equal len(Plan)
// and week numbers run 1..Weeks without gaps.
type LearningPlan struct {
	Topic        string  `json:"topic"`
	Level        string  `json:"level"`
	Goal         string  `json:"goal"`
	Weeks        int     `json:"weeks"`
	HoursPerWeek float64 `json:"hours_per_week"`
	Plan         []Week  `json:"plan"`
}

// ValidationError is a single business invariant violation found in a plan.
type ValidationError struct {
	Kind    ValidationKind `json:"type"`
	Message string         `json:"message"`
}

func (e ValidationError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
