package intelligence

import (
	"fmt"
	"strings"

	"github.com/jordanmetzner/pathwise/internal/domain"
)

const planDraftSystemPrompt = `You are a learning-plan designer for Pathwise, a CLI study planner.

You receive a topic, skill level, goal, duration in weeks, a weekly hour budget, and optional constraints. You MUST output ONLY a JSON object with exactly this structure:

{
  "topic": "...",
  "level": "...",
  "goal": "...",
  "weeks": 4,
  "hours_per_week": 10,
  "plan": [
    {
      "week": 1,
      "focus": "theme of the week",
      "hours": 10,
      "tasks": [
        {"title": "...", "effort_hours": 3.3, "deliverable": "a concrete, checkable output"}
      ],
      "checkpoint": "what the learner can demonstrate after this week"
    }
  ]
}

## Hard Rules

- plan must contain exactly the requested number of weeks, numbered 1..N with no gaps
- every week needs at least one task and a non-empty focus and checkpoint
- each week's hours must equal the sum of its tasks' effort_hours exactly
- no week's hours may exceed the weekly hour budget
- echo topic, level, goal, weeks and hours_per_week unchanged
- structure the plan in three stages: foundations first, skill development in the middle, and a concrete project applying the goal at the end
- respect the learner's stated constraints when shaping tasks
- every deliverable must be something the learner can show or check, not "understand X"

Output ONLY the JSON object. No markdown fences. No text outside the JSON.`

// buildDraftPrompt renders the user inputs into the drafting prompt.
func buildDraftPrompt(in domain.PlanInputs) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	fmt.Fprintf(&b, "Skill level: %s\n", in.Level)
	fmt.Fprintf(&b, "Goal: %s\n", in.Goal)
	fmt.Fprintf(&b, "Duration: %d weeks\n", in.Weeks)
	fmt.Fprintf(&b, "Weekly budget: %g hours\n", in.HoursPerWeek)
	if in.Constraints != "" {
		fmt.Fprintf(&b, "Constraints: %s\n", in.Constraints)
	}
	b.WriteString("\nProduce the learning plan JSON now.")

	return b.String()
}

// buildFixPrompt renders a corrective prompt carrying the validation
// failures of a prior attempt, so the model can repair rather than start
// over blind.
func buildFixPrompt(in domain.PlanInputs, priorErrors []string, priorRaw string) string {
	var b strings.Builder

	b.WriteString(buildDraftPrompt(in))
	b.WriteString("\n\nYour previous plan violated these invariants:\n")
	for _, msg := range priorErrors {
		fmt.Fprintf(&b, "- %s\n", msg)
	}
	if priorRaw != "" {
		b.WriteString("\nPrevious plan for reference:\n")
		b.WriteString(priorRaw)
		b.WriteString("\n")
	}
	b.WriteString("\nReturn a corrected plan JSON that satisfies every rule.")

	return b.String()
}
