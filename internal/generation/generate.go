// Package generation builds fully-formed learning plans from user inputs.
//
// The generator is deterministic: identical inputs always yield identical
// plans, with every invariant the validator checks satisfied by
// construction. Each week is classified into a phase by position, draws its
// tasks from that phase's rotating template banks, and has the weekly hour
// budget distributed across its tasks so the recorded hours always equal
// the task effort sum exactly.
package generation

import (
	"github.com/jordanmetzner/pathwise/internal/domain"
)

// Generate maps inputs to a complete, self-consistent learning plan. The
// only precondition is that Weeks and HoursPerWeek are positive; under it,
// Generate always succeeds.
func Generate(inputs domain.PlanInputs) *domain.LearningPlan {
	// The application phase needs its total occurrence count up front so
	// first/middle/last content can be assigned. Pre-scan with the same
	// classifier the loop uses.
	appTotal := CountPhase(inputs.Weeks, domain.PhaseApplication)
	taskCount := TasksPerWeek(inputs.HoursPerWeek)

	counters := map[domain.Phase]int{}
	weeks := make([]domain.Week, 0, inputs.Weeks)

	for w := 1; w <= inputs.Weeks; w++ {
		phase := PhaseFor(w, inputs.Weeks)
		index := counters[phase]
		counters[phase]++

		pos := domain.PositionMiddle
		if phase == domain.PhaseApplication {
			pos = PositionFor(index, appTotal)
		}

		templates := bankFor(phase, index, pos)
		if len(templates) > taskCount {
			templates = templates[:taskCount]
		}

		efforts := DistributeHours(inputs.HoursPerWeek, len(templates))

		tasks := make([]domain.Task, len(templates))
		for i, tpl := range templates {
			tasks[i] = domain.Task{
				Title:       expand(tpl.Title, inputs.Topic, inputs.Goal),
				EffortHours: efforts[i],
				Deliverable: expand(tpl.Deliverable, inputs.Topic, inputs.Goal),
			}
		}

		week := domain.Week{
			Week:       w,
			Focus:      focusFor(phase, index, pos),
			Tasks:      tasks,
			Checkpoint: checkpointFor(phase, index, pos, inputs.Topic, inputs.Goal),
		}
		// Recompute hours from the assigned efforts rather than copying the
		// budget, closing any residual floating-point gap.
		week.Hours = domain.Round2(week.TaskHours())

		weeks = append(weeks, week)
	}

	return &domain.LearningPlan{
		Topic:        inputs.Topic,
		Level:        inputs.Level,
		Goal:         inputs.Goal,
		Weeks:        inputs.Weeks,
		HoursPerWeek: inputs.HoursPerWeek,
		Plan:         weeks,
	}
}

// Fix is the deterministic correction path: given the original inputs and
// the validation messages of a prior attempt, it returns a corrected plan.
// The contract is retry-with-feedback; since the deterministic generator
// cannot produce violations, no useful signal exists in the errors and the
// result is a plain re-generation. Strategies backed by an external model
// thread the errors into their prompt instead (see intelligence package).
func Fix(inputs domain.PlanInputs, priorErrors []string, priorRaw string) *domain.LearningPlan {
	_ = priorErrors
	_ = priorRaw
	return Generate(inputs)
}
