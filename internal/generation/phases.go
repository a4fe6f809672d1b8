package generation

import "github.com/jordanmetzner/pathwise/internal/domain"

// PhaseFor classifies a 1-indexed week into its phase based on relative
// position. One-week plans jump straight to application; two-week plans
// split foundation/application. From three weeks up the plan divides into
// rough thirds, with the <= boundaries favoring the earlier phase when the
// count is not divisible by three.
//
// Both the pre-count pass and the generation loop go through this single
// function so the two can never disagree.
func PhaseFor(week, totalWeeks int) domain.Phase {
	switch totalWeeks {
	case 1:
		return domain.PhaseApplication
	case 2:
		if week == 1 {
			return domain.PhaseFoundation
		}
		return domain.PhaseApplication
	}

	ratio := float64(week) / float64(totalWeeks)
	switch {
	case ratio <= 1.0/3.0:
		return domain.PhaseFoundation
	case ratio <= 2.0/3.0:
		return domain.PhaseDevelopment
	default:
		return domain.PhaseApplication
	}
}

// CountPhase returns how many weeks of a plan classify into the given phase.
func CountPhase(totalWeeks int, phase domain.Phase) int {
	n := 0
	for w := 1; w <= totalWeeks; w++ {
		if PhaseFor(w, totalWeeks) == phase {
			n++
		}
	}
	return n
}

// PositionFor classifies a zero-based occurrence index among the total
// occurrences of its phase. A sole occurrence counts as first.
func PositionFor(index, total int) domain.OccurrencePosition {
	switch {
	case index == 0:
		return domain.PositionFirst
	case index == total-1:
		return domain.PositionLast
	default:
		return domain.PositionMiddle
	}
}

// TasksPerWeek returns the task count for every week of a plan, a function
// of the weekly hour budget alone.
func TasksPerWeek(hoursPerWeek float64) int {
	switch {
	case hoursPerWeek <= 4:
		return 2
	case hoursPerWeek <= 14:
		return 3
	default:
		return 4
	}
}
