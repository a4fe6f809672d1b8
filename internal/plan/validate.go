package plan

import (
	"fmt"
	"math"

	"github.com/jordanmetzner/pathwise/internal/domain"
)

// HoursTolerance is the slack allowed between a week's recorded hours and
// the sum of its task efforts, after rounding both to two decimals. It
// absorbs float representation noise (e.g. 1.1+1.1+1.8 landing fractionally
// above 4) while staying well below the one-decimal granularity the
// generator emits, so genuine mismatches always surface.
const HoursTolerance = 0.01

// Validate checks a candidate plan against the three business invariants
// and returns every violation found, in plan order. It never short-circuits
// and never fails: an empty result means the plan is fully valid.
//
// Check order is fixed: the weeks-count check first, then for each week the
// hours-sum check before the hours-budget check.
func Validate(p *domain.LearningPlan) []domain.ValidationError {
	var errs []domain.ValidationError

	if len(p.Plan) != p.Weeks {
		errs = append(errs, domain.ValidationError{
			Kind: domain.KindWeeksMismatch,
			Message: fmt.Sprintf("plan contains %d week entries but declares weeks=%d",
				len(p.Plan), p.Weeks),
		})
	}

	for _, w := range p.Plan {
		taskSum := domain.Round2(w.TaskHours())
		hours := domain.Round2(w.Hours)

		if math.Abs(taskSum-hours) > HoursTolerance {
			errs = append(errs, domain.ValidationError{
				Kind: domain.KindHoursMismatch,
				Message: fmt.Sprintf("week %d: hours=%.2f but task efforts sum to %.2f",
					w.Week, hours, taskSum),
			})
		}

		if hours > p.HoursPerWeek {
			errs = append(errs, domain.ValidationError{
				Kind: domain.KindHoursExceeded,
				Message: fmt.Sprintf("week %d: hours=%.2f exceeds weekly budget %.2f",
					w.Week, hours, p.HoursPerWeek),
			})
		}
	}

	return errs
}
