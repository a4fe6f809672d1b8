package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jordanmetzner/pathwise/internal/domain"
)

// ErrMalformedPlan indicates a candidate plan failed structural parsing
// before business validation could run. It is a distinct condition from the
// three ValidationError kinds, which only ever describe well-formed plans.
var ErrMalformedPlan = errors.New("malformed plan")

// Parse decodes and structurally checks a candidate LearningPlan from JSON.
// Every structural defect found (missing field, non-positive numeric, empty
// week or task list) is accumulated into the returned error, wrapped in
// ErrMalformedPlan. Only a structurally sound plan reaches Validate.
func Parse(data []byte) (*domain.LearningPlan, error) {
	var p domain.LearningPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPlan, err)
	}

	if errs := CheckShape(&p); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPlan, joinErrs(errs))
	}

	return &p, nil
}

// CheckShape verifies the structural preconditions of a decoded plan.
// Returns a slice of all defects found.
func CheckShape(p *domain.LearningPlan) []error {
	var errs []error

	if p.Topic == "" {
		errs = append(errs, fmt.Errorf("topic is required"))
	}
	if p.Weeks <= 0 {
		errs = append(errs, fmt.Errorf("weeks must be positive, got %d", p.Weeks))
	}
	if p.HoursPerWeek <= 0 {
		errs = append(errs, fmt.Errorf("hours_per_week must be positive, got %g", p.HoursPerWeek))
	}
	if len(p.Plan) == 0 {
		errs = append(errs, fmt.Errorf("plan must contain at least one week"))
	}

	for i, w := range p.Plan {
		prefix := fmt.Sprintf("plan[%d]", i)

		if w.Week <= 0 {
			errs = append(errs, fmt.Errorf("%s.week must be positive, got %d", prefix, w.Week))
		}
		if w.Hours <= 0 {
			errs = append(errs, fmt.Errorf("%s.hours must be positive, got %g", prefix, w.Hours))
		}
		if len(w.Tasks) == 0 {
			errs = append(errs, fmt.Errorf("%s.tasks must contain at least one task", prefix))
		}

		for j, t := range w.Tasks {
			tp := fmt.Sprintf("%s.tasks[%d]", prefix, j)
			if t.Title == "" {
				errs = append(errs, fmt.Errorf("%s.title is required", tp))
			}
			if t.EffortHours <= 0 {
				errs = append(errs, fmt.Errorf("%s.effort_hours must be positive, got %g", tp, t.EffortHours))
			}
			if t.Deliverable == "" {
				errs = append(errs, fmt.Errorf("%s.deliverable is required", tp))
			}
		}
	}

	return errs
}

// CheckInputs verifies the generator's preconditions on user inputs.
func CheckInputs(in domain.PlanInputs) []error {
	var errs []error

	if strings.TrimSpace(in.Topic) == "" {
		errs = append(errs, fmt.Errorf("topic is required"))
	}
	if in.Weeks <= 0 {
		errs = append(errs, fmt.Errorf("weeks must be positive, got %d", in.Weeks))
	}
	if in.HoursPerWeek <= 0 {
		errs = append(errs, fmt.Errorf("hours_per_week must be positive, got %g", in.HoursPerWeek))
	}

	return errs
}

func joinErrs(errs []error) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
