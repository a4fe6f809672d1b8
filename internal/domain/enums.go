package domain

// Phase is the sequential stage a week belongs to, derived from its
// relative position within the plan.
type Phase string

const (
	PhaseFoundation  Phase = "foundation"
	PhaseDevelopment Phase = "development"
	PhaseApplication Phase = "application"
)

// OccurrencePosition classifies a week among the other weeks of its phase.
type OccurrencePosition string

const (
	PositionFirst  OccurrencePosition = "first"
	PositionMiddle OccurrencePosition = "middle"
	PositionLast   OccurrencePosition = "last"
)

// ValidationKind identifies one of the closed set of plan invariant
// violations. Consumers rely on these tags being stable.
type ValidationKind string

const (
	KindWeeksMismatch ValidationKind = "weeks_mismatch"
	KindHoursMismatch ValidationKind = "hours_mismatch"
	KindHoursExceeded ValidationKind = "hours_exceeded"
)

// ValidKinds is the canonical set of accepted validation kind strings.
var ValidKinds = map[ValidationKind]bool{
	KindWeeksMismatch: true,
	KindHoursMismatch: true,
	KindHoursExceeded: true,
}
