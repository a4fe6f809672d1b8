package generation

import (
	"strings"

	"github.com/jordanmetzner/pathwise/internal/domain"
)

// taskTemplate is one entry of a task bank. Title and Deliverable may carry
// {topic} and {goal} placeholders expanded at generation time.
type taskTemplate struct {
	Title       string
	Deliverable string
}

// expand substitutes the {topic} and {goal} placeholders.
func expand(s, topic, goal string) string {
	s = strings.ReplaceAll(s, "{topic}", topic)
	return strings.ReplaceAll(s, "{goal}", goal)
}

// Each phase owns a rotating set of banks, selected by the phase's
// occurrence counter modulo bank count, so consecutive weeks of the same
// phase cycle through distinct content before repeating. Every bank holds at
// least four templates; weeks keep only the first TasksPerWeek of them.
var foundationBanks = [][]taskTemplate{
	{
		{"Set up your {topic} environment and tools", "A working local setup you can run a hello-world example in"},
		{"Survey the {topic} landscape and core terminology", "A one-page glossary of the 15 most important terms, in your own words"},
		{"Work through an introductory {topic} tutorial", "Completed tutorial code, committed with notes on what surprised you"},
		{"Collect reference material for {topic}", "A curated list of 5 sources (docs, books, courses) ranked by usefulness"},
	},
	{
		{"Study the fundamental concepts of {topic}", "Flashcards or notes covering every concept you met this week"},
		{"Reproduce worked examples in {topic} by hand", "Three examples redone from scratch without copying"},
		{"Solve beginner exercises in {topic}", "A set of 10 completed exercises with your solutions annotated"},
		{"Summarize what you learned this week", "A short write-up explaining the week's material to a past self"},
	},
}

var developmentBanks = [][]taskTemplate{
	{
		{"Deepen your grasp of intermediate {topic} techniques", "Notes contrasting at least three techniques and when to use each"},
		{"Build a small focused exercise project in {topic}", "A runnable mini-project exercising this week's techniques"},
		{"Read and annotate real-world {topic} code or material", "Annotations on one substantial real-world example"},
		{"Drill the weak spots from last week", "A list of previous mistakes, each redone correctly"},
	},
	{
		{"Practice {topic} under realistic constraints", "A timed exercise session log with results"},
		{"Combine multiple {topic} skills in one exercise", "One exercise that uses at least three skills together"},
		{"Teach a {topic} concept to someone else", "A short written or recorded explanation a beginner could follow"},
		{"Review and refactor your earlier practice work", "Earlier work revisited, with a changelog of improvements"},
	},
	{
		{"Explore an advanced corner of {topic}", "Notes on one advanced feature and a toy example using it"},
		{"Benchmark or compare approaches within {topic}", "A comparison table of at least two approaches with a recommendation"},
		{"Harden your practice project", "Edge cases identified and handled, with a test or check for each"},
		{"Catch up and consolidate", "A consolidated cheat-sheet of everything covered so far"},
	},
}

var applicationKickoffBank = []taskTemplate{
	{"Design a project that achieves your goal: {goal}", "A one-page project design with scope, milestones, and success criteria"},
	{"Set up the project skeleton", "An initialized project with structure, tooling, and a first commit"},
	{"Break the project into weekly milestones", "A milestone list mapping remaining weeks to concrete outcomes"},
	{"Build the first thin end-to-end slice", "A minimal working slice of the project, however rough"},
}

var applicationMiddleBanks = [][]taskTemplate{
	{
		{"Build out the next project milestone", "The milestone implemented and demonstrably working"},
		{"Apply {topic} techniques you learned earlier", "At least two earlier techniques visibly used in the project"},
		{"Test and fix what you built this week", "Defects found and fixed, with notes on their causes"},
		{"Record open questions and blockers", "A triaged list of blockers with a plan for each"},
	},
	{
		{"Iterate on project feedback and rough edges", "The top three rough edges from last week resolved"},
		{"Extend the project with one stretch feature", "A working stretch feature beyond the original scope"},
		{"Improve the quality of the existing work", "Measurable quality improvements (tests, docs, structure)"},
		{"Check progress against your goal: {goal}", "A gap analysis between current state and the stated goal"},
	},
}

var applicationWrapUpBank = []taskTemplate{
	{"Finish and polish the project", "The completed project, presentable to someone else"},
	{"Document the project and how it meets your goal", "A README covering setup, usage, and how it fulfills: {goal}"},
	{"Run a retrospective on your learning", "A written retrospective: what worked, what did not, what is next"},
	{"Plan your next steps beyond this plan", "A short list of follow-up topics and resources for continuing"},
}

// bankFor selects the task bank for a week given its phase, the zero-based
// occurrence index within that phase, and the occurrence position. The
// application phase distinguishes its first and last occurrences; everything
// else rotates through the phase's banks.
func bankFor(phase domain.Phase, index int, pos domain.OccurrencePosition) []taskTemplate {
	switch phase {
	case domain.PhaseFoundation:
		return foundationBanks[index%len(foundationBanks)]
	case domain.PhaseDevelopment:
		return developmentBanks[index%len(developmentBanks)]
	default:
		switch pos {
		case domain.PositionFirst:
			return applicationKickoffBank
		case domain.PositionLast:
			return applicationWrapUpBank
		default:
			return applicationMiddleBanks[(index-1)%len(applicationMiddleBanks)]
		}
	}
}
