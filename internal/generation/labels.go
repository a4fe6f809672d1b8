package generation

import (
	"fmt"

	"github.com/jordanmetzner/pathwise/internal/domain"
)

var developmentFocusLabels = []string{
	"Core Techniques",
	"Guided Practice",
	"Applied Exercises",
	"Advanced Concepts",
}

// focusFor derives the week's focus label from its phase and occurrence.
func focusFor(phase domain.Phase, index int, pos domain.OccurrencePosition) string {
	switch phase {
	case domain.PhaseFoundation:
		if index == 0 {
			return "Introduction & Setup"
		}
		return fmt.Sprintf("Fundamentals, Part %d", index+1)
	case domain.PhaseDevelopment:
		return developmentFocusLabels[index%len(developmentFocusLabels)]
	default:
		switch pos {
		case domain.PositionFirst:
			return "Project Kickoff & Design"
		case domain.PositionLast:
			return "Final Polish & Retrospective"
		default:
			if (index-1)%2 == 0 {
				return "Project Build: Momentum"
			}
			return "Project Build: Iteration"
		}
	}
}

// checkpointFor derives the week's verification criterion. Application
// checkpoints echo the user's stated goal directly.
func checkpointFor(phase domain.Phase, index int, pos domain.OccurrencePosition, topic, goal string) string {
	switch phase {
	case domain.PhaseFoundation:
		if index == 0 {
			return fmt.Sprintf("You can explain the core ideas of %s in your own words and your environment runs a basic example.", topic)
		}
		return fmt.Sprintf("You can work through fundamental %s exercises without looking up the basics.", topic)
	case domain.PhaseDevelopment:
		switch index % len(developmentFocusLabels) {
		case 0:
			return fmt.Sprintf("You can apply this week's %s techniques to a problem you have not seen before.", topic)
		case 1:
			return fmt.Sprintf("You can complete a guided %s exercise end to end without assistance.", topic)
		case 2:
			return fmt.Sprintf("You can combine several %s skills in a single exercise and explain your choices.", topic)
		default:
			return fmt.Sprintf("You can describe when and why to reach for the advanced %s material covered this week.", topic)
		}
	default:
		switch pos {
		case domain.PositionFirst:
			return fmt.Sprintf("You have a concrete project design and a running skeleton aimed at: %s.", goal)
		case domain.PositionLast:
			return fmt.Sprintf("You can demonstrate your finished project and show how it achieves: %s.", goal)
		default:
			return fmt.Sprintf("You can show working progress toward: %s.", goal)
		}
	}
}
