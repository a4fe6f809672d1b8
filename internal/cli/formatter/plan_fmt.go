package formatter

import (
	"fmt"
	"strings"

	"github.com/jordanmetzner/pathwise/internal/domain"
	"github.com/jordanmetzner/pathwise/internal/generation"
)

// FormatPlan renders a full learning plan for terminal display: a header
// with the echoed inputs, an overview table, and a detail section per week.
func FormatPlan(p *domain.LearningPlan) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Learning Plan: %s", p.Topic)))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(fmt.Sprintf("Level: %s", p.Level)))
	b.WriteString(Dim("  ·  "))
	b.WriteString(StyleFg.Render(fmt.Sprintf("Goal: %s", p.Goal)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d weeks · %g hours/week", p.Weeks, p.HoursPerWeek)))
	b.WriteString("\n\n")

	headers := []string{"WEEK", "PHASE", "FOCUS", "HOURS", "TASKS"}
	rows := make([][]string, 0, len(p.Plan))
	for _, w := range p.Plan {
		phase := generation.PhaseFor(w.Week, p.Weeks)
		rows = append(rows, []string{
			fmt.Sprintf("%d", w.Week),
			PhaseStyle(phase).Render(string(phase)),
			w.Focus,
			fmt.Sprintf("%.1f", w.Hours),
			fmt.Sprintf("%d", len(w.Tasks)),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	for _, w := range p.Plan {
		b.WriteString(formatWeek(w, p.Weeks))
		b.WriteString("\n")
	}

	return b.String()
}

func formatWeek(w domain.Week, totalWeeks int) string {
	var b strings.Builder

	phase := generation.PhaseFor(w.Week, totalWeeks)
	title := fmt.Sprintf("Week %d · %s", w.Week, w.Focus)
	b.WriteString(PhaseStyle(phase).Bold(true).Render(title))
	b.WriteString(Dim(fmt.Sprintf("  (%.1fh)", w.Hours)))
	b.WriteString("\n")

	for _, task := range w.Tasks {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim("•"),
			StyleFg.Render(task.Title),
			Dim(fmt.Sprintf("(%.1fh)", task.EffortHours))))
		b.WriteString(fmt.Sprintf("    %s %s\n",
			Dim("→"),
			Dim(task.Deliverable)))
	}

	b.WriteString(fmt.Sprintf("  %s %s\n",
		StylePurple.Render("✓"),
		StylePurple.Render(w.Checkpoint)))

	return b.String()
}

// FormatViolations renders validation findings, one line per violation.
func FormatViolations(violations []domain.ValidationError) string {
	if len(violations) == 0 {
		return StyleGreen.Render("✓ plan is valid") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("✗ %d violation(s) found", len(violations))))
	b.WriteString("\n")
	for _, v := range violations {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleRed.Render(string(v.Kind)),
			StyleFg.Render(v.Message)))
	}
	return b.String()
}
