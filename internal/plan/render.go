package plan

import (
	"encoding/json"
	"fmt"

	"github.com/jordanmetzner/pathwise/internal/domain"
)

// Render serializes a plan to UTF-8 JSON with 2-space indentation and a
// trailing newline. Render and Parse form an exact round-trip: parsing the
// rendered text reproduces the original value.
func Render(p *domain.LearningPlan) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering plan: %w", err)
	}
	return append(data, '\n'), nil
}
