package generation

import "github.com/jordanmetzner/pathwise/internal/domain"

// DistributeHours splits total hours across count tasks so the per-task
// values sum back to the total exactly after two-decimal rounding. All but
// the last task get the one-decimal unit share; the last task absorbs the
// rounding drift.
func DistributeHours(total float64, count int) []float64 {
	if count <= 0 {
		return nil
	}

	unit := domain.Round1(total / float64(count))
	efforts := make([]float64, count)
	for i := 0; i < count-1; i++ {
		efforts[i] = unit
	}
	efforts[count-1] = domain.Round2(total - unit*float64(count-1))

	return efforts
}
