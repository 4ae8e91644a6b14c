package metrics

import "math"

// Attainment returns how much of target the achieved value covers, as a
// percentage clamped to [0, 100]. A target of zero or less (including a
// missing quota surfaced as zero) yields 0, and overshooting the target
// yields exactly 100.
func Attainment(achieved, target float64) float64 {
	if math.IsNaN(target) || target <= 0 {
		return 0
	}
	if achieved > target {
		return 100
	}
	return achieved / target * 100
}

// RepeatClientTarget is the heuristic repeat-purchase goal: 20% of the
// book of clients, rounded. With no clients at all it falls back to a
// constant 10 so the gauge still has a denominator.
func RepeatClientTarget(totalClients int) int {
	if totalClients == 0 {
		return 10
	}
	return int(math.Round(float64(totalClients) * 0.20))
}

// ConvertedClientTarget is the heuristic conversion goal: a quarter of
// the current prospects, rounded up.
func ConvertedClientTarget(prospects int) int {
	return int(math.Ceil(float64(prospects) * 0.25))
}
