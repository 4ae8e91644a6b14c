package metrics

import (
	"time"

	"sales-insights/internal/domain/reports"
)

// SplitByPeriod partitions records into those created in ref's calendar
// month and everything else. The remainder is the prior-period bucket
// the deltas compare against: it deliberately spans every older (and
// future-dated) record rather than just the immediately preceding
// month.
func SplitByPeriod[T Timestamped](records []T, ref time.Time) (current, prior []T) {
	for _, r := range records {
		if InCurrentMonth(r.CreationTime(), ref) {
			current = append(current, r)
		} else {
			prior = append(prior, r)
		}
	}
	return current, prior
}

// MonthOverMonthDelta returns the signed percentage change between the
// current-month record count and the prior-period count. With an empty
// prior period the delta is 100 when anything exists this month and 0
// otherwise. The result is not clamped and can be negative.
func MonthOverMonthDelta[T Timestamped](records []T, ref time.Time) float64 {
	current, prior := SplitByPeriod(records, ref)
	if len(prior) == 0 {
		if len(current) > 0 {
			return 100
		}
		return 0
	}
	return float64(len(current)-len(prior)) / float64(len(prior)) * 100
}

// DeltaTrend maps a delta onto its presentation label. Exactly zero is
// flat: the dashboards color it like a positive movement, never like a
// drop.
func DeltaTrend(delta float64) reports.Trend {
	switch {
	case delta > 0:
		return reports.TrendUp
	case delta < 0:
		return reports.TrendDown
	default:
		return reports.TrendFlat
	}
}

// Delta bundles MonthOverMonthDelta with its trend label.
func Delta[T Timestamped](records []T, ref time.Time) reports.Movement {
	d := MonthOverMonthDelta(records, ref)
	return reports.Movement{DeltaPct: d, Trend: DeltaTrend(d)}
}
