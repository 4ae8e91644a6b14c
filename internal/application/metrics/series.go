package metrics

import (
	"time"

	"sales-insights/internal/domain/reports"
	"sales-insights/internal/domain/sales"
)

// recentWindow is how many entries the trailing chart shows at most.
const recentWindow = 5

// BuildMonthlySeries produces one entry per calendar month of ref's
// year, January through December, however sparse the input is. Sales
// sums processed-order totals created in that month; NewClients counts
// clients created in that month that reached the active state.
func BuildMonthlySeries(orders []sales.Order, clients []sales.Client, ref time.Time) []reports.MonthlyPoint {
	series := make([]reports.MonthlyPoint, 0, 12)
	for m := time.January; m <= time.December; m++ {
		point := reports.MonthlyPoint{Month: m.String()[:3]}
		for _, o := range orders {
			if o.State == sales.OrderProcessed && InMonth(o.CreatedAt, m, ref) {
				point.Sales += o.Total
			}
		}
		for _, c := range clients {
			if c.State == sales.StateActive && InMonth(c.CreatedAt, m, ref) {
				point.NewClients++
			}
		}
		series = append(series, point)
	}
	return series
}

// TrailingWindow extracts up to five entries from a full-year series,
// starting at ref's month and walking backward while entries exist. The
// current month comes first and the chart renders the slice in exactly
// this order, so a February window is [Feb, Jan], not [Jan, Feb].
func TrailingWindow(series []reports.MonthlyPoint, ref time.Time) []reports.MonthlyPoint {
	out := make([]reports.MonthlyPoint, 0, recentWindow)
	idx := int(ref.Month()) - 1
	for i := 0; i < recentWindow; i++ {
		at := idx - i
		if at < 0 || at >= len(series) {
			break
		}
		out = append(out, series[at])
	}
	return out
}
