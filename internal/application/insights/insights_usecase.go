// Package insights composes the pure metrics into the bundles the
// dashboards consume. It is the only layer that touches raw snapshots,
// so the defensive coercion of odd inputs happens here, once, at the
// edge.
package insights

import (
	"math"
	"slices"
	"time"

	"sales-insights/internal/application/metrics"
	"sales-insights/internal/domain/reports"
	"sales-insights/internal/domain/sales"
)

// Snapshot is one already-scoped view of the five record collections.
// Nil slices are valid and read as empty.
type Snapshot struct {
	Clients       []sales.Client
	Orders        []sales.Order
	Opportunities []sales.Opportunity
	Activities    []sales.Activity
	Quotas        []sales.Quota
}

// sanitized returns a copy with non-finite numeric fields coerced to
// zero. The engine never rejects a snapshot; a garbage number becomes a
// zero before any aggregation sees it. The caller's slices stay
// untouched.
func (s Snapshot) sanitized() Snapshot {
	s.Orders = slices.Clone(s.Orders)
	s.Opportunities = slices.Clone(s.Opportunities)
	s.Quotas = slices.Clone(s.Quotas)
	for i, o := range s.Orders {
		s.Orders[i].Total = finite(o.Total)
	}
	for i, o := range s.Opportunities {
		s.Opportunities[i].Value = finite(o.Value)
		s.Opportunities[i].Probability = finite(o.Probability)
	}
	for i, q := range s.Quotas {
		s.Quotas[i].TargetRevenue = finite(q.TargetRevenue)
	}
	return s
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// UseCase builds dashboard metric bundles from snapshots. The clock is
// injectable so the same snapshot yields the same numbers in tests.
type UseCase struct {
	now func() time.Time
}

// NewUseCase creates the facade. A nil clock means wall-clock time.
func NewUseCase(clock func() time.Time) *UseCase {
	if clock == nil {
		clock = time.Now
	}
	return &UseCase{now: clock}
}

// BuildDashboard produces the headline figures for the current month.
func (u *UseCase) BuildDashboard(snap Snapshot) reports.DashboardSummary {
	snap = snap.sanitized()
	ref := u.now()
	quota := quotaFor(snap.Quotas, ref)
	return reports.DashboardSummary{
		Date:                  ref,
		MonthlyRevenue:        salesThisMonth(snap.Orders, ref),
		Clients:               metrics.Delta(snap.Clients, ref),
		Orders:                metrics.Delta(snap.Orders, ref),
		Opportunities:         metrics.Delta(snap.Opportunities, ref),
		Activities:            metrics.Delta(snap.Activities, ref),
		NewProspects:          metrics.NewProspects(snap.Clients, ref),
		RepeatClients:         metrics.RepeatPurchasers(snap.Clients, snap.Orders),
		ConversionRatePct:     conversionRate(snap.Opportunities),
		ActivityCompletionPct: activityCompletion(snap.Activities, quota, ref),
	}
}

// BuildPipelineOverview produces the funnel breakdown in fixed stage
// order plus the value of the whole pipeline.
func (u *UseCase) BuildPipelineOverview(snap Snapshot) reports.PipelineOverview {
	snap = snap.sanitized()
	return reports.PipelineOverview{
		Date:       u.now(),
		Stages:     metrics.PipelineBreakdown(snap.Opportunities),
		TotalValue: metrics.PipelineValue(snap.Opportunities),
	}
}

// BuildGoalProgress reports quota attainment for the current month.
// With no matching quota the quota-backed gauges read 0; the two
// heuristic gauges are derived from the client book and always present.
func (u *UseCase) BuildGoalProgress(snap Snapshot) reports.GoalProgress {
	snap = snap.sanitized()
	ref := u.now()
	quota := quotaFor(snap.Quotas, ref)

	out := reports.GoalProgress{Date: ref}
	if quota != nil {
		out.HasQuota = true
		out.RevenuePct = metrics.Attainment(salesThisMonth(snap.Orders, ref), quota.TargetRevenue)
		out.NewClientsPct = metrics.Attainment(float64(clientsThisMonth(snap.Clients, ref)), float64(quota.TargetNewClients))
		out.ActivitiesPct = metrics.Attainment(float64(completedThisMonth(snap.Activities, ref)), float64(quota.TargetActivities.TrackedTotal()))
	}

	out.RepeatClientTarget = metrics.RepeatClientTarget(len(snap.Clients))
	out.RepeatClientsPct = metrics.Attainment(
		float64(metrics.RepeatPurchasers(snap.Clients, snap.Orders)),
		float64(out.RepeatClientTarget),
	)
	out.ConvertedClientTarget = metrics.ConvertedClientTarget(metrics.ProspectCount(snap.Clients))
	out.ConvertedClientsPct = metrics.Attainment(
		float64(metrics.ActiveCount(snap.Clients)),
		float64(out.ConvertedClientTarget),
	)
	return out
}

// BuildSalesTrend produces the twelve-month series and its trailing
// window.
func (u *UseCase) BuildSalesTrend(snap Snapshot) reports.SalesTrend {
	snap = snap.sanitized()
	ref := u.now()
	year := metrics.BuildMonthlySeries(snap.Orders, snap.Clients, ref)
	return reports.SalesTrend{
		Date:   ref,
		Year:   year,
		Recent: metrics.TrailingWindow(year, ref),
	}
}

// LastPurchase picks a client's most recent order under the
// day-of-month recency rule the client views have always used. Nil
// when the client has no orders.
func (u *UseCase) LastPurchase(orders []sales.Order) *sales.Order {
	return metrics.LatestOrder(orders, u.now())
}

// quotaFor finds the quota covering ref's month and year, nil if none.
func quotaFor(quotas []sales.Quota, ref time.Time) *sales.Quota {
	for i, q := range quotas {
		if q.Matches(ref.Month(), ref.Year()) {
			return &quotas[i]
		}
	}
	return nil
}

// salesThisMonth sums processed-order totals created in ref's month.
// Pending orders are not revenue yet and never count.
func salesThisMonth(orders []sales.Order, ref time.Time) float64 {
	total := 0.0
	for _, o := range orders {
		if o.State == sales.OrderProcessed && metrics.InCurrentMonth(o.CreatedAt, ref) {
			total += o.Total
		}
	}
	return total
}

// conversionRate is closed opportunities over all opportunities. Empty
// input reads 0, not 100: an empty pipeline has converted nothing.
func conversionRate(opps []sales.Opportunity) float64 {
	if len(opps) == 0 {
		return 0
	}
	closed := 0
	for _, o := range opps {
		if o.Stage == sales.StageClosed {
			closed++
		}
	}
	return float64(closed) / float64(len(opps)) * 100
}

// activityCompletion divides activities completed this month by the
// tracked quota total (calls, emails, meetings, tasks). No quota, no
// rate.
func activityCompletion(activities []sales.Activity, quota *sales.Quota, ref time.Time) float64 {
	if quota == nil {
		return 0
	}
	return metrics.Attainment(
		float64(completedThisMonth(activities, ref)),
		float64(quota.TargetActivities.TrackedTotal()),
	)
}

func completedThisMonth(activities []sales.Activity, ref time.Time) int {
	count := 0
	for _, a := range activities {
		if a.Completed && metrics.InCurrentMonth(a.CreatedAt, ref) {
			count++
		}
	}
	return count
}

func clientsThisMonth(clients []sales.Client, ref time.Time) int {
	count := 0
	for _, c := range clients {
		if metrics.InCurrentMonth(c.CreatedAt, ref) {
			count++
		}
	}
	return count
}
