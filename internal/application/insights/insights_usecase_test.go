package insights

import (
	"math"
	"testing"
	"time"

	"sales-insights/internal/domain/reports"
	"sales-insights/internal/domain/sales"
)

var testRef = time.Date(2026, time.May, 15, 12, 0, 0, 0, time.UTC)

func testClock() func() time.Time {
	return func() time.Time { return testRef }
}

func TestBuildDashboard_MonthlyRevenue(t *testing.T) {
	thisMonth := time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Orders: []sales.Order{
			{Total: 100, State: sales.OrderProcessed, CreatedAt: thisMonth},
			{Total: 50, State: sales.OrderPending, CreatedAt: thisMonth},
			{Total: 70, State: sales.OrderProcessed, CreatedAt: thisMonth.AddDate(0, -1, 0)},
		},
	}

	out := NewUseCase(testClock()).BuildDashboard(snap)
	if out.MonthlyRevenue != 100 {
		t.Errorf("monthly revenue = %v, want 100 (pending and prior-month orders excluded)", out.MonthlyRevenue)
	}
}

func TestBuildDashboard_EmptySnapshot(t *testing.T) {
	out := NewUseCase(testClock()).BuildDashboard(Snapshot{})

	if out.ConversionRatePct != 0 {
		t.Errorf("conversion rate on empty pipeline = %v, want 0", out.ConversionRatePct)
	}
	if out.Clients.DeltaPct != 0 || out.Clients.Trend != reports.TrendFlat {
		t.Errorf("unexpected client movement: %+v", out.Clients)
	}
	if out.MonthlyRevenue != 0 || out.NewProspects != 0 || out.RepeatClients != 0 {
		t.Errorf("expected zeroed summary, got %+v", out)
	}
}

func TestBuildDashboard_ConversionRate(t *testing.T) {
	snap := Snapshot{
		Opportunities: []sales.Opportunity{
			{Stage: sales.StageClosed, CreatedAt: testRef},
			{Stage: sales.StageInitial, CreatedAt: testRef},
			{Stage: sales.StageLost, CreatedAt: testRef},
			{Stage: sales.StageProposal, CreatedAt: testRef},
		},
	}
	out := NewUseCase(testClock()).BuildDashboard(snap)
	if out.ConversionRatePct != 25 {
		t.Errorf("conversion rate = %v, want 25", out.ConversionRatePct)
	}
}

func TestBuildDashboard_ActivityCompletion(t *testing.T) {
	snap := Snapshot{
		Activities: []sales.Activity{
			{Type: sales.ActivityCall, Completed: true, CreatedAt: testRef},
			{Type: sales.ActivityMeeting, Completed: true, CreatedAt: testRef},
			{Type: sales.ActivityEmail, Completed: false, CreatedAt: testRef},
			{Type: sales.ActivityCall, Completed: true, CreatedAt: testRef.AddDate(0, -2, 0)},
		},
		Quotas: []sales.Quota{{
			Month: "May",
			Year:  2026,
			// Tracked total is 8; notes are excluded from it.
			TargetActivities: sales.ActivityTargets{Calls: 4, Emails: 2, Meetings: 1, Notes: 99, Tasks: 1},
		}},
	}

	out := NewUseCase(testClock()).BuildDashboard(snap)
	if out.ActivityCompletionPct != 25 {
		t.Errorf("activity completion = %v, want 25 (2 of 8)", out.ActivityCompletionPct)
	}
}

func TestBuildGoalProgress_MissingQuota(t *testing.T) {
	snap := Snapshot{
		Clients: []sales.Client{{ID: "a", State: sales.StateActive, CreatedAt: testRef}},
		Orders:  []sales.Order{{ClientID: "a", Total: 500, State: sales.OrderProcessed, CreatedAt: testRef}},
		Quotas:  []sales.Quota{{Month: "April", Year: 2026, TargetRevenue: 100}},
	}

	out := NewUseCase(testClock()).BuildGoalProgress(snap)
	if out.HasQuota {
		t.Fatal("April quota must not match a May reference")
	}
	if out.RevenuePct != 0 || out.NewClientsPct != 0 || out.ActivitiesPct != 0 {
		t.Errorf("quota-backed gauges must read 0 without a quota, got %+v", out)
	}
}

func TestBuildGoalProgress_WithQuota(t *testing.T) {
	snap := Snapshot{
		Clients: []sales.Client{
			{ID: "a", State: sales.StateActive, CreatedAt: testRef},
			{ID: "b", State: sales.StateProspect, CreatedAt: testRef},
		},
		Orders: []sales.Order{
			{ClientID: "a", Total: 500, State: sales.OrderProcessed, CreatedAt: testRef},
		},
		Quotas: []sales.Quota{{
			Month:            "may", // month names match case-insensitively
			Year:             2026,
			TargetRevenue:    1000,
			TargetNewClients: 4,
		}},
	}

	out := NewUseCase(testClock()).BuildGoalProgress(snap)
	if !out.HasQuota {
		t.Fatal("expected quota match")
	}
	if out.RevenuePct != 50 {
		t.Errorf("revenue attainment = %v, want 50", out.RevenuePct)
	}
	if out.NewClientsPct != 50 {
		t.Errorf("new-client attainment = %v, want 50 (2 of 4)", out.NewClientsPct)
	}
	// Two clients: repeat target rounds 0.4 to 0, so the gauge reads 0.
	if out.RepeatClientTarget != 0 || out.RepeatClientsPct != 0 {
		t.Errorf("unexpected repeat gauge: target %d pct %v", out.RepeatClientTarget, out.RepeatClientsPct)
	}
	// One prospect: converted target is ceil(0.25) = 1, one active
	// client meets it exactly.
	if out.ConvertedClientTarget != 1 || out.ConvertedClientsPct != 100 {
		t.Errorf("unexpected converted gauge: target %d pct %v", out.ConvertedClientTarget, out.ConvertedClientsPct)
	}
}

func TestBuildGoalProgress_HeuristicFallback(t *testing.T) {
	out := NewUseCase(testClock()).BuildGoalProgress(Snapshot{})
	if out.RepeatClientTarget != 10 {
		t.Errorf("repeat target fallback = %d, want 10", out.RepeatClientTarget)
	}
	if out.RepeatClientsPct != 0 || out.ConvertedClientsPct != 0 {
		t.Errorf("expected zero attainment on empty book, got %+v", out)
	}
}

func TestBuildPipelineOverview(t *testing.T) {
	snap := Snapshot{
		Opportunities: []sales.Opportunity{
			{Stage: sales.StageQualified, Value: 100, Probability: 40, CreatedAt: testRef},
			{Stage: sales.StageLost, Value: 60, CreatedAt: testRef},
		},
	}

	out := NewUseCase(testClock()).BuildPipelineOverview(snap)
	if len(out.Stages) != 5 {
		t.Fatalf("expected 5 stages, got %d", len(out.Stages))
	}
	if out.TotalValue != 160 {
		t.Errorf("total pipeline value = %v, want 160", out.TotalValue)
	}
}

func TestBuildSalesTrend(t *testing.T) {
	snap := Snapshot{
		Orders: []sales.Order{
			{Total: 300, State: sales.OrderProcessed, CreatedAt: testRef},
		},
	}

	out := NewUseCase(testClock()).BuildSalesTrend(snap)
	if len(out.Year) != 12 {
		t.Fatalf("expected 12-month series, got %d", len(out.Year))
	}
	if len(out.Recent) != 5 || out.Recent[0].Month != "May" {
		t.Fatalf("unexpected trailing window: %+v", out.Recent)
	}
	if out.Recent[0].Sales != 300 {
		t.Errorf("current month sales = %v, want 300", out.Recent[0].Sales)
	}
}

func TestLastPurchase(t *testing.T) {
	uc := NewUseCase(testClock()) // ref day is the 15th
	orders := []sales.Order{
		{ID: "day-1", CreatedAt: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "day-14", CreatedAt: time.Date(2026, time.April, 14, 0, 0, 0, 0, time.UTC)},
	}

	got := uc.LastPurchase(orders)
	if got == nil || got.ID != "day-14" {
		t.Errorf("LastPurchase() = %+v, want day-14 (closest day of month)", got)
	}
	if uc.LastPurchase(nil) != nil {
		t.Error("expected nil for a client with no orders")
	}
}

func TestSanitized_CoercesAndCopies(t *testing.T) {
	orders := []sales.Order{
		{Total: math.NaN(), State: sales.OrderProcessed, CreatedAt: testRef},
		{Total: math.Inf(1), State: sales.OrderProcessed, CreatedAt: testRef},
		{Total: 40, State: sales.OrderProcessed, CreatedAt: testRef},
	}
	snap := Snapshot{Orders: orders}

	out := NewUseCase(testClock()).BuildDashboard(snap)
	if out.MonthlyRevenue != 40 {
		t.Errorf("monthly revenue = %v, want 40 (non-finite totals coerced to 0)", out.MonthlyRevenue)
	}
	// The caller's slice must be left alone.
	if !math.IsNaN(orders[0].Total) {
		t.Error("input snapshot was mutated")
	}
}
