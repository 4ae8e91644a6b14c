package reports

import (
	"time"

	"sales-insights/internal/domain/sales"
)

// Trend labels a period-over-period delta for presentation. An exact
// zero is flat, never down.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendFlat Trend = "flat"
	TrendDown Trend = "down"
)

// Movement pairs a signed percentage delta with its trend label.
type Movement struct {
	DeltaPct float64
	Trend    Trend
}

// DashboardSummary aggregates the current-month headline figures.
type DashboardSummary struct {
	Date                  time.Time
	MonthlyRevenue        float64
	Clients               Movement
	Orders                Movement
	Opportunities         Movement
	Activities            Movement
	NewProspects          int
	RepeatClients         int
	ConversionRatePct     float64
	ActivityCompletionPct float64
}

// StageSummary describes one pipeline stage bucket.
type StageSummary struct {
	Stage              sales.Stage
	Count              int
	TotalValue         float64
	AverageProbability float64
}

// PipelineOverview is the per-stage breakdown plus the whole-pipeline
// value across every opportunity.
type PipelineOverview struct {
	Date       time.Time
	Stages     []StageSummary
	TotalValue float64
}

// GoalProgress reports quota attainment percentages for the month.
// Every field is clamped to [0, 100]; a missing quota yields zeros.
type GoalProgress struct {
	Date                  time.Time
	HasQuota              bool
	RevenuePct            float64
	NewClientsPct         float64
	ActivitiesPct         float64
	RepeatClientsPct      float64
	ConvertedClientsPct   float64
	RepeatClientTarget    int
	ConvertedClientTarget int
}

// MonthlyPoint is one calendar-month entry of the sales series.
type MonthlyPoint struct {
	Month      string
	Sales      float64
	NewClients int
}

// SalesTrend carries the full-year series and the trailing window the
// dashboard chart renders as-is, current month first.
type SalesTrend struct {
	Date   time.Time
	Year   []MonthlyPoint
	Recent []MonthlyPoint
}
