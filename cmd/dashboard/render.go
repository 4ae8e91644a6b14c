package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"sales-insights/internal/application/insights"
	"sales-insights/internal/domain/reports"
	"sales-insights/internal/domain/sales"
)

// render prints the four metric bundles as aligned text tables.
func render(w io.Writer, uc *insights.UseCase, snap insights.Snapshot) error {
	dash := uc.BuildDashboard(snap)
	pipeline := uc.BuildPipelineOverview(snap)
	goals := uc.BuildGoalProgress(snap)
	trend := uc.BuildSalesTrend(snap)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "DASHBOARD\t%s\n", dash.Date.Format("2006-01-02"))
	fmt.Fprintf(tw, "revenue this month\t%.2f\n", dash.MonthlyRevenue)
	fmt.Fprintf(tw, "clients\t%s\n", movement(dash.Clients))
	fmt.Fprintf(tw, "orders\t%s\n", movement(dash.Orders))
	fmt.Fprintf(tw, "opportunities\t%s\n", movement(dash.Opportunities))
	fmt.Fprintf(tw, "activities\t%s\n", movement(dash.Activities))
	fmt.Fprintf(tw, "new prospects\t%d\n", dash.NewProspects)
	fmt.Fprintf(tw, "repeat clients\t%d\n", dash.RepeatClients)
	fmt.Fprintf(tw, "conversion rate\t%.1f%%\n", dash.ConversionRatePct)
	fmt.Fprintf(tw, "activity completion\t%.1f%%\n", dash.ActivityCompletionPct)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "PIPELINE\ttotal %.2f\n", pipeline.TotalValue)
	fmt.Fprintf(tw, "stage\tcount\tvalue\tavg prob\n")
	for _, s := range pipeline.Stages {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.1f%%\n", s.Stage, s.Count, s.TotalValue, s.AverageProbability)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "GOALS\tquota found: %v\n", goals.HasQuota)
	fmt.Fprintf(tw, "revenue\t%.1f%%\n", goals.RevenuePct)
	fmt.Fprintf(tw, "new clients\t%.1f%%\n", goals.NewClientsPct)
	fmt.Fprintf(tw, "activities\t%.1f%%\n", goals.ActivitiesPct)
	fmt.Fprintf(tw, "repeat clients\t%.1f%% (target %d)\n", goals.RepeatClientsPct, goals.RepeatClientTarget)
	fmt.Fprintf(tw, "converted clients\t%.1f%% (target %d)\n", goals.ConvertedClientsPct, goals.ConvertedClientTarget)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "TREND\tlast %d months (current first)\n", len(trend.Recent))
	fmt.Fprintf(tw, "month\tsales\tnew clients\n")
	for _, p := range trend.Recent {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\n", p.Month, p.Sales, p.NewClients)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "LAST PURCHASE\t\n")
	for _, c := range snap.Clients {
		var owned []sales.Order
		for _, o := range snap.Orders {
			if o.ClientID == c.ID {
				owned = append(owned, o)
			}
		}
		if last := uc.LastPurchase(owned); last != nil {
			fmt.Fprintf(tw, "%s\t%s\n", c.Name, last.CreatedAt.Format("2006-01-02"))
		}
	}

	return tw.Flush()
}

func movement(m reports.Movement) string {
	return fmt.Sprintf("%+.1f%% (%s)", m.DeltaPct, m.Trend)
}
