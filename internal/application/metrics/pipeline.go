package metrics

import (
	"sales-insights/internal/domain/reports"
	"sales-insights/internal/domain/sales"
)

// TrackedStages lists the pipeline stages of the funnel breakdown, in
// display order. Lost opportunities are counted elsewhere and excluded.
var TrackedStages = []sales.Stage{
	sales.StageInitial,
	sales.StageQualified,
	sales.StageProposal,
	sales.StageNegotiation,
	sales.StageClosed,
}

// StageBreakdown buckets the opportunities tagged with the given stage
// into a count, summed value, and average win probability. An empty
// bucket has average probability 0.
func StageBreakdown(opps []sales.Opportunity, stage sales.Stage) reports.StageSummary {
	out := reports.StageSummary{Stage: stage}
	probSum := 0.0
	for _, o := range opps {
		if o.Stage != stage {
			continue
		}
		out.Count++
		out.TotalValue += o.Value
		probSum += o.Probability
	}
	if out.Count > 0 {
		out.AverageProbability = probSum / float64(out.Count)
	}
	return out
}

// PipelineBreakdown evaluates every tracked stage in order. The result
// always has five entries, one per stage, even when the input is empty.
func PipelineBreakdown(opps []sales.Opportunity) []reports.StageSummary {
	out := make([]reports.StageSummary, 0, len(TrackedStages))
	for _, stage := range TrackedStages {
		out = append(out, StageBreakdown(opps, stage))
	}
	return out
}

// PipelineValue sums the value of all opportunities regardless of
// stage. This is the whole-pipeline total shown next to the breakdown.
func PipelineValue(opps []sales.Opportunity) float64 {
	total := 0.0
	for _, o := range opps {
		total += o.Value
	}
	return total
}
