package main

import (
	"time"

	"github.com/google/uuid"

	"sales-insights/internal/application/insights"
	"sales-insights/internal/domain/sales"
)

// sampleSnapshot builds a small demo book of business around the given
// reference time, spread over the trailing months so the deltas and the
// trend chart all have something to show.
func sampleSnapshot(ref time.Time) insights.Snapshot {
	snap := insights.Snapshot{}

	type seedClient struct {
		name       string
		state      sales.LifecycleState
		stage      sales.Stage
		monthsBack int
	}
	seeds := []seedClient{
		{"Acme Retail", sales.StateActive, sales.StageClosed, 4},
		{"Borealis Foods", sales.StateActive, sales.StageNegotiation, 2},
		{"Cobalt Labs", sales.StateActive, sales.StageProposal, 1},
		{"Delta Freight", sales.StateProspect, sales.StageQualified, 0},
		{"Eastside Clinic", sales.StateProspect, sales.StageInitial, 0},
		{"Fairway Hotels", sales.StateInactive, sales.StageLost, 6},
	}

	for _, s := range seeds {
		created := ref.AddDate(0, -s.monthsBack, 0)
		snap.Clients = append(snap.Clients, sales.Client{
			ID:          uuid.NewString(),
			Name:        s.name,
			Salesperson: "sample",
			State:       s.state,
			Stage:       s.stage,
			CreatedAt:   created,
			UpdatedAt:   ref,
		})
	}

	// Two processed orders for the first client makes it a repeat
	// purchaser; the pending order must not count as revenue.
	orderSeeds := []struct {
		client     int
		total      float64
		state      sales.OrderState
		monthsBack int
	}{
		{0, 1200, sales.OrderProcessed, 0},
		{0, 950, sales.OrderProcessed, 1},
		{1, 480, sales.OrderProcessed, 0},
		{1, 300, sales.OrderPending, 0},
		{2, 640, sales.OrderProcessed, 2},
	}
	for _, s := range orderSeeds {
		snap.Orders = append(snap.Orders, sales.Order{
			ID:          uuid.NewString(),
			ClientID:    snap.Clients[s.client].ID,
			Salesperson: "sample",
			Total:       s.total,
			State:       s.state,
			CreatedAt:   ref.AddDate(0, -s.monthsBack, 0),
		})
	}

	oppSeeds := []struct {
		client      int
		value       float64
		probability float64
		stage       sales.Stage
	}{
		{3, 2500, 20, sales.StageInitial},
		{3, 1800, 40, sales.StageQualified},
		{2, 3200, 60, sales.StageProposal},
		{1, 5400, 80, sales.StageNegotiation},
		{0, 2100, 100, sales.StageClosed},
		{5, 900, 0, sales.StageLost},
	}
	for _, s := range oppSeeds {
		snap.Opportunities = append(snap.Opportunities, sales.Opportunity{
			ID:          uuid.NewString(),
			ClientID:    snap.Clients[s.client].ID,
			Salesperson: "sample",
			Value:       s.value,
			Probability: s.probability,
			Stage:       s.stage,
			CreatedAt:   ref,
		})
	}

	actSeeds := []struct {
		client    int
		typ       sales.ActivityType
		completed bool
	}{
		{0, sales.ActivityCall, true},
		{1, sales.ActivityMeeting, true},
		{2, sales.ActivityEmail, true},
		{3, sales.ActivityCall, false},
		{4, sales.ActivityTask, false},
	}
	for _, s := range actSeeds {
		snap.Activities = append(snap.Activities, sales.Activity{
			ID:          uuid.NewString(),
			ClientID:    snap.Clients[s.client].ID,
			Salesperson: "sample",
			Type:        s.typ,
			Completed:   s.completed,
			DueAt:       ref.AddDate(0, 0, 7),
			CreatedAt:   ref,
		})
	}

	snap.Quotas = append(snap.Quotas, sales.Quota{
		Salesperson:      "sample",
		Month:            ref.Month().String(),
		Year:             ref.Year(),
		TargetRevenue:    3000,
		TargetNewClients: 3,
		TargetActivities: sales.ActivityTargets{Calls: 4, Emails: 4, Meetings: 2, Notes: 2, Tasks: 2},
	})

	return snap
}
