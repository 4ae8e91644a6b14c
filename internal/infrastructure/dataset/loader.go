// Package dataset reads a YAML snapshot file into domain records. It
// stands in for the remote data API of the full product: the engine
// itself never touches files.
package dataset

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"sales-insights/internal/application/insights"
	"sales-insights/internal/domain/sales"
)

type file struct {
	Clients       []clientRow      `yaml:"clients"`
	Orders        []orderRow       `yaml:"orders"`
	Opportunities []opportunityRow `yaml:"opportunities"`
	Activities    []activityRow    `yaml:"activities"`
	Quotas        []quotaRow       `yaml:"quotas"`
}

type clientRow struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Salesperson string    `yaml:"salesperson"`
	State       string    `yaml:"state"`
	Stage       string    `yaml:"stage"`
	CreatedAt   time.Time `yaml:"created_at"`
	UpdatedAt   time.Time `yaml:"updated_at"`
}

type orderRow struct {
	ID          string    `yaml:"id"`
	ClientID    string    `yaml:"client_id"`
	Salesperson string    `yaml:"salesperson"`
	Total       float64   `yaml:"total"`
	State       string    `yaml:"state"`
	CreatedAt   time.Time `yaml:"created_at"`
}

type opportunityRow struct {
	ID          string    `yaml:"id"`
	ClientID    string    `yaml:"client_id"`
	Salesperson string    `yaml:"salesperson"`
	Value       float64   `yaml:"value"`
	Probability float64   `yaml:"probability"`
	Stage       string    `yaml:"stage"`
	CreatedAt   time.Time `yaml:"created_at"`
}

type activityRow struct {
	ID          string    `yaml:"id"`
	ClientID    string    `yaml:"client_id"`
	Salesperson string    `yaml:"salesperson"`
	Type        string    `yaml:"type"`
	Completed   bool      `yaml:"completed"`
	DueAt       time.Time `yaml:"due_at"`
	CreatedAt   time.Time `yaml:"created_at"`
}

type quotaRow struct {
	Salesperson      string  `yaml:"salesperson"`
	Month            string  `yaml:"month"`
	Year             int     `yaml:"year"`
	TargetRevenue    float64 `yaml:"target_revenue"`
	TargetNewClients int     `yaml:"target_new_clients"`
	TargetActivities struct {
		Calls    int `yaml:"calls"`
		Emails   int `yaml:"emails"`
		Meetings int `yaml:"meetings"`
		Notes    int `yaml:"notes"`
		Tasks    int `yaml:"tasks"`
	} `yaml:"target_activities"`
}

// Load parses the snapshot file at path. Records with broken upstream
// invariants (negative totals, unknown states) are rejected here so the
// engine only ever sees coherent data.
func Load(path string) (insights.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return insights.Snapshot{}, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML snapshot bytes.
func Parse(data []byte) (insights.Snapshot, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return insights.Snapshot{}, fmt.Errorf("parse dataset yaml: %w", err)
	}

	snap := insights.Snapshot{}
	for _, r := range f.Clients {
		snap.Clients = append(snap.Clients, sales.Client{
			ID:          r.ID,
			Name:        r.Name,
			Salesperson: r.Salesperson,
			State:       sales.LifecycleState(r.State),
			Stage:       sales.Stage(r.Stage),
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	for _, r := range f.Orders {
		o := sales.Order{
			ID:          r.ID,
			ClientID:    r.ClientID,
			Salesperson: r.Salesperson,
			Total:       r.Total,
			State:       sales.OrderState(r.State),
			CreatedAt:   r.CreatedAt,
		}
		if err := o.Validate(); err != nil {
			return insights.Snapshot{}, fmt.Errorf("dataset: %w", err)
		}
		snap.Orders = append(snap.Orders, o)
	}
	for _, r := range f.Opportunities {
		o := sales.Opportunity{
			ID:          r.ID,
			ClientID:    r.ClientID,
			Salesperson: r.Salesperson,
			Value:       r.Value,
			Probability: r.Probability,
			Stage:       sales.Stage(r.Stage),
			CreatedAt:   r.CreatedAt,
		}
		if err := o.Validate(); err != nil {
			return insights.Snapshot{}, fmt.Errorf("dataset: %w", err)
		}
		snap.Opportunities = append(snap.Opportunities, o)
	}
	for _, r := range f.Activities {
		snap.Activities = append(snap.Activities, sales.Activity{
			ID:          r.ID,
			ClientID:    r.ClientID,
			Salesperson: r.Salesperson,
			Type:        sales.ActivityType(r.Type),
			Completed:   r.Completed,
			DueAt:       r.DueAt,
			CreatedAt:   r.CreatedAt,
		})
	}
	for _, r := range f.Quotas {
		snap.Quotas = append(snap.Quotas, sales.Quota{
			Salesperson:      r.Salesperson,
			Month:            r.Month,
			Year:             r.Year,
			TargetRevenue:    r.TargetRevenue,
			TargetNewClients: r.TargetNewClients,
			TargetActivities: sales.ActivityTargets{
				Calls:    r.TargetActivities.Calls,
				Emails:   r.TargetActivities.Emails,
				Meetings: r.TargetActivities.Meetings,
				Notes:    r.TargetActivities.Notes,
				Tasks:    r.TargetActivities.Tasks,
			},
		})
	}
	return snap, nil
}
