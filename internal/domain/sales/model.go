package sales

import (
	"fmt"
	"strings"
	"time"
)

// LifecycleState is a client's status in the funnel.
type LifecycleState string

const (
	StateProspect LifecycleState = "prospect"
	StateActive   LifecycleState = "active"
	StateInactive LifecycleState = "inactive"
)

// Stage represents an opportunity's position in the sales pipeline.
type Stage string

const (
	StageInitial     Stage = "initial"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageClosed      Stage = "closed"
	StageLost        Stage = "lost"
)

// OrderState represents the processing status of an order.
type OrderState string

const (
	OrderPending   OrderState = "pending"
	OrderProcessed OrderState = "processed"
)

// ActivityType classifies a scheduled activity.
type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityMeeting ActivityType = "meeting"
	ActivityNote    ActivityType = "note"
	ActivityTask    ActivityType = "task"
)

// Client is an account owned by a salesperson. It holds exactly one
// lifecycle state and one pipeline stage at a time.
type Client struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Salesperson string         `json:"salesperson"`
	State       LifecycleState `json:"state"`
	Stage       Stage          `json:"stage"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Order is a purchase placed by a client. Total is never negative.
type Order struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	Salesperson string     `json:"salesperson"`
	Total       float64    `json:"total"`
	State       OrderState `json:"state"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Opportunity is a potential deal in the pipeline. Probability is a
// percentage in [0, 100].
type Opportunity struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Salesperson string    `json:"salesperson"`
	Value       float64   `json:"value"`
	Probability float64   `json:"probability"`
	Stage       Stage     `json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
}

// Activity is a scheduled touchpoint with a client.
type Activity struct {
	ID          string       `json:"id"`
	ClientID    string       `json:"client_id"`
	Salesperson string       `json:"salesperson"`
	Type        ActivityType `json:"type"`
	Completed   bool         `json:"completed"`
	DueAt       time.Time    `json:"due_at"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ActivityTargets holds the per-type activity counts of a monthly quota.
type ActivityTargets struct {
	Calls    int `json:"calls"`
	Emails   int `json:"emails"`
	Meetings int `json:"meetings"`
	Notes    int `json:"notes"`
	Tasks    int `json:"tasks"`
}

// TrackedTotal sums the activity targets that count toward the monthly
// completion rate. Notes are informational and excluded.
func (t ActivityTargets) TrackedTotal() int {
	return t.Calls + t.Emails + t.Meetings + t.Tasks
}

// Quota is a salesperson's monthly goal set. There is at most one quota
// per (salesperson, month, year).
type Quota struct {
	Salesperson      string          `json:"salesperson"`
	Month            string          `json:"month"`
	Year             int             `json:"year"`
	TargetRevenue    float64         `json:"target_revenue"`
	TargetNewClients int             `json:"target_new_clients"`
	TargetActivities ActivityTargets `json:"target_activities"`
}

// Matches reports whether the quota covers the given calendar month and
// year. Month names compare case-insensitively.
func (q Quota) Matches(month time.Month, year int) bool {
	return q.Year == year && strings.EqualFold(q.Month, month.String())
}

// CreationTime implementations let the aggregation layer treat the five
// record kinds uniformly when bucketing by period.

func (c Client) CreationTime() time.Time      { return c.CreatedAt }
func (o Order) CreationTime() time.Time       { return o.CreatedAt }
func (o Opportunity) CreationTime() time.Time { return o.CreatedAt }
func (a Activity) CreationTime() time.Time    { return a.CreatedAt }

// Validate checks the invariants owned by the upstream CRUD layer.
func (o Order) Validate() error {
	if o.Total < 0 {
		return fmt.Errorf("order %s: total must not be negative", o.ID)
	}
	switch o.State {
	case OrderPending, OrderProcessed:
	default:
		return fmt.Errorf("order %s: unknown state %q", o.ID, o.State)
	}
	return nil
}

// Validate checks probability bounds and stage membership.
func (o Opportunity) Validate() error {
	if o.Probability < 0 || o.Probability > 100 {
		return fmt.Errorf("opportunity %s: probability %v outside [0,100]", o.ID, o.Probability)
	}
	switch o.Stage {
	case StageInitial, StageQualified, StageProposal, StageNegotiation, StageClosed, StageLost:
	default:
		return fmt.Errorf("opportunity %s: unknown stage %q", o.ID, o.Stage)
	}
	return nil
}
