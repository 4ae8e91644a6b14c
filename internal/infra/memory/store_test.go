package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-insights/internal/application/insights"
	"sales-insights/internal/domain/sales"
)

func seededStore() *Store {
	created := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	store := NewStore()
	store.Replace(insights.Snapshot{
		Clients: []sales.Client{
			{ID: "c1", Salesperson: "ana", State: sales.StateActive, CreatedAt: created},
			{ID: "c2", Salesperson: "leo", State: sales.StateProspect, CreatedAt: created},
		},
		Orders: []sales.Order{
			{ID: "o1", ClientID: "c1", Salesperson: "ana", Total: 100, State: sales.OrderProcessed, CreatedAt: created},
			{ID: "o2", ClientID: "c1", Salesperson: "ana", Total: 80, State: sales.OrderProcessed, CreatedAt: created},
			{ID: "o3", ClientID: "c2", Salesperson: "leo", Total: 40, State: sales.OrderPending, CreatedAt: created},
		},
		Quotas: []sales.Quota{
			{Salesperson: "ana", Month: "May", Year: 2026},
			{Salesperson: "leo", Month: "May", Year: 2026},
		},
	})
	return store
}

func TestStore_SnapshotFor(t *testing.T) {
	store := seededStore()

	scoped := store.SnapshotFor("ana")
	require.Len(t, scoped.Clients, 1)
	assert.Equal(t, "c1", scoped.Clients[0].ID)
	assert.Len(t, scoped.Orders, 2)
	assert.Len(t, scoped.Quotas, 1)

	admin := store.Snapshot()
	assert.Len(t, admin.Clients, 2)
	assert.Len(t, admin.Orders, 3)
	assert.Len(t, admin.Quotas, 2)
}

func TestStore_SnapshotFor_CopiesRecords(t *testing.T) {
	store := seededStore()

	scoped := store.SnapshotFor("ana")
	scoped.Orders[0].Total = 9999

	again := store.SnapshotFor("ana")
	assert.Equal(t, 100.0, again.Orders[0].Total, "store snapshot must not be reachable through returned slices")
}

func TestStore_Salespeople(t *testing.T) {
	store := seededStore()
	assert.Equal(t, []string{"ana", "leo"}, store.Salespeople())
}

func TestStore_Replace(t *testing.T) {
	store := seededStore()
	store.Replace(insights.Snapshot{})
	assert.Empty(t, store.Snapshot().Clients)
}
