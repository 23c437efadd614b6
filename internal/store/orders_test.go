package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/models"
)

func newOrdersStore() *OrdersStore {
	return NewOrdersStore(api.NewOrdersService(nil), testLogger())
}

func TestOrdersFetchSurfacesUnsupported(t *testing.T) {
	store := newOrdersStore()
	store.AddOrder(models.FrontendOrder{ID: "o1", CustomerName: "Ravi"})

	err := store.Fetch(context.Background(), "branch-1", api.OrderListOptions{})
	require.Error(t, err)
	assert.True(t, api.IsUnsupported(err))

	state := store.State()
	assert.Equal(t,
		"Order management is not implemented in the backend yet. This feature will be available in a future update.",
		state.Err)
	assert.False(t, state.IsLoading)
	require.Len(t, state.Orders, 1, "local orders survive the failed fetch")
}

func TestOrdersUpdateStatusSurfacesUnsupported(t *testing.T) {
	store := newOrdersStore()
	store.AddOrder(models.FrontendOrder{ID: "o1", Status: models.StatusNew})

	err := store.UpdateStatus(context.Background(), "o1", models.StatusReady)
	require.Error(t, err)
	assert.True(t, api.IsUnsupported(err))

	state := store.State()
	assert.Equal(t, models.StatusNew, state.Orders[0].Status, "a failed update leaves the order untouched")
	assert.Contains(t, state.Err, "Order status updates")
}

func TestAddOrderPrepends(t *testing.T) {
	store := newOrdersStore()

	store.AddOrder(models.FrontendOrder{ID: "first"})
	store.AddOrder(models.FrontendOrder{ID: "second"})

	orders := store.State().Orders
	require.Len(t, orders, 2)
	assert.Equal(t, "second", orders[0].ID, "newest order comes first")
	assert.Equal(t, "first", orders[1].ID)
}

func TestSetOrderStatusNormalizes(t *testing.T) {
	store := newOrdersStore()
	store.AddOrder(models.FrontendOrder{ID: "o1", Status: models.StatusNew})

	store.SetOrderStatus("o1", "out for delivery")
	assert.Equal(t, models.StatusOutForDelivery, store.State().Orders[0].Status)

	store.SetOrderStatus("o1", "nonsense")
	assert.Equal(t, models.StatusNew, store.State().Orders[0].Status)

	// Unknown ids are a no-op.
	store.SetOrderStatus("missing", "ready")
	assert.Len(t, store.State().Orders, 1)
}

func TestFiltered(t *testing.T) {
	store := newOrdersStore()
	store.SetOrders([]models.FrontendOrder{
		{ID: "o1", Status: models.StatusNew},
		{ID: "o2", Status: models.StatusReady},
		{ID: "o3", Status: models.StatusNew},
	})

	assert.Len(t, store.Filtered(), 3, "the default filter shows everything")

	store.SetFilter("ready")
	filtered := store.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "o2", filtered[0].ID)

	store.SetFilter("out_for_delivery")
	assert.Empty(t, store.Filtered())

	store.SetFilter(FilterAll)
	assert.Len(t, store.Filtered(), 3)
}

func TestSetFilterNormalizesSpelling(t *testing.T) {
	store := newOrdersStore()
	store.SetOrders([]models.FrontendOrder{{ID: "o1", Status: models.StatusOutForDelivery}})

	store.SetFilter("out for delivery")
	require.Len(t, store.Filtered(), 1)
}
