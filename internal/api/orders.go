package api

import (
	"context"

	"github.com/nashtto/partnerctl/internal/models"
)

// OrdersService wraps the planned order management endpoints. None of them
// are served by the backend yet: every method returns a typed
// UnsupportedError so callers are forced to handle the gap instead of
// catching an arbitrary failure.
type OrdersService struct {
	client *Client
}

// NewOrdersService creates an orders service over the given transport client.
func NewOrdersService(client *Client) *OrdersService {
	return &OrdersService{client: client}
}

// OrderListOptions filters an order listing. Page is zero-based.
type OrderListOptions struct {
	Status   models.OrderStatus
	Page     int
	Size     int
	DateFrom string
	DateTo   string
}

// ListOrders is not available server-side yet.
func (s *OrdersService) ListOrders(ctx context.Context, branchID string, opts OrderListOptions) ([]models.DatabaseOrder, error) {
	return nil, &UnsupportedError{Feature: "Order management"}
}

// GetOrder is not available server-side yet.
func (s *OrdersService) GetOrder(ctx context.Context, orderID string) (models.DatabaseOrder, error) {
	return models.DatabaseOrder{}, &UnsupportedError{Feature: "Order management"}
}

// ListOrderItems is not available server-side yet.
func (s *OrdersService) ListOrderItems(ctx context.Context, orderID string) ([]models.DatabaseOrderItem, error) {
	return nil, &UnsupportedError{Feature: "Order management"}
}

// UpdateOrderStatus is not available server-side yet.
func (s *OrdersService) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.DatabaseOrder, error) {
	return models.DatabaseOrder{}, &UnsupportedError{Feature: "Order status updates"}
}

// AcceptOrder is not available server-side yet.
func (s *OrdersService) AcceptOrder(ctx context.Context, orderID string, estimatedPrepTime int) (models.DatabaseOrder, error) {
	return models.DatabaseOrder{}, &UnsupportedError{Feature: "Order acceptance"}
}

// RejectOrder is not available server-side yet.
func (s *OrdersService) RejectOrder(ctx context.Context, orderID, reason string) (models.DatabaseOrder, error) {
	return models.DatabaseOrder{}, &UnsupportedError{Feature: "Order rejection"}
}

// CancelOrder is not available server-side yet.
func (s *OrdersService) CancelOrder(ctx context.Context, orderID, reason string) (models.DatabaseOrder, error) {
	return models.DatabaseOrder{}, &UnsupportedError{Feature: "Order cancellation"}
}

// MarkOrderReady is not available server-side yet.
func (s *OrdersService) MarkOrderReady(ctx context.Context, orderID string) (models.DatabaseOrder, error) {
	return models.DatabaseOrder{}, &UnsupportedError{Feature: "Order status updates"}
}

// BulkUpdateStatus is not available server-side yet.
func (s *OrdersService) BulkUpdateStatus(ctx context.Context, orderIDs []string, status models.OrderStatus) error {
	return &UnsupportedError{Feature: "Bulk order updates"}
}

// SearchOrders is not available server-side yet.
func (s *OrdersService) SearchOrders(ctx context.Context, branchID, query string, page, size int) ([]models.DatabaseOrder, error) {
	return nil, &UnsupportedError{Feature: "Order search"}
}

// DashboardStats is not available server-side yet.
func (s *OrdersService) DashboardStats(ctx context.Context, branchID, dateRange string) (models.DashboardStats, error) {
	return models.DashboardStats{}, &UnsupportedError{Feature: "Order analytics"}
}

// TopItems is not available server-side yet.
func (s *OrdersService) TopItems(ctx context.Context, branchID, period string, limit int) ([]models.TopItem, error) {
	return nil, &UnsupportedError{Feature: "Order analytics"}
}
