package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/mapping"
	"github.com/nashtto/partnerctl/internal/models"
)

// FilterAll shows every order regardless of status.
const FilterAll = "all"

// OrdersState is a snapshot of the orders slice.
type OrdersState struct {
	Orders    []models.FrontendOrder
	Filter    string
	IsLoading bool
	Err       string
}

// OrdersStore owns the order list slice. The backend endpoints behind it are
// not live yet, so the async operations currently surface the unsupported
// message; the synchronous mutations back local flows in the meantime.
type OrdersStore struct {
	mu      sync.RWMutex
	state   OrdersState
	orders  *api.OrdersService
	log     *logrus.Logger
	flights inflight
}

// NewOrdersStore creates an orders store over the given orders service.
func NewOrdersStore(orders *api.OrdersService, log *logrus.Logger) *OrdersStore {
	return &OrdersStore{
		state:  OrdersState{Orders: []models.FrontendOrder{}, Filter: FilterAll},
		orders: orders,
		log:    log,
	}
}

// State returns a copy of the current slice state.
func (s *OrdersStore) State() OrdersState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.state
	state.Orders = append([]models.FrontendOrder(nil), s.state.Orders...)
	return state
}

// SetOrders replaces the whole order list.
func (s *OrdersStore) SetOrders(orders []models.FrontendOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if orders == nil {
		orders = []models.FrontendOrder{}
	}
	s.state.Orders = orders
}

// AddOrder prepends one order, newest first.
func (s *OrdersStore) AddOrder(order models.FrontendOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Orders = append([]models.FrontendOrder{order}, s.state.Orders...)
}

// SetOrderStatus normalizes the given status and applies it to the order with
// the given id. Unknown ids are a no-op.
func (s *OrdersStore) SetOrderStatus(id string, status string) {
	normalized := mapping.NormalizeOrderStatus(status)
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := append([]models.FrontendOrder(nil), s.state.Orders...)
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = normalized
			break
		}
	}
	s.state.Orders = orders
}

// SetFilter sets the active status filter. The value is normalized unless it
// is FilterAll.
func (s *OrdersStore) SetFilter(filter string) {
	if filter != FilterAll {
		filter = string(mapping.NormalizeOrderStatus(filter))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filter = filter
}

// Filtered returns the orders matching the active filter.
func (s *OrdersStore) Filtered() []models.FrontendOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Filter == FilterAll || s.state.Filter == "" {
		return append([]models.FrontendOrder(nil), s.state.Orders...)
	}
	matched := make([]models.FrontendOrder, 0, len(s.state.Orders))
	for _, order := range s.state.Orders {
		if string(order.Status) == s.state.Filter {
			matched = append(matched, order)
		}
	}
	return matched
}

// Fetch loads the branch's orders into the slice. Until the backend ships the
// endpoint this records the unsupported message into Err.
func (s *OrdersStore) Fetch(ctx context.Context, branchID string, opts api.OrderListOptions) error {
	return s.flights.do("fetch:"+branchID, func() error {
		s.begin()
		orders, err := s.orders.ListOrders(ctx, branchID, opts)
		if err != nil {
			s.fail(err)
			return err
		}
		mapped := mapping.MapDatabaseOrdersToFrontend(orders, nil)
		s.mu.Lock()
		s.state.Orders = mapped
		s.state.IsLoading = false
		s.mu.Unlock()
		return nil
	})
}

// UpdateStatus pushes a status change to the backend, then applies it
// locally. Until the backend ships the endpoint this records the unsupported
// message into Err and leaves the order untouched.
func (s *OrdersStore) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	s.begin()
	updated, err := s.orders.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.state.IsLoading = false
	s.mu.Unlock()
	s.SetOrderStatus(orderID, string(updated.Status))
	return nil
}

func (s *OrdersStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = true
	s.state.Err = ""
}

func (s *OrdersStore) fail(err error) {
	if api.IsUnsupported(err) {
		s.log.WithError(err).Debug("orders endpoint not available yet")
	} else {
		s.log.WithError(err).Warn("orders operation failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	s.state.Err = errorMessage(err)
}
