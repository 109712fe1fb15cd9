package orders

import (
	"context"
	"net/url"
	"slices"
	"sync"

	"github.com/shophub/shopkit/pkg/apiclient"
	"github.com/shophub/shopkit/pkg/resource"
)

// Store holds the orders domain state: the order list in most-recent-first
// order and the currently viewed order.
type Store struct {
	mu      sync.Mutex
	client  *apiclient.Client
	tracker resource.Tracker

	orders  []Order
	current *Order
}

// NewStore creates an orders store backed by client.
func NewStore(client *apiclient.Client) *Store {
	return &Store{client: client}
}

// Create places a new order. On success the returned order becomes the
// current order and is prepended to the list; on failure the list is
// untouched.
func (s *Store) Create(ctx context.Context, input CreateInput) error {
	type orderResponse struct {
		Order Order `json:"order"`
	}

	return resource.Run(ctx, &s.mu, &s.tracker, "Failed to create order",
		func(ctx context.Context) (orderResponse, error) {
			var resp orderResponse
			err := s.client.Post(ctx, "/orders", input, &resp)
			return resp, err
		},
		func(resp orderResponse) {
			s.current = &resp.Order
			s.orders = append([]Order{resp.Order}, s.orders...)
		},
	)
}

// FetchMine replaces the order list with the server's payload.
func (s *Store) FetchMine(ctx context.Context) error {
	type listResponse struct {
		Orders []Order `json:"orders"`
	}

	return resource.Run(ctx, &s.mu, &s.tracker, "Failed to fetch orders",
		func(ctx context.Context) (listResponse, error) {
			var resp listResponse
			err := s.client.Get(ctx, "/orders/my-orders", &resp)
			return resp, err
		},
		func(resp listResponse) {
			s.orders = resp.Orders
		},
	)
}

// FetchByID loads one order into the current-order pointer.
func (s *Store) FetchByID(ctx context.Context, id string) error {
	type orderResponse struct {
		Order Order `json:"order"`
	}

	return resource.Run(ctx, &s.mu, &s.tracker, "Order not found",
		func(ctx context.Context) (orderResponse, error) {
			var resp orderResponse
			err := s.client.Get(ctx, "/orders/"+url.PathEscape(id), &resp)
			return resp, err
		},
		func(resp orderResponse) {
			s.current = &resp.Order
		},
	)
}

// Cancel cancels the order. On success the server's updated order replaces
// the matching list entry in place, keeping its position; the current-order
// pointer is updated too when it refers to the same order.
func (s *Store) Cancel(ctx context.Context, id string) error {
	type orderResponse struct {
		Order Order `json:"order"`
	}

	return resource.Run(ctx, &s.mu, &s.tracker, "Failed to cancel order",
		func(ctx context.Context) (orderResponse, error) {
			var resp orderResponse
			err := s.client.Put(ctx, "/orders/"+url.PathEscape(id)+"/cancel", nil, &resp)
			return resp, err
		},
		func(resp orderResponse) {
			if i := slices.IndexFunc(s.orders, func(o Order) bool { return o.ID == resp.Order.ID }); i >= 0 {
				s.orders[i] = resp.Order
			}
			if s.current != nil && s.current.ID == resp.Order.ID {
				s.current = &resp.Order
			}
		},
	)
}

// Orders returns a copy of the order list, most recent first.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders)
}

// Current returns a copy of the currently viewed order, or nil.
func (s *Store) Current() *Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

// Status returns the lifecycle state of the most recent request.
func (s *Store) Status() resource.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Status()
}

// Err returns the captured failure message, empty unless the last request failed.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Err()
}

// ClearCurrent drops the current-order pointer.
func (s *Store) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// ClearError drops a stale failure message without touching data or status.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.ClearError()
}
