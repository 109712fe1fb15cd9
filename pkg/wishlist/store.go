package wishlist

import (
	"context"
	"net/url"
	"slices"
	"sync"

	"github.com/shophub/shopkit/pkg/apiclient"
	"github.com/shophub/shopkit/pkg/catalog"
	"github.com/shophub/shopkit/pkg/resource"
)

// Store holds the wishlist domain state: the saved products as the server
// last confirmed them.
type Store struct {
	mu      sync.Mutex
	client  *apiclient.Client
	tracker resource.Tracker

	items []catalog.Product
}

// NewStore creates a wishlist store backed by client.
func NewStore(client *apiclient.Client) *Store {
	return &Store{client: client}
}

// wishlistResponse is the backend envelope shared by all wishlist endpoints:
// every operation returns the full updated list.
type wishlistResponse struct {
	Wishlist []catalog.Product `json:"wishlist"`
}

// Fetch replaces the snapshot with the server's wishlist.
func (s *Store) Fetch(ctx context.Context) error {
	return s.run(ctx, "Failed to fetch wishlist", func(ctx context.Context) (wishlistResponse, error) {
		var resp wishlistResponse
		err := s.client.Get(ctx, "/users/wishlist", &resp)
		return resp, err
	})
}

// Add saves a product to the wishlist. The snapshot changes only once the
// server confirms, by adopting its full updated list.
func (s *Store) Add(ctx context.Context, productID string) error {
	return s.run(ctx, "Failed to add to wishlist", func(ctx context.Context) (wishlistResponse, error) {
		var resp wishlistResponse
		err := s.client.Post(ctx, "/users/wishlist/"+url.PathEscape(productID), nil, &resp)
		return resp, err
	})
}

// Remove deletes a product from the wishlist. A rejected removal leaves the
// snapshot byte-for-byte equal to its pre-call value.
func (s *Store) Remove(ctx context.Context, productID string) error {
	return s.run(ctx, "Failed to remove from wishlist", func(ctx context.Context) (wishlistResponse, error) {
		var resp wishlistResponse
		err := s.client.Delete(ctx, "/users/wishlist/"+url.PathEscape(productID), &resp)
		return resp, err
	})
}

// Items returns a copy of the confirmed wishlist.
func (s *Store) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Contains reports whether productID is in the confirmed wishlist.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.ContainsFunc(s.items, func(p catalog.Product) bool { return p.ID == productID })
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

// ClearError drops a stale failure message without touching data or status.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.ClearError()
}

func (s *Store) run(ctx context.Context, fallback string, call func(ctx context.Context) (wishlistResponse, error)) error {
	return resource.Run(ctx, &s.mu, &s.tracker, fallback, call, func(resp wishlistResponse) {
		s.items = resp.Wishlist
	})
}
