package catalog

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"sync"

	"github.com/shophub/shopkit/pkg/apiclient"
	"github.com/shophub/shopkit/pkg/resource"
)

// Store holds the catalog domain state. All state transitions go through
// the resource machinery: Pending while a request is in flight, payloads
// applied atomically on success, data kept stale-but-present on failure.
type Store struct {
	mu      sync.Mutex
	client  *apiclient.Client
	tracker resource.Tracker

	products   []Product
	featured   []Product
	current    *Product
	pagination Pagination
}

// NewStore creates a catalog store backed by client.
func NewStore(client *apiclient.Client) *Store {
	return &Store{
		client:     client,
		pagination: Pagination{CurrentPage: 1},
	}
}

// Fetch loads the product listing matching filters and adopts the server's
// products and pagination values verbatim.
func (s *Store) Fetch(ctx context.Context, filters Filters) error {
	type listResponse struct {
		Products      []Product `json:"products"`
		TotalProducts int       `json:"totalProducts"`
		TotalPages    int       `json:"totalPages"`
		CurrentPage   int       `json:"currentPage"`
	}

	path := "/products"
	if query := filters.encode(); query != "" {
		path += "?" + query
	}

	return resource.Run(ctx, &s.mu, &s.tracker, "Failed to fetch products",
		func(ctx context.Context) (listResponse, error) {
			var resp listResponse
			err := s.client.Get(ctx, path, &resp)
			return resp, err
		},
		func(resp listResponse) {
			s.products = resp.Products
			s.pagination = Pagination{
				TotalProducts: resp.TotalProducts,
				TotalPages:    resp.TotalPages,
				CurrentPage:   resp.CurrentPage,
			}
		},
	)
}

// FetchByID loads one product into the current-product pointer.
func (s *Store) FetchByID(ctx context.Context, id string) error {
	type productResponse struct {
		Product Product `json:"product"`
	}

	return resource.Run(ctx, &s.mu, &s.tracker, "Product not found",
		func(ctx context.Context) (productResponse, error) {
			var resp productResponse
			err := s.client.Get(ctx, "/products/"+url.PathEscape(id), &resp)
			return resp, err
		},
		func(resp productResponse) {
			s.current = &resp.Product
		},
	)
}

// FetchFeatured loads the featured-products list.
func (s *Store) FetchFeatured(ctx context.Context) error {
	type featuredResponse struct {
		Products []Product `json:"products"`
	}

	return resource.Run(ctx, &s.mu, &s.tracker, "Failed to fetch featured products",
		func(ctx context.Context) (featuredResponse, error) {
			var resp featuredResponse
			err := s.client.Get(ctx, "/products/featured", &resp)
			return resp, err
		},
		func(resp featuredResponse) {
			s.featured = resp.Products
		},
	)
}

// AddReview submits a review for the product and, on success, replaces the
// current-product pointer with the server's updated product, including its
// new review list.
func (s *Store) AddReview(ctx context.Context, id string, review ReviewInput) error {
	type productResponse struct {
		Product Product `json:"product"`
	}

	return resource.Run(ctx, &s.mu, &s.tracker, "Failed to add review",
		func(ctx context.Context) (productResponse, error) {
			var resp productResponse
			err := s.client.Post(ctx, "/products/"+url.PathEscape(id)+"/reviews", review, &resp)
			return resp, err
		},
		func(resp productResponse) {
			s.current = &resp.Product
		},
	)
}

// Products returns a copy of the current listing.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

// FeaturedProducts returns a copy of the featured list.
func (s *Store) FeaturedProducts() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.featured)
}

// Current returns a copy of the currently viewed product, or nil.
func (s *Store) Current() *Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

// Pagination returns the server-reported paging of the listing.
func (s *Store) Pagination() Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
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

// ClearCurrent drops the current-product pointer.
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

// encode builds the query string, skipping zero-valued filters.
func (f Filters) encode() string {
	values := url.Values{}
	if f.Keyword != "" {
		values.Set("keyword", f.Keyword)
	}
	if f.Category != "" {
		values.Set("category", f.Category)
	}
	if !f.MinPrice.IsZero() {
		values.Set("minPrice", f.MinPrice.String())
	}
	if !f.MaxPrice.IsZero() {
		values.Set("maxPrice", f.MaxPrice.String())
	}
	if f.MinRating > 0 {
		values.Set("rating", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	return values.Encode()
}
