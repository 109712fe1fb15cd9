package shopkit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shopkit"
	"github.com/shophub/shopkit/pkg/cart"
	"github.com/shophub/shopkit/pkg/catalog"
	"github.com/shophub/shopkit/pkg/config"
	"github.com/shophub/shopkit/pkg/orders"
	"github.com/shophub/shopkit/pkg/session"
	"github.com/shophub/shopkit/pkg/storage"
)

// newBackend serves the subset of the ShopHub API the container tests touch.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"_id":"u1","name":"Jane","email":"jane@example.com"}}`))
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [{"_id": "p1", "name": "Widget", "price": "100"}],
			"totalProducts": 1, "totalPages": 5, "currentPage": 2
		}`))
	})
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		var input orders.CreateInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		w.Header().Set("Content-Type", "application/json")
		order := map[string]any{
			"_id":         "o1",
			"orderItems":  input.Items,
			"orderStatus": "Processing",
			"totalAmount": input.TotalAmount,
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"order": order})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newStore(t *testing.T, baseURL string, store storage.Storage) *shopkit.Store {
	t.Helper()

	s, err := shopkit.New(context.Background(),
		shopkit.WithConfig(config.Client{
			APIBaseURL:  baseURL,
			HTTPTimeout: 10 * time.Second,
		}),
		shopkit.WithStorage(store),
	)
	require.NoError(t, err)
	return s
}

func TestStore_EndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("login then logout leaves no durable state", func(t *testing.T) {
		t.Parallel()
		srv := newBackend(t)
		mem := storage.NewMemory()
		store := newStore(t, srv.URL, mem)

		require.NoError(t, store.Session.Login(ctx, session.Credentials{Email: "jane@example.com", Password: "pw"}))
		require.NoError(t, store.Cart.Add(ctx, cart.Line{ProductID: "p1", Name: "Widget", UnitPrice: decimal.NewFromInt(100), Quantity: 1}))

		assert.ElementsMatch(t, []string{"token", "user", "cart"}, mem.Keys())

		require.NoError(t, store.Logout(ctx))

		assert.False(t, store.Session.IsAuthenticated())
		assert.Nil(t, store.Session.User())
		assert.Empty(t, store.Cart.Lines())
		assert.Empty(t, mem.Keys())
	})

	t.Run("catalog fetch adopts server payload verbatim", func(t *testing.T) {
		t.Parallel()
		srv := newBackend(t)
		store := newStore(t, srv.URL, storage.NewMemory())

		require.NoError(t, store.Catalog.Fetch(ctx, catalog.Filters{}))

		products := store.Catalog.Products()
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0].ID)

		pg := store.Catalog.Pagination()
		assert.Equal(t, 5, pg.TotalPages)
		assert.Equal(t, 2, pg.CurrentPage)
	})

	t.Run("checkout places the cart and clears it", func(t *testing.T) {
		t.Parallel()
		srv := newBackend(t)
		store := newStore(t, srv.URL, storage.NewMemory())

		require.NoError(t, store.Cart.Add(ctx, cart.Line{ProductID: "p1", Name: "Widget", UnitPrice: decimal.NewFromInt(100), Quantity: 2}))

		require.NoError(t, store.Checkout(ctx, orders.ShippingAddress{
			Street: "1 Main St", City: "Springfield", Country: "US",
		}, "card"))

		list := store.Orders.Orders()
		require.Len(t, list, 1)
		assert.Equal(t, "o1", list[0].ID)
		require.NotNil(t, store.Orders.Current())

		assert.Empty(t, store.Cart.Lines())
	})

	t.Run("cart survives a restart of the container", func(t *testing.T) {
		t.Parallel()
		srv := newBackend(t)
		mem := storage.NewMemory()

		first := newStore(t, srv.URL, mem)
		require.NoError(t, first.Cart.Add(ctx, cart.Line{ProductID: "p1", Name: "Widget", UnitPrice: decimal.NewFromInt(100), Quantity: 2}))

		second := newStore(t, srv.URL, mem)
		lines := second.Cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("unknown storage backend is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := shopkit.New(ctx, shopkit.WithConfig(config.Client{
			APIBaseURL:     "http://localhost:1",
			StorageBackend: "cloud",
		}))
		assert.ErrorIs(t, err, shopkit.ErrUnknownStorageBackend)
	})
}
