package wishlist_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shopkit/pkg/apiclient"
	"github.com/shophub/shopkit/pkg/resource"
	"github.com/shophub/shopkit/pkg/wishlist"
)

func newStore(t *testing.T, handler http.HandlerFunc) *wishlist.Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return wishlist.NewStore(client)
}

const twoItems = `{"wishlist": [
	{"_id": "p1", "name": "Widget", "price": "10"},
	{"_id": "p2", "name": "Gadget", "price": "20"}
]}`

func TestStore_Fetch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/wishlist", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoItems))
	})

	require.NoError(t, store.Fetch(ctx))

	items := store.Items()
	require.Len(t, items, 2)
	assert.True(t, store.Contains("p1"))
	assert.False(t, store.Contains("p9"))
	assert.Equal(t, resource.StatusSucceeded, store.Status())
}

func TestStore_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("adopts server list on confirmation", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.Method {
			case http.MethodGet:
				_, _ = w.Write([]byte(`{"wishlist": [{"_id": "p1", "name": "Widget", "price": "10"}]}`))
			default:
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/users/wishlist/p2", r.URL.Path)
				_, _ = w.Write([]byte(twoItems))
			}
		})

		require.NoError(t, store.Fetch(ctx))
		require.NoError(t, store.Add(ctx, "p2"))

		assert.True(t, store.Contains("p2"))
		assert.Len(t, store.Items(), 2)
	})

	t.Run("no speculative insertion on failure", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte(`{"wishlist": [{"_id": "p1", "name": "Widget", "price": "10"}]}`))
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Product already in wishlist"}`))
		})

		require.NoError(t, store.Fetch(ctx))
		require.Error(t, store.Add(ctx, "p1"))

		assert.Len(t, store.Items(), 1)
		assert.Equal(t, "Product already in wishlist", store.Err())
	})
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("adopts server list on confirmation", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.Method {
			case http.MethodGet:
				_, _ = w.Write([]byte(twoItems))
			default:
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/users/wishlist/p1", r.URL.Path)
				_, _ = w.Write([]byte(`{"wishlist": [{"_id": "p2", "name": "Gadget", "price": "20"}]}`))
			}
		})

		require.NoError(t, store.Fetch(ctx))
		require.NoError(t, store.Remove(ctx, "p1"))

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "p2", items[0].ID)
	})

	t.Run("rejected removal leaves snapshot identical", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte(twoItems))
				return
			}
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Product not in wishlist"}`))
		})

		require.NoError(t, store.Fetch(ctx))
		before := store.Items()

		err := store.Remove(ctx, "p1")
		require.Error(t, err)
		assert.True(t, apiclient.IsNotFound(err))

		assert.Equal(t, before, store.Items())
		assert.Equal(t, resource.StatusFailed, store.Status())
		assert.Equal(t, "Product not in wishlist", store.Err())
	})
}
