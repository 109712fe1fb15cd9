// Package shopkit is the client-side state layer for a ShopHub storefront.
// It mediates between a UI and the ShopHub REST API, owning the session
// lifecycle, the client-local shopping cart with its derived pricing, and
// the server-backed resource domains (catalog, orders, wishlist).
//
// The layer is assembled into one explicitly-owned Store, initialized once
// from durable storage and passed to consumers by reference. The UI reads
// state through the component query methods and mutates it only through the
// defined operations; it never holds a writable reference into the state.
//
//	┌────┐  operations   ┌──────────────────────────────┐
//	│ UI │ ────────────► │            Store             │
//	└────┘               │ session │ cart │ catalog     │
//	   ▲                 │ orders  │ wishlist           │
//	   │ reads           └──────────────┬───────────────┘
//	   └─────────────────┐              │ apiclient
//	                     │              ▼
//	                 snapshots     ShopHub REST API
//
// Basic usage:
//
//	store, err := shopkit.New(ctx)
//	if err != nil {
//	    // Handle error
//	}
//
//	if err := store.Session.Login(ctx, session.Credentials{Email: email, Password: password}); err != nil {
//	    showError(store.Session.Err())
//	}
//
//	_ = store.Catalog.Fetch(ctx, catalog.Filters{Keyword: "phone"})
//	render(store.Catalog.Products())
package shopkit
