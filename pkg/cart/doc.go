// Package cart owns the shopping cart: its line items and the derived
// pricing totals. The cart is fully client-local — no server round-trip is
// involved in any cart mutation — and every mutation synchronously persists
// the full line list to durable storage before it returns, so a process
// restart never loses a confirmed change.
//
// Pricing is pure derivation over the line list: a 10% tax on the items
// subtotal and a flat 50 shipping fee waived once the subtotal strictly
// exceeds 500. All monetary values are decimal, rounded to 2 places.
//
// # Usage
//
//	engine := cart.NewEngine(ctx, store)
//
//	err := engine.Add(ctx, cart.Line{
//	    ProductID: "p1",
//	    Name:      "Headphones",
//	    UnitPrice: decimal.NewFromInt(100),
//	    Quantity:  2,
//	})
//
//	totals := engine.Totals() // ItemsPrice 200, Tax 20, Shipping 50, Total 270
package cart
