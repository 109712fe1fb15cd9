// Package resource provides the request/response state machinery shared by
// the server-backed resource domains (catalog, orders, wishlist). Each
// domain holds server-derived data plus a Tracker recording the lifecycle of
// its most recent request:
//
//	Idle ──► Pending ──► Succeeded
//	              └────► Failed
//
// Starting a request marks the domain Pending and clears any stale error.
// Success applies the server payload atomically and marks Succeeded. Failure
// marks Failed with a message derived from the transport error and leaves
// the existing data untouched (stale but present).
//
// There is deliberately no de-duplication, cancellation, or generation
// token: when two requests for the same domain overlap, whichever resolves
// last determines the domain's final visible state. This last-writer-wins
// race is a documented property of the layer, not corrected here.
package resource
