// Package apiclient is the single exit point for every request the state
// layer sends to the ShopHub backend. It wraps net/http with JSON
// encoding/decoding, bearer credential injection, request correlation IDs,
// a structured error taxonomy, and the global session-teardown policy for
// authorization failures.
//
// # Architecture
//
// A Client is configured with a base URL, an optional TokenSource that
// supplies the current session token, and an optional teardown handler.
// Every outbound request flows through Do:
//
//	┌───────────┐  Do(method, path, body)  ┌─────────┐
//	│  callers  │ ───────────────────────► │ Client  │ ──► ShopHub API
//	└───────────┘                          └─────────┘
//	                                            │ 401 outside /auth/login,
//	                                            │ /auth/register
//	                                            ▼
//	                                    teardown handler
//
// A 401 response normally means the stored session token is no longer valid,
// so the client invokes the registered teardown handler to erase the session
// and signal navigation to an unauthenticated entry point. The exception is a
// 401 from the login or register endpoints themselves: rejected credentials
// during session bootstrap must not destroy an unrelated, still-valid
// session, so those failures pass through to the caller untouched.
//
// # Errors
//
// HTTP failures are classified into sentinel errors (ErrUnauthorized,
// ErrNotFound, ErrValidation, ErrServer, ...) wrapped by *APIError, which
// carries the status code and the server-supplied message. Transport-level
// failures map to ErrNetwork or ErrTimeout. ErrorMessage extracts the
// server's message with a caller-supplied fallback, which is how the state
// stores derive their user-visible error strings.
package apiclient
