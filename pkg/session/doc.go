// Package session owns the authenticated-identity lifecycle: registering,
// logging in and out, establishing sessions from external identity flows,
// and keeping the `{token, user}` pair durably persisted.
//
// # States
//
//	Anonymous ──► Authenticating ──► Authenticated
//	                    │
//	                    └──► (error captured, previous state kept)
//
// The manager maintains one invariant at all times: it is authenticated if
// and only if it holds a non-empty token, and whenever it is authenticated
// the user profile is non-nil. Token and user are persisted together or not
// at all, so a process restart can never observe half a session.
//
// Operation failures never escape as panics; they are returned as errors and
// captured as a user-visible message readable through Err.
//
// # Teardown
//
// Teardown erases the session from memory and durable storage and signals
// the configured navigator to move the UI to an unauthenticated entry point.
// It is wired as the transport adapter's handler for authorization failures
// outside the login/register endpoints.
package session
