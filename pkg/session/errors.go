package session

import "errors"

var (
	// ErrInvalidExternalSession indicates an external-session payload with an
	// empty token or no user profile
	ErrInvalidExternalSession = errors.New("session.invalid_external_session")

	// ErrPersistFailed indicates the session could not be written durably; the
	// in-memory session is left as it was
	ErrPersistFailed = errors.New("session.persist_failed")
)
