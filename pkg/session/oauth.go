package session

import (
	"context"

	"golang.org/x/oauth2"
)

// EstablishFromOAuth2 installs a session from a token obtained through a
// real third-party identity flow. It is a thin bridge over
// EstablishExternalSession for callers already holding an *oauth2.Token.
func (m *Manager) EstablishFromOAuth2(ctx context.Context, token *oauth2.Token, user User) error {
	if token == nil || !token.Valid() {
		return ErrInvalidExternalSession
	}
	return m.EstablishExternalSession(ctx, token.AccessToken, user)
}
