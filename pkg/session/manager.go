package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/shophub/shopkit/pkg/apiclient"
	"github.com/shophub/shopkit/pkg/storage"
)

// Durable keys owned by the session manager.
const (
	tokenKey = "token"
	userKey  = "user"
)

// NavigateFunc signals the UI layer to move to an unauthenticated entry
// point after a forced teardown.
type NavigateFunc func()

// authResponse is the backend envelope for register/login.
type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// profileResponse is the backend envelope for profile reads and updates.
type profileResponse struct {
	User User `json:"user"`
}

// Manager owns the session state. Network calls run outside its lock, so a
// transport-triggered Teardown can never deadlock against an in-flight
// manager operation.
type Manager struct {
	mu       sync.RWMutex
	client   *apiclient.Client
	store    storage.Storage
	logger   *slog.Logger
	navigate NavigateFunc

	user   *User
	token  string
	status Status
	errMsg string
}

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithNavigator sets the callback invoked after a forced teardown.
func WithNavigator(fn NavigateFunc) Option {
	return func(m *Manager) {
		m.navigate = fn
	}
}

// NewManager creates a manager backed by client and store, rehydrating any
// persisted session. A persisted token without a readable user profile
// violates the session invariant, so both keys are erased and the manager
// starts anonymous.
func NewManager(ctx context.Context, client *apiclient.Client, store storage.Storage, opts ...Option) *Manager {
	m := &Manager{
		client: client,
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		status: StatusAnonymous,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.rehydrate(ctx)
	return m
}

// Register creates a new account and installs the returned session.
func (m *Manager) Register(ctx context.Context, input RegisterInput) error {
	m.begin()

	var resp authResponse
	if err := m.client.Post(ctx, "/auth/register", input, &resp); err != nil {
		m.fail(apiclient.ErrorMessage(err, "Registration failed"))
		return err
	}

	return m.install(ctx, resp.Token, resp.User)
}

// Login authenticates with credentials and installs the returned session.
// A rejected attempt leaves any existing session untouched: only the error
// message changes.
func (m *Manager) Login(ctx context.Context, creds Credentials) error {
	m.begin()

	var resp authResponse
	if err := m.client.Post(ctx, "/auth/login", creds, &resp); err != nil {
		m.fail(apiclient.ErrorMessage(err, "Login failed"))
		return err
	}

	return m.install(ctx, resp.Token, resp.User)
}

// Logout invalidates the session remotely on a best-effort basis, then
// unconditionally erases it from durable storage and memory.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		m.logger.DebugContext(ctx, "remote logout failed, clearing locally anyway", slog.Any("error", err))
	}
	return m.clear(ctx)
}

// EstablishExternalSession installs {token, user} directly, bypassing
// login/register, for callback-style flows returning from a third-party
// identity provider. Calling it twice with the same payload leaves the same
// end state.
func (m *Manager) EstablishExternalSession(ctx context.Context, token string, user User) error {
	if token == "" || user.ID == "" {
		return ErrInvalidExternalSession
	}
	return m.install(ctx, token, user)
}

// Profile fetches the server's copy of the profile and adopts it.
func (m *Manager) Profile(ctx context.Context) error {
	var resp profileResponse
	if err := m.client.Get(ctx, "/auth/profile", &resp); err != nil {
		m.setError(apiclient.ErrorMessage(err, "Failed to get profile"))
		return err
	}
	return m.adoptUser(ctx, resp.User)
}

// UpdateProfile applies patch remotely and adopts the server-returned profile.
func (m *Manager) UpdateProfile(ctx context.Context, patch ProfileUpdate) error {
	var resp profileResponse
	if err := m.client.Put(ctx, "/auth/profile", patch, &resp); err != nil {
		m.setError(apiclient.ErrorMessage(err, "Update failed"))
		return err
	}
	return m.adoptUser(ctx, resp.User)
}

// Teardown erases the session after the transport reported it invalid, then
// signals the navigator. It never calls the backend.
func (m *Manager) Teardown(ctx context.Context) {
	if err := m.clear(ctx); err != nil {
		m.logger.WarnContext(ctx, "failed to erase durable session on teardown", slog.Any("error", err))
	}
	if m.navigate != nil {
		m.navigate()
	}
}

// IsAuthenticated reports whether a session token is held. The session
// invariant guarantees a non-nil user whenever this returns true.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// Token returns the current session token, empty when anonymous. Wire this
// as the transport adapter's token source.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns a copy of the current profile, or nil when anonymous.
func (m *Manager) User() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// Status returns the lifecycle state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Err returns the captured failure message of the last failed operation.
func (m *Manager) Err() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.errMsg
}

// ClearError drops the captured failure message.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = ""
}

// begin marks an authentication attempt in progress and clears prior errors.
func (m *Manager) begin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = StatusAuthenticating
	m.errMsg = ""
}

// fail captures msg and restores the status implied by the held token.
func (m *Manager) fail(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = msg
	if m.token != "" {
		m.status = StatusAuthenticated
	} else {
		m.status = StatusAnonymous
	}
}

// setError captures msg without touching the lifecycle state.
func (m *Manager) setError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = msg
}

// install persists {token, user} together and only then applies them to
// memory. A failed durable write leaves the previous session in place.
func (m *Manager) install(ctx context.Context, token string, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		m.fail("Failed to persist session")
		return errors.Join(ErrPersistFailed, err)
	}
	if err := m.store.Set(ctx, tokenKey, token); err != nil {
		m.fail("Failed to persist session")
		return errors.Join(ErrPersistFailed, err)
	}
	if err := m.store.Set(ctx, userKey, string(data)); err != nil {
		_ = m.store.Remove(ctx, tokenKey)
		m.fail("Failed to persist session")
		return errors.Join(ErrPersistFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = &user
	m.status = StatusAuthenticated
	m.errMsg = ""
	return nil
}

// adoptUser replaces the profile and re-persists it, keeping the token.
func (m *Manager) adoptUser(ctx context.Context, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Join(ErrPersistFailed, err)
	}
	if err := m.store.Set(ctx, userKey, string(data)); err != nil {
		return errors.Join(ErrPersistFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return nil
}

// clear erases the session from durable storage and memory. Memory is
// cleared even when the durable erase fails.
func (m *Manager) clear(ctx context.Context) error {
	tokenErr := m.store.Remove(ctx, tokenKey)
	userErr := m.store.Remove(ctx, userKey)

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.status = StatusAnonymous
	m.errMsg = ""
	m.mu.Unlock()

	if tokenErr != nil || userErr != nil {
		return errors.Join(ErrPersistFailed, tokenErr, userErr)
	}
	return nil
}

// rehydrate restores a persisted session, enforcing the invariant that
// token and user exist together.
func (m *Manager) rehydrate(ctx context.Context) {
	token, err := m.store.Get(ctx, tokenKey)
	if err != nil || token == "" {
		return
	}

	raw, err := m.store.Get(ctx, userKey)
	if err != nil {
		m.logger.WarnContext(ctx, "persisted token without user profile, discarding session")
		_ = m.store.Remove(ctx, tokenKey)
		return
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		m.logger.WarnContext(ctx, "discarding corrupt persisted session", slog.Any("error", err))
		_ = m.store.Remove(ctx, tokenKey)
		_ = m.store.Remove(ctx, userKey)
		return
	}

	m.token = token
	m.user = &user
	m.status = StatusAuthenticated
}
