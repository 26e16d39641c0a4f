// Package session owns the current-user state: it restores the session from
// the credential store at startup, mutates it on login, signup and logout,
// and supplies the bearer token the HTTP client attaches to requests.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"abroadctl/internal/api"
	"abroadctl/internal/logging"
	"abroadctl/internal/models"
	"abroadctl/internal/store"
)

// ErrNotAuthenticated is returned by operations that require a session when
// none is active.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthError is a backend-reported authentication failure. Message is safe to
// show to the user.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// Manager is the single source of truth for "who is logged in". Its user and
// token are set together and cleared together; a corrupt persisted pair is
// treated as no session. Construct once per process and share.
type Manager struct {
	store store.Store
	auth  *api.AuthService
	log   *logging.Logger

	mu      sync.Mutex
	user    *models.User
	token   string
	loading bool
}

// NewManager creates a Manager backed by the given credential store and auth
// service. The manager starts in the loading state until Restore completes.
func NewManager(st store.Store, auth *api.AuthService, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{store: st, auth: auth, log: log, loading: true}
}

// TokenSource returns a function yielding the current bearer token, for
// wiring into the api client. The token is read at call time, so every
// request reflects the session state at the moment it is issued.
func (m *Manager) TokenSource() api.TokenSource {
	return func() string {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.token
	}
}

// CurrentUser returns the authenticated user, or nil when anonymous.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the current bearer token, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Loading reports whether a restore, login, signup or logout is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// IsAdminOrAdvisor reports whether the current user is an admin or advisor.
// False when anonymous.
func (m *Manager) IsAdminOrAdvisor() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil && (m.user.Role == models.RoleAdmin || m.user.Role == models.RoleAdvisor)
}

// IsStudent reports whether the current user is a student. False when
// anonymous.
func (m *Manager) IsStudent() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil && m.user.Role == models.RoleStudent
}

// Restore loads the persisted session, if any. A missing or unparsable half
// of the token/user pair invalidates the whole session and removes both keys
// so a later restore starts clean. Storage failures are treated as "no
// session" rather than surfaced. Always ends the loading state.
func (m *Manager) Restore(ctx context.Context) {
	defer m.setLoading(false)

	token, tokenErr := m.store.Get(ctx, store.KeyToken)
	userData, userErr := m.store.Get(ctx, store.KeyUserData)

	if tokenErr != nil || userErr != nil {
		if !errors.Is(tokenErr, store.ErrKeyNotFound) && tokenErr != nil {
			m.log.Warn("session restore: token unreadable", "error", tokenErr)
		}
		if !errors.Is(userErr, store.ErrKeyNotFound) && userErr != nil {
			m.log.Warn("session restore: user record unreadable", "error", userErr)
		}
		m.clearPersisted(ctx)
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		m.log.Warn("session restore: user record corrupt, clearing", "error", err)
		m.clearPersisted(ctx)
		return
	}

	m.mu.Lock()
	m.user = &user
	m.token = token
	m.mu.Unlock()
	m.log.Info("session restored", "user_id", user.ID, "role", user.Role)
}

// Login authenticates against the backend and adopts the returned session.
// Persistence and token adoption are one logical step: if persisting fails
// after a successful network call, the in-memory session is rolled back and
// the failure surfaces as an *AuthError.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return authFailure(err, "Login failed")
	}
	return m.adopt(ctx, resp)
}

// Signup registers an account and adopts the returned session, with the same
// contract as Login.
func (m *Manager) Signup(ctx context.Context, req api.SignupRequest) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.auth.Register(ctx, req)
	if err != nil {
		return authFailure(err, "Signup failed")
	}
	return m.adopt(ctx, resp)
}

// adopt persists the token and user record and installs them in memory.
func (m *Manager) adopt(ctx context.Context, resp *models.AuthResponse) error {
	userData, err := json.Marshal(resp.User)
	if err != nil {
		return &AuthError{Message: "Could not save session", Err: err}
	}
	if err := m.store.Set(ctx, store.KeyToken, resp.Token); err != nil {
		m.rollback(ctx)
		return &AuthError{Message: "Could not save session", Err: err}
	}
	if err := m.store.Set(ctx, store.KeyUserData, string(userData)); err != nil {
		m.rollback(ctx)
		return &AuthError{Message: "Could not save session", Err: err}
	}

	m.mu.Lock()
	user := resp.User
	m.user = &user
	m.token = resp.Token
	m.mu.Unlock()
	m.log.Info("session established", "user_id", resp.User.ID, "role", resp.User.Role)
	return nil
}

// rollback clears in-memory state and best-effort removes both persisted
// keys after a partial adopt.
func (m *Manager) rollback(ctx context.Context) {
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()
	m.clearPersisted(ctx)
}

// Logout ends the session. The local session always clears; storage
// failures while removing the persisted keys are logged and swallowed.
func (m *Manager) Logout(ctx context.Context) {
	m.setLoading(true)
	defer m.setLoading(false)

	m.clearPersisted(ctx)
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()
	m.log.Info("session ended")
}

// UpdateProfile replaces the current user in place and re-persists the user
// record. The token is untouched.
func (m *Manager) UpdateProfile(ctx context.Context, user models.User) error {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	m.user = &user
	m.mu.Unlock()

	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, store.KeyUserData, string(userData))
}

// RequestPasswordReset starts the three-step password reset flow. No
// session state changes.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) error {
	if err := m.auth.ForgotPassword(ctx, email); err != nil {
		return authFailure(err, "Failed to send reset code. Please try again.")
	}
	return nil
}

// VerifyResetCode checks the emailed reset code.
func (m *Manager) VerifyResetCode(ctx context.Context, email, code string) error {
	if err := m.auth.VerifyResetCode(ctx, email, code); err != nil {
		return authFailure(err, "Invalid or expired code. Please try again.")
	}
	return nil
}

// CompletePasswordReset sets the new password using a verified code.
func (m *Manager) CompletePasswordReset(ctx context.Context, email, code, password string) error {
	if err := m.auth.ResetPassword(ctx, email, code, password); err != nil {
		return authFailure(err, "Failed to reset password. Please try again.")
	}
	return nil
}

func (m *Manager) clearPersisted(ctx context.Context) {
	if err := m.store.Remove(ctx, store.KeyToken); err != nil {
		m.log.Warn("failed to remove persisted token", "error", err)
	}
	if err := m.store.Remove(ctx, store.KeyUserData); err != nil {
		m.log.Warn("failed to remove persisted user record", "error", err)
	}
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

// authFailure maps a backend or transport error to an *AuthError, preferring
// the backend's message and falling back to the generic one.
func authFailure(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &AuthError{Message: apiErr.Message, Err: err}
	}
	return &AuthError{Message: fallback, Err: err}
}
