package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/restomate/poscli/internal/common"
	"github.com/restomate/poscli/internal/logging"
	"github.com/restomate/poscli/internal/models"
)

// State is the auth state machine position.
type State string

const (
	// StateUnknown holds from construction until Restore resolves.
	// Authorization decisions must not be made in this state.
	StateUnknown         State = "unknown"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// API is the slice of the gateway client the manager needs.
type API interface {
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Notifier delivers user-visible notifications (the terminal analogue of
// toasts).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator forces navigation to the login screen when the session is lost
// mid-use.
type Navigator interface {
	ToLogin()
}

// Manager orchestrates login, startup restoration and logout. It is the only
// component allowed to write the token and identity; everything else reads
// them at the moment of use.
type Manager struct {
	store     Store
	api       API
	notifier  Notifier
	navigator Navigator
	log       logging.Logger
	now       func() time.Time

	mu       sync.Mutex
	state    State
	identity *models.User
}

func NewManager(store Store, api API, notifier Notifier, navigator Navigator, log logging.Logger) *Manager {
	return &Manager{
		store:     store,
		api:       api,
		notifier:  notifier,
		navigator: navigator,
		log:       log,
		now:       time.Now,
		state:     StateUnknown,
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Identity returns the current identity, or nil when unauthenticated.
func (m *Manager) Identity() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

func (m *Manager) set(state State, identity *models.User) {
	m.mu.Lock()
	m.state = state
	m.identity = identity
	m.mu.Unlock()
}

// Restore re-establishes a session from the persisted token. It is meant to
// run once, at startup, while observers still see StateUnknown. Every
// failure path downgrades silently to StateUnauthenticated; an expired or
// unreadable session is expected, not an error to show the user.
func (m *Manager) Restore(ctx context.Context) State {
	token, err := m.store.Retrieve(ctx)
	if err != nil {
		m.log.Warn(ctx, "session store unreadable", "error", err)
		m.set(StateUnauthenticated, nil)
		return StateUnauthenticated
	}
	if token == "" {
		m.set(StateUnauthenticated, nil)
		return StateUnauthenticated
	}

	claims, err := Inspect(token)
	if err != nil {
		m.log.Info(ctx, "discarding stored token", "reason", "malformed")
		m.discard(ctx)
		return StateUnauthenticated
	}
	if Expired(claims.ExpiresAt, m.now().Unix()) {
		m.log.Info(ctx, "discarding stored token", "reason", "expired", "sub", claims.Subject)
		m.discard(ctx)
		return StateUnauthenticated
	}

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Warn(ctx, "identity fetch failed during restore", "error", err)
		m.discard(ctx)
		return StateUnauthenticated
	}

	m.set(StateAuthenticated, user)
	m.log.Info(ctx, "session restored", "username", user.Username, "role", user.Role)
	return StateAuthenticated
}

// Login exchanges credentials for a token, persists it, and fetches the
// identity. Nothing is persisted until the backend has accepted the
// credentials.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	token, err := m.api.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			m.notifier.Error("Incorrect username or password")
		} else {
			m.notifier.Error("Login failed: " + err.Error())
		}
		return err
	}

	if err := m.store.Persist(ctx, token); err != nil {
		m.notifier.Error("Could not save session")
		return fmt.Errorf("persisting token: %w", err)
	}

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.discard(ctx)
		m.notifier.Error("Login failed: " + err.Error())
		return err
	}

	m.set(StateAuthenticated, user)
	m.notifier.Success("Logged in as " + user.Username)
	return nil
}

// Logout clears the session unconditionally. Safe to call when already
// logged out.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "clearing session store on logout", "error", err)
	}
	m.set(StateUnauthenticated, nil)
	m.notifier.Success("Logged out")
	return nil
}

// AuthorizationLost is the transport's auth-lost hook: the backend rejected
// a previously valid token mid-use. The store is cleared through the same
// path as Logout and the user is sent to the login screen; the redirect
// itself is the signal, so no extra notification is emitted.
func (m *Manager) AuthorizationLost(ctx context.Context) {
	m.log.Info(ctx, "authorization lost, clearing session")
	m.discard(ctx)
	if m.navigator != nil {
		m.navigator.ToLogin()
	}
}

// Authorize gates a destination against the current state and identity.
func (m *Manager) Authorize(dest Destination) Decision {
	m.mu.Lock()
	state, identity := m.state, m.identity
	m.mu.Unlock()

	allowed, _ := AllowedRoles(dest)
	return Authorize(state, identity, allowed)
}

func (m *Manager) discard(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "clearing session store", "error", err)
	}
	m.set(StateUnauthenticated, nil)
}
