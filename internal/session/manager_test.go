package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/restomate/poscli/internal/common"
	"github.com/restomate/poscli/internal/logging"
	"github.com/restomate/poscli/internal/models"
)

// ---- fakes ----

type memStore struct {
	token       string
	retrieveErr error

	persistCalls int
	clearCalls   int
}

func (s *memStore) Persist(ctx context.Context, token string) error {
	s.persistCalls++
	s.token = token
	return nil
}

func (s *memStore) Retrieve(ctx context.Context) (string, error) {
	if s.retrieveErr != nil {
		return "", s.retrieveErr
	}
	return s.token, nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.clearCalls++
	s.token = ""
	return nil
}

type fakeAPI struct {
	loginToken string
	loginErr   error
	user       *models.User
	userErr    error

	loginCalls       int
	currentUserCalls int
	lastUsername     string
	lastPassword     string
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (string, error) {
	f.loginCalls++
	f.lastUsername = username
	f.lastPassword = password
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	f.currentUserCalls++
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

type fakeNotifier struct {
	successes []string
	failures  []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.failures = append(n.failures, msg) }

type fakeNavigator struct {
	toLoginCalls int
}

func (n *fakeNavigator) ToLogin() { n.toLoginCalls++ }

type managerFixture struct {
	m     *Manager
	store *memStore
	api   *fakeAPI
	note  *fakeNotifier
	nav   *fakeNavigator
}

func newFixture(t *testing.T) *managerFixture {
	t.Helper()
	f := &managerFixture{
		store: &memStore{},
		api:   &fakeAPI{},
		note:  &fakeNotifier{},
		nav:   &fakeNavigator{},
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.m = NewManager(f.store, f.api, f.note, f.nav, log)
	return f
}

func validToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	return signToken(t, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
}

var adminUser = &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin, IsActive: true}

// ---- Restore ----

func TestManager_StartsUnknown(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, StateUnknown, f.m.State())
	require.Equal(t, DecisionWait, f.m.Authorize(DestDashboard))
}

func TestManager_Restore_EmptyStore(t *testing.T) {
	f := newFixture(t)

	state := f.m.Restore(context.Background())

	require.Equal(t, StateUnauthenticated, state)
	require.Nil(t, f.m.Identity())
	require.Zero(t, f.api.currentUserCalls, "no backend call without a token")
}

func TestManager_Restore_MalformedToken(t *testing.T) {
	f := newFixture(t)
	f.store.token = "not-a-jwt"

	state := f.m.Restore(context.Background())

	require.Equal(t, StateUnauthenticated, state)
	require.Empty(t, f.store.token, "malformed token must be cleared")
	require.Zero(t, f.api.currentUserCalls)
}

func TestManager_Restore_ExpiredToken(t *testing.T) {
	f := newFixture(t)
	f.store.token = validToken(t, -time.Hour)

	state := f.m.Restore(context.Background())

	require.Equal(t, StateUnauthenticated, state)
	require.Empty(t, f.store.token)
	require.Zero(t, f.api.currentUserCalls, "no identity fetch for an expired token")
}

func TestManager_Restore_TokenExpiringExactlyNow(t *testing.T) {
	f := newFixture(t)
	now := time.Now().Truncate(time.Second)
	f.m.now = func() time.Time { return now }
	f.store.token = signToken(t, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(now),
	})
	f.api.user = adminUser

	// Strict comparison: exp == now is still usable for that instant.
	state := f.m.Restore(context.Background())

	require.Equal(t, StateAuthenticated, state)
	require.Equal(t, 1, f.api.currentUserCalls)
}

func TestManager_Restore_IdentityFetchFails(t *testing.T) {
	f := newFixture(t)
	f.store.token = validToken(t, time.Hour)
	f.api.userErr = common.ErrUnavailable

	state := f.m.Restore(context.Background())

	require.Equal(t, StateUnauthenticated, state)
	require.Empty(t, f.store.token, "store cleared when identity fetch fails")
	require.Nil(t, f.m.Identity())
	// Restore failures are silent: no user-facing notifications.
	require.Empty(t, f.note.failures)
}

func TestManager_Restore_Valid(t *testing.T) {
	f := newFixture(t)
	f.store.token = validToken(t, time.Hour)
	f.api.user = adminUser

	state := f.m.Restore(context.Background())

	require.Equal(t, StateAuthenticated, state)
	require.Equal(t, adminUser, f.m.Identity())
	require.True(t, f.m.IsAuthenticated())
	require.Equal(t, "admin", f.m.Identity().Username)
}

// ---- Login ----

func TestManager_Login_Success(t *testing.T) {
	f := newFixture(t)
	f.m.Restore(context.Background())
	f.api.loginToken = "tok-abc"
	f.api.user = adminUser

	err := f.m.Login(context.Background(), "admin", "admin123")

	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, f.m.State())
	require.Equal(t, "tok-abc", f.store.token, "token persisted")
	require.Equal(t, "admin", f.api.lastUsername)
	require.Equal(t, []string{"Logged in as admin"}, f.note.successes)
}

func TestManager_Login_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	f.m.Restore(context.Background())
	f.api.loginErr = common.ErrInvalidCredentials

	err := f.m.Login(context.Background(), "admin", "wrong")

	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.Equal(t, StateUnauthenticated, f.m.State())
	require.Empty(t, f.store.token, "no partial token write")
	require.Zero(t, f.store.persistCalls)
	require.Equal(t, []string{"Incorrect username or password"}, f.note.failures)
}

func TestManager_Login_NetworkError(t *testing.T) {
	f := newFixture(t)
	f.m.Restore(context.Background())
	f.api.loginErr = common.ErrUnavailable

	err := f.m.Login(context.Background(), "admin", "admin123")

	require.ErrorIs(t, err, common.ErrUnavailable)
	require.Equal(t, StateUnauthenticated, f.m.State())
	require.Len(t, f.note.failures, 1)
}

func TestManager_Login_IdentityFetchFails(t *testing.T) {
	f := newFixture(t)
	f.m.Restore(context.Background())
	f.api.loginToken = "tok-abc"
	f.api.userErr = errors.New("boom")

	err := f.m.Login(context.Background(), "admin", "admin123")

	require.Error(t, err)
	require.Equal(t, StateUnauthenticated, f.m.State())
	require.Empty(t, f.store.token, "token cleared when identity fetch fails after login")
}

// ---- Logout ----

func TestManager_Logout_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.store.token = validToken(t, time.Hour)
	f.api.user = adminUser
	f.m.Restore(context.Background())
	require.True(t, f.m.IsAuthenticated())

	require.NoError(t, f.m.Logout(context.Background()))
	require.Equal(t, StateUnauthenticated, f.m.State())
	require.Nil(t, f.m.Identity())
	require.Empty(t, f.store.token)

	// Second logout in a row is a no-op, never an error.
	require.NoError(t, f.m.Logout(context.Background()))
	require.Equal(t, StateUnauthenticated, f.m.State())
}

// ---- AuthorizationLost ----

func TestManager_AuthorizationLost(t *testing.T) {
	f := newFixture(t)
	f.store.token = validToken(t, time.Hour)
	f.api.user = adminUser
	f.m.Restore(context.Background())
	require.True(t, f.m.IsAuthenticated())

	f.m.AuthorizationLost(context.Background())

	require.Equal(t, StateUnauthenticated, f.m.State())
	require.Nil(t, f.m.Identity())
	require.Empty(t, f.store.token)
	require.Equal(t, 1, f.nav.toLoginCalls, "exactly one navigation per signal")
	// The redirect is the signal; no extra error notification.
	require.Empty(t, f.note.failures)
}

// ---- Authorize through the manager ----

func TestManager_Authorize(t *testing.T) {
	f := newFixture(t)
	f.store.token = validToken(t, time.Hour)
	f.api.user = &models.User{ID: 2, Username: "w", Role: models.RoleWaiter, IsActive: true}
	f.m.Restore(context.Background())

	require.Equal(t, DecisionAllow, f.m.Authorize(DestOrders))
	require.Equal(t, DecisionDenied, f.m.Authorize(DestKitchen))
	require.Equal(t, DecisionDenied, f.m.Authorize(DestUsers))

	require.NoError(t, f.m.Logout(context.Background()))
	require.Equal(t, DecisionLogin, f.m.Authorize(DestOrders))
}
