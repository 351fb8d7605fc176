package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/restomate/poscli/internal/models"
)

func userWithRole(role models.Role) *models.User {
	return &models.User{ID: 1, Username: "u", Role: role, IsActive: true}
}

func TestAuthorize_WaitsDuringRestore(t *testing.T) {
	// While the startup check is in flight no redirect may happen, not even
	// to login.
	allowed, _ := AllowedRoles(DestKitchen)
	require.Equal(t, DecisionWait, Authorize(StateUnknown, nil, allowed))
	require.Equal(t, DecisionWait, Authorize(StateUnknown, nil, nil))
}

func TestAuthorize_UnauthenticatedRedirectsToLogin(t *testing.T) {
	for _, dest := range []Destination{
		DestDashboard, DestOrders, DestKitchen, DestCashier,
		DestProducts, DestCategories, DestTables, DestUsers,
	} {
		allowed, ok := AllowedRoles(dest)
		require.True(t, ok, "destination %s must be registered", dest)
		require.Equal(t, DecisionLogin, Authorize(StateUnauthenticated, nil, allowed), "dest %s", dest)
	}
}

func TestAuthorize_RoleMembership(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
		dest Destination
		want Decision
	}{
		{"admin reaches everything: kitchen", models.RoleAdmin, DestKitchen, DecisionAllow},
		{"admin reaches everything: users", models.RoleAdmin, DestUsers, DecisionAllow},
		{"kitchen reaches kitchen", models.RoleKitchen, DestKitchen, DecisionAllow},
		{"cashier reaches cashier", models.RoleCashier, DestCashier, DecisionAllow},
		{"waiter denied kitchen", models.RoleWaiter, DestKitchen, DecisionDenied},
		{"waiter denied products", models.RoleWaiter, DestProducts, DecisionDenied},
		{"kitchen denied cashier", models.RoleKitchen, DestCashier, DecisionDenied},
		{"cashier denied users", models.RoleCashier, DestUsers, DecisionDenied},
		{"waiter reaches open dashboard", models.RoleWaiter, DestDashboard, DecisionAllow},
		{"kitchen reaches open orders", models.RoleKitchen, DestOrders, DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, ok := AllowedRoles(tt.dest)
			require.True(t, ok)
			got := Authorize(StateAuthenticated, userWithRole(tt.role), allowed)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorize_NilIdentityNeverRenders(t *testing.T) {
	// Authenticated state with no identity is inconsistent; fail closed.
	require.Equal(t, DecisionLogin, Authorize(StateAuthenticated, nil, nil))
}

func TestRoleSet_Contains(t *testing.T) {
	set := NewRoleSet(models.RoleAdmin, models.RoleKitchen)
	require.True(t, set.Contains(models.RoleAdmin))
	require.True(t, set.Contains(models.RoleKitchen))
	require.False(t, set.Contains(models.RoleWaiter))
	require.False(t, set.Contains(models.RoleCashier))
}
