package session

import "github.com/restomate/poscli/internal/models"

// Destination names a navigable screen.
type Destination string

const (
	DestDashboard  Destination = "dashboard"
	DestOrders     Destination = "orders"
	DestKitchen    Destination = "kitchen"
	DestCashier    Destination = "cashier"
	DestProducts   Destination = "products"
	DestCategories Destination = "categories"
	DestTables     Destination = "tables"
	DestUsers      Destination = "users"
)

// DefaultLanding is where a denied-but-authenticated user is sent.
const DefaultLanding = DestDashboard

// RoleSet is the set of roles allowed to view a destination.
type RoleSet map[models.Role]struct{}

func NewRoleSet(roles ...models.Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Contains(r models.Role) bool {
	_, ok := s[r]
	return ok
}

// routePermissions is the static screen → allowed-roles table. A nil set
// means any authenticated identity may access the destination.
var routePermissions = map[Destination]RoleSet{
	DestDashboard:  nil,
	DestOrders:     nil,
	DestKitchen:    NewRoleSet(models.RoleAdmin, models.RoleKitchen),
	DestCashier:    NewRoleSet(models.RoleAdmin, models.RoleCashier),
	DestProducts:   NewRoleSet(models.RoleAdmin),
	DestCategories: NewRoleSet(models.RoleAdmin),
	DestTables:     NewRoleSet(models.RoleAdmin),
	DestUsers:      NewRoleSet(models.RoleAdmin),
}

// AllowedRoles returns the permission set for dest and whether dest is a
// known destination.
func AllowedRoles(dest Destination) (RoleSet, bool) {
	set, ok := routePermissions[dest]
	return set, ok
}

// Decision is the outcome of a gate check.
type Decision int

const (
	// DecisionWait means the startup restore has not resolved yet; the
	// caller must render nothing rather than redirect.
	DecisionWait Decision = iota
	// DecisionLogin redirects to the login screen.
	DecisionLogin
	// DecisionDenied redirects an authenticated user to DefaultLanding.
	DecisionDenied
	// DecisionAllow renders the destination.
	DecisionAllow
)

// Authorize decides whether an identity in the given state may view a
// destination guarded by allowed. It is pure: redirects are signaled, never
// performed here.
func Authorize(state State, identity *models.User, allowed RoleSet) Decision {
	if state == StateUnknown {
		return DecisionWait
	}
	if state != StateAuthenticated || identity == nil {
		return DecisionLogin
	}
	if allowed == nil {
		return DecisionAllow
	}
	if !allowed.Contains(identity.Role) {
		return DecisionDenied
	}
	return DecisionAllow
}
