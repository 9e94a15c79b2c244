package domain

import "time"

// Role tags a user with its capability set.
type Role string

const (
	RoleCustomer      Role = "CUSTOMER"
	RoleAdministrator Role = "ADMINISTRATOR"
)

// User is the domain model for ATM users. The PIN hash is an opaque
// credential; the role never changes after provisioning.
type User struct {
	ID        string
	Login     string
	PINHash   string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the authenticated caller, resolved once at login and
// carried through the request context. Services consult it for
// authorization instead of re-deriving capabilities per call.
type Principal struct {
	UserID string
	Role   Role
}

// Admin reports whether the principal holds administrator capabilities.
func (p Principal) Admin() bool {
	return p.Role == RoleAdministrator
}

// CanOperate reports whether the principal may operate on an account
// owned by ownerID. Customers are confined to their own accounts;
// administrators may operate on any account.
func (p Principal) CanOperate(ownerID string) bool {
	if p.Admin() {
		return true
	}
	return p.UserID == ownerID
}
