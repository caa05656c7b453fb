// Package authz holds the per-record access rules for accounts, bookings and
// notifications. Every rule is a pure predicate over an explicit Caller and
// the record in question; none of them reads from the table it protects. The
// role travels with the caller, decoded once from the session token.
// "List everything" paths for super admins live in the repositories instead,
// behind role-gated routes.
package authz

import (
	"github.com/google/uuid"

	"venu/internal/models/db_models"
)

// Caller is the acting identity for a single request. It replaces any
// ambient session state: every service operation receives it explicitly.
type Caller struct {
	ID   uuid.UUID
	Role db_models.Role
}

func (c Caller) Authenticated() bool {
	return c.ID != uuid.Nil
}

// ---- accounts ----

// CanReadAccount allows reading only the caller's own account row.
func CanReadAccount(c Caller, accountID uuid.UUID) bool {
	return c.Authenticated() && c.ID == accountID
}

// CanUpdateAccount allows updating only the caller's own account row.
// Which columns may change is the service's concern; role is never one of them.
func CanUpdateAccount(c Caller, accountID uuid.UUID) bool {
	return c.Authenticated() && c.ID == accountID
}

// CanListAccounts gates the privileged enumeration path. It is a role check,
// not a per-row rule: the listing itself bypasses row filtering entirely.
func CanListAccounts(c Caller) bool {
	return c.Authenticated() && c.Role == db_models.RoleSuperAdmin
}

// ---- bookings ----

// CanReadBooking: owner, or any admin-level caller.
func CanReadBooking(c Caller, b *db_models.Booking) bool {
	if !c.Authenticated() {
		return false
	}
	return b.ClientID == c.ID || c.Role.IsAdminLevel()
}

// CanCreateBooking: any authenticated caller may submit an inquiry.
func CanCreateBooking(c Caller) bool {
	return c.Authenticated()
}

// CanUpdateBooking: the row's assigned admin, or a super admin. Clients can
// never update a booking once created, and an unassigned admin cannot touch
// another admin's booking.
func CanUpdateBooking(c Caller, b *db_models.Booking) bool {
	if !c.Authenticated() {
		return false
	}
	if c.Role == db_models.RoleSuperAdmin {
		return true
	}
	return b.AssignedAdminID != nil && *b.AssignedAdminID == c.ID
}

// CanAssignBooking: admin-level callers triage and hand out work.
func CanAssignBooking(c Caller) bool {
	return c.Authenticated() && c.Role.IsAdminLevel()
}

// ---- notifications ----

// CanReadNotification: only the target account.
func CanReadNotification(c Caller, n *db_models.Notification) bool {
	return c.Authenticated() && n.UserID == c.ID
}

// CanCreateNotification: creation is trusted; any authenticated caller may
// insert for any target.
func CanCreateNotification(c Caller) bool {
	return c.Authenticated()
}

// CanUpdateNotification: only the target account may mark its rows read.
func CanUpdateNotification(c Caller, n *db_models.Notification) bool {
	return c.Authenticated() && n.UserID == c.ID
}
