package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"venu/internal/models/db_models"
)

func caller(role db_models.Role) Caller {
	return Caller{ID: uuid.New(), Role: role}
}

func TestAccountRules(t *testing.T) {
	c := caller(db_models.RoleClient)

	assert.True(t, CanReadAccount(c, c.ID))
	assert.True(t, CanUpdateAccount(c, c.ID))

	other := uuid.New()
	assert.False(t, CanReadAccount(c, other))
	assert.False(t, CanUpdateAccount(c, other))

	// No per-row read path exists for other accounts even for privileged roles
	super := caller(db_models.RoleSuperAdmin)
	assert.False(t, CanReadAccount(super, other))

	assert.False(t, CanReadAccount(Caller{}, other))
}

func TestListAccountsIsSuperAdminOnly(t *testing.T) {
	assert.False(t, CanListAccounts(caller(db_models.RoleClient)))
	assert.False(t, CanListAccounts(caller(db_models.RoleAdmin)))
	assert.True(t, CanListAccounts(caller(db_models.RoleSuperAdmin)))
	assert.False(t, CanListAccounts(Caller{}))
}

func TestBookingVisibility(t *testing.T) {
	owner := caller(db_models.RoleClient)
	stranger := caller(db_models.RoleClient)
	admin := caller(db_models.RoleAdmin)
	super := caller(db_models.RoleSuperAdmin)

	booking := &db_models.Booking{ClientID: owner.ID}

	assert.True(t, CanReadBooking(owner, booking))
	assert.False(t, CanReadBooking(stranger, booking))
	assert.True(t, CanReadBooking(admin, booking))
	assert.True(t, CanReadBooking(super, booking))
	assert.False(t, CanReadBooking(Caller{}, booking))
}

func TestBookingUpdateRules(t *testing.T) {
	owner := caller(db_models.RoleClient)
	assigned := caller(db_models.RoleAdmin)
	unassigned := caller(db_models.RoleAdmin)
	super := caller(db_models.RoleSuperAdmin)

	booking := &db_models.Booking{ClientID: owner.ID, AssignedAdminID: &assigned.ID}

	// Plain clients can never update a booking once created, not even their own
	assert.False(t, CanUpdateBooking(owner, booking))
	// An admin who is not the assigned admin cannot update
	assert.False(t, CanUpdateBooking(unassigned, booking))
	assert.True(t, CanUpdateBooking(assigned, booking))
	// A super admin can update regardless of assignment
	assert.True(t, CanUpdateBooking(super, booking))

	unassignedBooking := &db_models.Booking{ClientID: owner.ID}
	assert.False(t, CanUpdateBooking(assigned, unassignedBooking))
	assert.True(t, CanUpdateBooking(super, unassignedBooking))
}

func TestBookingInsertAndAssign(t *testing.T) {
	assert.True(t, CanCreateBooking(caller(db_models.RoleClient)))
	assert.False(t, CanCreateBooking(Caller{}))

	assert.False(t, CanAssignBooking(caller(db_models.RoleClient)))
	assert.True(t, CanAssignBooking(caller(db_models.RoleAdmin)))
	assert.True(t, CanAssignBooking(caller(db_models.RoleSuperAdmin)))
}

func TestNotificationRules(t *testing.T) {
	target := caller(db_models.RoleClient)
	other := caller(db_models.RoleAdmin)

	n := &db_models.Notification{UserID: target.ID}

	assert.True(t, CanReadNotification(target, n))
	assert.True(t, CanUpdateNotification(target, n))
	assert.False(t, CanReadNotification(other, n))
	assert.False(t, CanUpdateNotification(other, n))

	// Creation is trusted for any authenticated caller
	assert.True(t, CanCreateNotification(other))
	assert.False(t, CanCreateNotification(Caller{}))
}
