package services

import "venu/internal/models/db_models"

const (
	ViewBookingForm         = "booking_form"
	ViewAdminDashboard      = "admin_dashboard"
	ViewSuperAdminDashboard = "super_admin_dashboard"
)

// DefaultViewForRole maps a role to its single landing view. Each role sees
// exactly one of the three screens; anything unmatched falls back to the
// client view.
func DefaultViewForRole(role db_models.Role) string {
	switch role {
	case db_models.RoleAdmin:
		return ViewAdminDashboard
	case db_models.RoleSuperAdmin:
		return ViewSuperAdminDashboard
	default:
		return ViewBookingForm
	}
}
