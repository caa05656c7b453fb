package db_models

type Role string

const (
	RoleClient     Role = "client"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsAdminLevel reports whether the role may act on bookings it does not own.
func (r Role) IsAdminLevel() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	Phone        string
	PasswordHash string
	Role         Role `gorm:"type:account_role;default:'client';index"`
	// Display color, only meaningful for admin-level accounts
	Color string `gorm:"size:7"`

	Bookings []Booking `gorm:"foreignKey:ClientID"`
}
