package entity

import "time"

// Valid roles for User.
const (
	RoleCashier    = "CASHIER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// User is an operator of the system (cashier or back-office admin).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never plain after persisting
	Role         string // CASHIER, ADMIN, SUPERADMIN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may perform back-office mutations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
