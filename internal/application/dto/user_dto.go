package dto

// CreateUserRequest body for POST /api/users.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=CASHIER ADMIN SUPERADMIN"`
}

// UpdateUserRequest body for PUT /api/users/:id; nil fields keep the
// current value. Password, when present, is re-hashed.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}
