package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrNoOpenShift        = errors.New("no open shift")
	ErrShiftAlreadyOpen   = errors.New("a shift is already open")
	ErrProductInUse       = errors.New("product is referenced and cannot be deleted")
)
