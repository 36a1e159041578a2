package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
)

// ShiftRepository is the persistence port for Shift.
// The at-most-one-OPEN invariant is enforced by a partial unique index;
// Create surfaces a violation as domain.ErrShiftAlreadyOpen.
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	GetOpen() (*entity.Shift, error)
	GetLastByUser(userID int64) (*entity.Shift, error)
	Close(id int64, endTime time.Time, reportedCash decimal.Decimal) error
}
