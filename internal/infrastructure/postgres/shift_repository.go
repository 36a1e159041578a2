package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

const shiftColumns = `id, user_id, start_time, end_time, initial_cash, total_cash_received, status`

// ShiftRepo implements ShiftRepository on PostgreSQL (pool or tx).
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository builds the persistence adapter for shifts.
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

// Create persists a new shift. The partial unique index on OPEN rows
// rejects a second open shift; that violation surfaces as
// ErrShiftAlreadyOpen, so concurrent opens race safely.
func (r *ShiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (user_id, start_time, initial_cash, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		shift.UserID, shift.StartTime, shift.InitialCash, shift.Status,
	).Scan(&shift.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShiftAlreadyOpen
		}
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetOpen returns the single OPEN shift, nil when the drawer is closed.
func (r *ShiftRepo) GetOpen() (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE status = $1`
	var s entity.Shift
	err := r.q.QueryRow(context.Background(), query, entity.ShiftStatusOpen).Scan(
		&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.InitialCash, &s.ReportedCash, &s.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open shift: %w", err)
	}
	return &s, nil
}

// GetLastByUser returns the user's most recent shift, open or closed.
func (r *ShiftRepo) GetLastByUser(userID int64) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE user_id = $1 ORDER BY start_time DESC LIMIT 1`
	var s entity.Shift
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.InitialCash, &s.ReportedCash, &s.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last shift: %w", err)
	}
	return &s, nil
}

// Close marks the shift CLOSED with its end time and counted cash.
func (r *ShiftRepo) Close(id int64, endTime time.Time, reportedCash decimal.Decimal) error {
	query := `UPDATE shifts SET end_time = $2, total_cash_received = $3, status = $4 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, endTime, reportedCash, entity.ShiftStatusClosed); err != nil {
		return fmt.Errorf("close shift: %w", err)
	}
	return nil
}
