package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implements ExpenseRepository on PostgreSQL (pool or tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository builds the persistence adapter for expenses.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persists a new expense.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (user_id, description, amount, category, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		expense.UserID, expense.Description, expense.Amount, expense.Category,
		expense.Date, expense.Notes, expense.CreatedAt,
	).Scan(&expense.ID)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID fetches an expense by id. Returns nil when absent.
func (r *ExpenseRepo) GetByID(id int64) (*entity.Expense, error) {
	query := `
		SELECT id, user_id, description, amount, category, date, notes, created_at
		FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// Update writes all mutable fields.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses
		SET description = $2, amount = $3, category = $4, date = $5, notes = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Description, expense.Amount, expense.Category, expense.Date, expense.Notes,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete removes an expense row.
func (r *ExpenseRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// List returns expenses in the date range, newest first, with the
// recording user's name joined.
func (r *ExpenseRepo) List(from, to *time.Time, limit int) ([]*repository.ExpenseRecord, error) {
	query := `
		SELECT e.id, e.user_id, e.description, e.amount, e.category, e.date, e.notes, e.created_at,
		       COALESCE(u.name, '')
		FROM expenses e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE 1=1`
	args := []any{}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND e.date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND e.date < $%d`, len(args))
	}
	query += ` ORDER BY e.date DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []*repository.ExpenseRecord
	for rows.Next() {
		var rec repository.ExpenseRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Description, &rec.Amount, &rec.Category,
			&rec.Date, &rec.Notes, &rec.CreatedAt, &rec.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
