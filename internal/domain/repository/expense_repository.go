package repository

import (
	"time"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
)

// ExpenseRecord is an expense with the recording user's name expanded.
type ExpenseRecord struct {
	entity.Expense
	UserName string
}

// ExpenseRepository is the persistence port for Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id int64) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id int64) error
	List(from, to *time.Time, limit int) ([]*ExpenseRecord, error)
}
