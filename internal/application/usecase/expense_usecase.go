package usecase

import (
	"context"
	"time"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/validation"
)

// ExpenseUseCase covers operating-expense CRUD.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	userRepo    repository.UserRepository
	auditor     *audit.Recorder
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository, userRepo repository.UserRepository, auditor *audit.Recorder) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, userRepo: userRepo, auditor: auditor}
}

// Create records an expense against the calling user.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID int64, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	expense := &entity.Expense{
		UserID:      userID,
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        in.Date,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, entity.AuditActionCreate, entity.AuditEntityExpense, expense.ID, nil,
		map[string]any{"description": expense.Description, "amount": expense.Amount, "category": expense.Category})
	return uc.toResponse(expense), nil
}

// Update applies a partial update; nil fields keep their value.
func (uc *ExpenseUseCase) Update(ctx context.Context, userID, id int64, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	before := map[string]any{"description": expense.Description, "amount": expense.Amount, "category": expense.Category, "date": expense.Date}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.Description = *in.Description
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() || in.Amount.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	if in.Notes != nil {
		expense.Notes = in.Notes
	}
	if err := uc.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, entity.AuditActionUpdate, entity.AuditEntityExpense, id, before,
		map[string]any{"description": expense.Description, "amount": expense.Amount, "category": expense.Category, "date": expense.Date})
	return uc.toResponse(expense), nil
}

// Delete removes an expense.
func (uc *ExpenseUseCase) Delete(ctx context.Context, userID, id int64) error {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	if err := uc.expenseRepo.Delete(id); err != nil {
		return err
	}
	uc.auditor.Record(userID, entity.AuditActionDelete, entity.AuditEntityExpense, id,
		map[string]any{"description": expense.Description, "amount": expense.Amount}, nil)
	return nil
}

// List returns expenses in the date range, newest first.
func (uc *ExpenseUseCase) List(ctx context.Context, from, to *time.Time, limit int) ([]dto.ExpenseResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	records, err := uc.expenseRepo.List(from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(records))
	for _, r := range records {
		resp := uc.toResponse(&r.Expense)
		resp.UserName = r.UserName
		out = append(out, *resp)
	}
	return out, nil
}

func (uc *ExpenseUseCase) toResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}
