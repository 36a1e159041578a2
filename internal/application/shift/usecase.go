package shift

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// UseCase manages the cash-drawer shift ledger. The drawer lock is
// global: one OPEN shift for the whole system, and any authenticated
// operator may close a shift someone else opened.
type UseCase struct {
	shiftRepo repository.ShiftRepository
	userRepo  repository.UserRepository
}

// NewUseCase builds the shift use case.
func NewUseCase(shiftRepo repository.ShiftRepository, userRepo repository.UserRepository) *UseCase {
	return &UseCase{shiftRepo: shiftRepo, userRepo: userRepo}
}

// Open starts a new shift. Fails with ErrShiftAlreadyOpen while any
// shift is OPEN; the partial unique index on shifts backs this up, so
// two concurrent opens cannot both succeed.
func (uc *UseCase) Open(ctx context.Context, userID int64, initialCash decimal.Decimal) (*dto.ShiftResponse, error) {
	if initialCash.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.shiftRepo.GetOpen()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrShiftAlreadyOpen
	}
	sh := &entity.Shift{
		UserID:      userID,
		StartTime:   time.Now(),
		InitialCash: initialCash,
		Status:      entity.ShiftStatusOpen,
	}
	if err := uc.shiftRepo.Create(sh); err != nil {
		return nil, err
	}
	return uc.toResponse(sh), nil
}

// Close ends the open shift, storing the physically counted drawer
// amount verbatim. No expected-cash figure is computed here; the
// reconciliation against sales lives in reporting.
func (uc *UseCase) Close(ctx context.Context, userID int64, reportedCash decimal.Decimal) (*dto.ShiftResponse, error) {
	if reportedCash.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	open, err := uc.shiftRepo.GetOpen()
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, domain.ErrNoOpenShift
	}
	now := time.Now()
	if err := uc.shiftRepo.Close(open.ID, now, reportedCash); err != nil {
		return nil, err
	}
	open.EndTime = &now
	open.ReportedCash = &reportedCash
	open.Status = entity.ShiftStatusClosed
	return uc.toResponse(open), nil
}

// GetOpen returns the single open shift, or nil when the drawer is closed.
func (uc *UseCase) GetOpen(ctx context.Context) (*dto.ShiftResponse, error) {
	sh, err := uc.shiftRepo.GetOpen()
	if err != nil || sh == nil {
		return nil, err
	}
	return uc.toResponse(sh), nil
}

// GetLast returns the caller's most recent shift, open or closed.
func (uc *UseCase) GetLast(ctx context.Context, userID int64) (*dto.ShiftResponse, error) {
	sh, err := uc.shiftRepo.GetLastByUser(userID)
	if err != nil || sh == nil {
		return nil, err
	}
	return uc.toResponse(sh), nil
}

func (uc *UseCase) toResponse(sh *entity.Shift) *dto.ShiftResponse {
	resp := &dto.ShiftResponse{
		ID:           sh.ID,
		UserID:       sh.UserID,
		StartTime:    sh.StartTime,
		EndTime:      sh.EndTime,
		InitialCash:  sh.InitialCash,
		ReportedCash: sh.ReportedCash,
		Status:       sh.Status,
	}
	if user, err := uc.userRepo.GetByID(sh.UserID); err == nil && user != nil {
		resp.UserName = user.Name
	}
	return resp
}
