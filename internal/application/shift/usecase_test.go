package shift_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintangrafi/POS-Kygoo/internal/application/shift"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
)

// fakeShiftRepo keeps shifts in memory and enforces the single-OPEN
// invariant the way the partial unique index does.
type fakeShiftRepo struct {
	shifts []*entity.Shift
	nextID int64
}

func (f *fakeShiftRepo) Create(s *entity.Shift) error {
	for _, existing := range f.shifts {
		if existing.Status == entity.ShiftStatusOpen {
			return domain.ErrShiftAlreadyOpen
		}
	}
	f.nextID++
	s.ID = f.nextID
	f.shifts = append(f.shifts, s)
	return nil
}

func (f *fakeShiftRepo) GetOpen() (*entity.Shift, error) {
	for _, s := range f.shifts {
		if s.Status == entity.ShiftStatusOpen {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeShiftRepo) GetLastByUser(userID int64) (*entity.Shift, error) {
	var last *entity.Shift
	for _, s := range f.shifts {
		if s.UserID == userID {
			last = s
		}
	}
	return last, nil
}

func (f *fakeShiftRepo) Close(id int64, endTime time.Time, reportedCash decimal.Decimal) error {
	for _, s := range f.shifts {
		if s.ID == id {
			s.EndTime = &endTime
			s.ReportedCash = &reportedCash
			s.Status = entity.ShiftStatusClosed
		}
	}
	return nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(u *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	return &entity.User{ID: id, Name: "Kasir Satu"}, nil
}
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) List() ([]*entity.User, error)                  { return nil, nil }
func (f *fakeUserRepo) Update(u *entity.User) error                    { return nil }

func newShiftUseCase() (*shift.UseCase, *fakeShiftRepo) {
	repo := &fakeShiftRepo{}
	return shift.NewUseCase(repo, &fakeUserRepo{}), repo
}

func TestOpen_CreatesOpenShift(t *testing.T) {
	uc, _ := newShiftUseCase()

	out, err := uc.Open(context.Background(), 1, decimal.NewFromInt(100000))
	require.NoError(t, err)

	assert.Equal(t, entity.ShiftStatusOpen, out.Status)
	assert.Equal(t, int64(1), out.UserID)
	assert.Equal(t, "Kasir Satu", out.UserName)
	assert.True(t, out.InitialCash.Equal(decimal.NewFromInt(100000)))
}

func TestOpen_WhileOpenFails(t *testing.T) {
	uc, _ := newShiftUseCase()

	_, err := uc.Open(context.Background(), 1, decimal.NewFromInt(100000))
	require.NoError(t, err)

	// Different user, same drawer.
	_, err = uc.Open(context.Background(), 2, decimal.NewFromInt(50000))
	assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
}

func TestOpen_NegativeInitialCash(t *testing.T) {
	uc, _ := newShiftUseCase()

	_, err := uc.Open(context.Background(), 1, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClose_NoOpenShiftFails(t *testing.T) {
	uc, _ := newShiftUseCase()

	_, err := uc.Close(context.Background(), 1, decimal.NewFromInt(250000))
	assert.ErrorIs(t, err, domain.ErrNoOpenShift)
}

func TestClose_StoresReportedCashVerbatim(t *testing.T) {
	uc, repo := newShiftUseCase()

	_, err := uc.Open(context.Background(), 1, decimal.NewFromInt(100000))
	require.NoError(t, err)

	// Another operator may close the shift.
	out, err := uc.Close(context.Background(), 2, decimal.NewFromInt(987654))
	require.NoError(t, err)

	assert.Equal(t, entity.ShiftStatusClosed, out.Status)
	require.NotNil(t, out.ReportedCash)
	assert.True(t, out.ReportedCash.Equal(decimal.NewFromInt(987654)))
	assert.NotNil(t, out.EndTime)

	open, err := repo.GetOpen()
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestOpenCloseCycle_ReopenAllowed(t *testing.T) {
	uc, _ := newShiftUseCase()
	ctx := context.Background()

	_, err := uc.Open(ctx, 1, decimal.NewFromInt(100000))
	require.NoError(t, err)
	_, err = uc.Close(ctx, 1, decimal.NewFromInt(150000))
	require.NoError(t, err)

	out, err := uc.Open(ctx, 1, decimal.NewFromInt(200000))
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftStatusOpen, out.Status)
}

func TestGetLast_ReturnsMostRecentForUser(t *testing.T) {
	uc, _ := newShiftUseCase()
	ctx := context.Background()

	_, err := uc.Open(ctx, 7, decimal.NewFromInt(100000))
	require.NoError(t, err)
	_, err = uc.Close(ctx, 7, decimal.NewFromInt(120000))
	require.NoError(t, err)

	out, err := uc.GetLast(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.ShiftStatusClosed, out.Status)

	none, err := uc.GetLast(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, none)
}
