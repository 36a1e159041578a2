package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
)

type userFixture struct {
	uc    *usecase.UserUseCase
	users *fakeUserRepo
}

func newUserFixture() *userFixture {
	users := &fakeUserRepo{users: map[int64]*entity.User{}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := usecase.NewUserUseCase(users, audit.NewRecorder(&fakeAuditRepo{}, log))
	return &userFixture{uc: uc, users: users}
}

func createUserReq(role string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "Kasir Dua",
		Email:    "kasir2@kygoo.local",
		Password: "rahasia-banget",
		Role:     role,
	}
}

func TestUserCreate_HashesPassword(t *testing.T) {
	fx := newUserFixture()

	out, err := fx.uc.Create(context.Background(), 1, entity.RoleAdmin, createUserReq(entity.RoleCashier))
	require.NoError(t, err)

	stored, err := fx.users.FindByEmail("kasir2@kygoo.local")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "rahasia-banget", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia-banget")))
	assert.Equal(t, entity.RoleCashier, out.Role)
}

func TestUserCreate_AdminCannotCreateAdmin(t *testing.T) {
	fx := newUserFixture()

	_, err := fx.uc.Create(context.Background(), 1, entity.RoleAdmin, createUserReq(entity.RoleAdmin))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserCreate_SuperAdminCreatesAdmin(t *testing.T) {
	fx := newUserFixture()

	out, err := fx.uc.Create(context.Background(), 1, entity.RoleSuperAdmin, createUserReq(entity.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestUserCreate_ShortPasswordRejected(t *testing.T) {
	fx := newUserFixture()

	req := createUserReq(entity.RoleCashier)
	req.Password = "short"
	_, err := fx.uc.Create(context.Background(), 1, entity.RoleAdmin, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_AdminCannotTouchAdmin(t *testing.T) {
	fx := newUserFixture()
	fx.users.users[5] = &entity.User{ID: 5, Name: "Bos", Email: "bos@kygoo.local", Role: entity.RoleSuperAdmin}

	newName := "Bos Baru"
	_, err := fx.uc.Update(context.Background(), 1, entity.RoleAdmin, 5, dto.UpdateUserRequest{Name: &newName})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdate_RoleChangeGatedOnTarget(t *testing.T) {
	fx := newUserFixture()
	fx.users.users[5] = &entity.User{ID: 5, Name: "Kasir", Email: "kasir@kygoo.local", Role: entity.RoleCashier}

	promote := entity.RoleAdmin
	_, err := fx.uc.Update(context.Background(), 1, entity.RoleAdmin, 5, dto.UpdateUserRequest{Role: &promote})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := fx.uc.Update(context.Background(), 1, entity.RoleSuperAdmin, 5, dto.UpdateUserRequest{Role: &promote})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestUserUpdate_NotFound(t *testing.T) {
	fx := newUserFixture()

	newName := "x"
	_, err := fx.uc.Update(context.Background(), 1, entity.RoleSuperAdmin, 99, dto.UpdateUserRequest{Name: &newName})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
