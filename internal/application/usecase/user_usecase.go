package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/validation"
)

// UserUseCase manages operator accounts. Admins create and edit
// cashiers; ADMIN and SUPERADMIN accounts are touched only by a
// SUPERADMIN.
type UserUseCase struct {
	userRepo repository.UserRepository
	auditor  *audit.Recorder
}

// NewUserUseCase builds the use case.
func NewUserUseCase(userRepo repository.UserRepository, auditor *audit.Recorder) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, auditor: auditor}
}

// Create registers a new operator account. The password is stored as a
// bcrypt hash.
func (uc *UserUseCase) Create(ctx context.Context, actorID int64, actorRole string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !uc.mayManage(actorRole, in.Role) {
		return nil, domain.ErrForbidden
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	uc.auditor.Record(actorID, entity.AuditActionCreate, entity.AuditEntityUser, user.ID, nil, resp)
	return resp, nil
}

// GetByID returns one account or ErrNotFound.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// List returns all accounts, oldest first.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update applies a partial update; nil fields keep their value. A role
// change is gated on both the current and the target role.
func (uc *UserUseCase) Update(ctx context.Context, actorID int64, actorRole string, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.mayManage(actorRole, user.Role) {
		return nil, domain.ErrForbidden
	}
	before := *toUserResponse(user)
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		switch *in.Role {
		case entity.RoleCashier, entity.RoleAdmin, entity.RoleSuperAdmin:
		default:
			return nil, domain.ErrInvalidInput
		}
		if !uc.mayManage(actorRole, *in.Role) {
			return nil, domain.ErrForbidden
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	uc.auditor.Record(actorID, entity.AuditActionUpdate, entity.AuditEntityUser, id, before, resp)
	return resp, nil
}

// mayManage reports whether actorRole may create or modify an account
// holding targetRole.
func (uc *UserUseCase) mayManage(actorRole, targetRole string) bool {
	if actorRole == entity.RoleSuperAdmin {
		return true
	}
	return actorRole == entity.RoleAdmin && targetRole == entity.RoleCashier
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
