package repository

import "github.com/lintangrafi/POS-Kygoo/internal/domain/entity"

// UserRepository is the persistence port for User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
}
