package repository

import "github.com/lintangrafi/POS-Kygoo/internal/domain/entity"

// CategoryRepository is the persistence port for Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
