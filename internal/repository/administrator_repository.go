package repository

import (
	"context"

	"gorm.io/gorm"

	"citamed/internal/model"
)

// AdministratorRepository defines persistence operations on administradores.
// Only the seed command writes this table.
type AdministratorRepository interface {
	Create(ctx context.Context, admin *model.Administrator) error
	DeleteAll(ctx context.Context) error
}

type administratorRepository struct {
	db *gorm.DB
}

// NewAdministratorRepository builds a GORM-backed repository.
func NewAdministratorRepository(db *gorm.DB) AdministratorRepository {
	return &administratorRepository{db: db}
}

func (r *administratorRepository) Create(ctx context.Context, admin *model.Administrator) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *administratorRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Administrator{}).Error
}
