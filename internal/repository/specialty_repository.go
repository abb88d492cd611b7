package repository

import (
	"context"

	"gorm.io/gorm"

	"citamed/internal/model"
)

// SpecialtyRepository defines persistence operations on especialidades.
type SpecialtyRepository interface {
	Create(ctx context.Context, specialty *model.Specialty) error
	List(ctx context.Context) ([]model.Specialty, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Specialty, error)
	DeleteAll(ctx context.Context) error
}

type specialtyRepository struct {
	db *gorm.DB
}

// NewSpecialtyRepository builds a GORM-backed repository.
func NewSpecialtyRepository(db *gorm.DB) SpecialtyRepository {
	return &specialtyRepository{db: db}
}

func (r *specialtyRepository) Create(ctx context.Context, specialty *model.Specialty) error {
	return r.db.WithContext(ctx).Create(specialty).Error
}

// List returns all specialties in store order; no explicit ordering imposed.
func (r *specialtyRepository) List(ctx context.Context) ([]model.Specialty, error) {
	var specialties []model.Specialty
	if err := r.db.WithContext(ctx).Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByNombre(ctx context.Context, nombre string) (*model.Specialty, error) {
	var specialty model.Specialty
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&specialty).Error; err != nil {
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Specialty{}).Error
}
