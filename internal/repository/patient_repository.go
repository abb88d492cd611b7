package repository

import (
	"context"

	"gorm.io/gorm"

	"citamed/internal/model"
)

// PatientRepository defines persistence operations on pacientes.
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	FindByUsuarioID(ctx context.Context, usuarioID uint) (*model.Patient, error)
	DeleteAll(ctx context.Context) error
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository builds a GORM-backed repository.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByUsuarioID(ctx context.Context, usuarioID uint) (*model.Patient, error) {
	var patient model.Patient
	if err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Patient{}).Error
}
