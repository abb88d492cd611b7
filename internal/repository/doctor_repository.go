package repository

import (
	"context"

	"gorm.io/gorm"

	"citamed/internal/model"
)

// DoctorProfile is the login-enrichment projection of a doctor joined with
// their specialty name.
type DoctorProfile struct {
	Nombre       string
	Apellido     string
	Especialidad string
}

// DoctorRepository defines persistence operations on doctores.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	ListByEspecialidad(ctx context.Context, especialidadID uint) ([]model.Doctor, error)
	FindProfileByUsuarioID(ctx context.Context, usuarioID uint) (*DoctorProfile, error)
	DeleteAll(ctx context.Context) error
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository builds a GORM-backed repository.
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

// ListByEspecialidad returns all doctors of a specialty. A specialty with no
// doctors yields an empty slice, not an error.
func (r *doctorRepository) ListByEspecialidad(ctx context.Context, especialidadID uint) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := r.db.WithContext(ctx).
		Where("especialidad_id = ?", especialidadID).
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindProfileByUsuarioID(ctx context.Context, usuarioID uint) (*DoctorProfile, error) {
	var profile DoctorProfile
	err := r.db.WithContext(ctx).Table("doctores").
		Select("doctores.nombre, doctores.apellido, especialidades.nombre AS especialidad").
		Joins("JOIN especialidades ON especialidades.especialidad_id = doctores.especialidad_id").
		Where("doctores.usuario_id = ?", usuarioID).
		Take(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *doctorRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Doctor{}).Error
}
