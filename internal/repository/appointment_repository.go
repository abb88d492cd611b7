package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"citamed/internal/model"
)

// AppointmentRow is the history projection of an appointment joined with its
// doctor and specialty.
type AppointmentRow struct {
	CitaID         uint
	FechaHora      time.Time
	Estado         string
	Motivo         string
	DoctorNombre   string
	DoctorApellido string
	Especialidad   string
}

// AppointmentRepository defines persistence operations on citas.
type AppointmentRepository interface {
	// CreateForUser resolves the patient linked to usuarioID and inserts the
	// appointment for that patient, both inside one transaction. Returns
	// gorm.ErrRecordNotFound when no patient row is linked to the user.
	CreateForUser(ctx context.Context, usuarioID uint, cita *model.Appointment) error
	ListByUsuario(ctx context.Context, usuarioID uint) ([]AppointmentRow, error)
	DeleteAll(ctx context.Context) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository builds a GORM-backed repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) CreateForUser(ctx context.Context, usuarioID uint, cita *model.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var patient model.Patient
		if err := tx.Where("usuario_id = ?", usuarioID).First(&patient).Error; err != nil {
			return err
		}
		cita.PacienteID = patient.PacienteID
		return tx.Create(cita).Error
	})
}

// ListByUsuario returns a user's appointments newest first.
func (r *appointmentRepository) ListByUsuario(ctx context.Context, usuarioID uint) ([]AppointmentRow, error) {
	var rows []AppointmentRow
	err := r.db.WithContext(ctx).Table("citas").
		Select("citas.cita_id, citas.fecha_hora, citas.estado, citas.motivo, "+
			"doctores.nombre AS doctor_nombre, doctores.apellido AS doctor_apellido, "+
			"especialidades.nombre AS especialidad").
		Joins("JOIN pacientes ON pacientes.paciente_id = citas.paciente_id").
		Joins("JOIN doctores ON doctores.doctor_id = citas.doctor_id").
		Joins("JOIN especialidades ON especialidades.especialidad_id = doctores.especialidad_id").
		Where("pacientes.usuario_id = ?", usuarioID).
		Order("citas.fecha_hora DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Appointment{}).Error
}
