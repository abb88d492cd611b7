package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"citamed/internal/errors"
	"citamed/internal/model"
	"citamed/internal/repository"
)

// HistoryTimeLayout is the fecha_hora format clients receive.
const HistoryTimeLayout = "2006-01-02 15:04"

// fechaHoraLayouts are the accepted request formats, most specific first.
// The first matches what the booking form submits (datetime-local).
var fechaHoraLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// AppointmentView is the history projection returned to clients.
type AppointmentView struct {
	ID           uint   `json:"id"`
	FechaHora    string `json:"fecha_hora"`
	Estado       string `json:"estado"`
	Motivo       string `json:"motivo"`
	Doctor       string `json:"doctor"`
	Especialidad string `json:"especialidad"`
}

// AppointmentService handles appointment booking and history.
type AppointmentService interface {
	// Book creates an appointment for the patient linked to usuarioID and
	// returns its id. The doctor id and timestamp are taken as-is; there is
	// no existence check and no slot-conflict detection.
	Book(ctx context.Context, usuarioID, doctorID uint, fechaHora, motivo string) (uint, error)
	History(ctx context.Context, usuarioID uint) ([]AppointmentView, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(appointmentRepo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{appointmentRepo: appointmentRepo}
}

func (s *appointmentService) Book(ctx context.Context, usuarioID, doctorID uint, fechaHora, motivo string) (uint, error) {
	at, err := parseFechaHora(fechaHora)
	if err != nil {
		return 0, err
	}

	cita := &model.Appointment{
		DoctorID:  doctorID,
		FechaHora: at,
		Motivo:    motivo,
		Estado:    model.EstadoProgramada,
	}

	if err := s.appointmentRepo.CreateForUser(ctx, usuarioID, cita); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.ErrPatientNotFound
		}
		return 0, err
	}

	return cita.CitaID, nil
}

// History returns the user's appointments newest first, timestamps formatted
// as YYYY-MM-DD HH:MM.
func (s *appointmentService) History(ctx context.Context, usuarioID uint) ([]AppointmentView, error) {
	rows, err := s.appointmentRepo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	views := make([]AppointmentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, AppointmentView{
			ID:           row.CitaID,
			FechaHora:    row.FechaHora.Format(HistoryTimeLayout),
			Estado:       row.Estado,
			Motivo:       row.Motivo,
			Doctor:       fmt.Sprintf("Dr. %s %s", row.DoctorNombre, row.DoctorApellido),
			Especialidad: row.Especialidad,
		})
	}

	return views, nil
}

func parseFechaHora(value string) (time.Time, error) {
	for _, layout := range fechaHoraLayouts {
		if at, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid fecha_hora %q", value)
}
