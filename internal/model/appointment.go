package model

import "time"

// EstadoProgramada is the entry state of every appointment. This API never
// transitions it; there is no cancel/complete endpoint in scope.
const EstadoProgramada = "Programada"

// Appointment represents a booked appointment (citas table).
type Appointment struct {
	CitaID     uint      `json:"cita_id" gorm:"column:cita_id;primaryKey"`
	PacienteID uint      `json:"paciente_id" gorm:"column:paciente_id;index;not null"`
	DoctorID   uint      `json:"doctor_id" gorm:"column:doctor_id;index;not null"`
	FechaHora  time.Time `json:"fecha_hora" gorm:"column:fecha_hora;not null"`
	Motivo     string    `json:"motivo" gorm:"column:motivo;type:text"`
	Estado     string    `json:"estado" gorm:"column:estado;size:30;default:'Programada'"`
}

func (Appointment) TableName() string { return "citas" }
