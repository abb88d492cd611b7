package model

import "time"

// Patient represents a patient profile (pacientes table), linked 1:1 to a
// user with role paciente.
type Patient struct {
	PacienteID      uint      `json:"paciente_id" gorm:"column:paciente_id;primaryKey"`
	UsuarioID       uint      `json:"usuario_id" gorm:"column:usuario_id;uniqueIndex;not null"`
	Nombre          string    `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Apellido        string    `json:"apellido" gorm:"column:apellido;size:100;not null"`
	FechaNacimiento time.Time `json:"fecha_nacimiento" gorm:"column:fecha_nacimiento;type:date"`
	Genero          string    `json:"genero" gorm:"column:genero;size:20"`
	Telefono        string    `json:"telefono" gorm:"column:telefono;size:20"`
	Direccion       string    `json:"direccion" gorm:"column:direccion;size:255"`
}

func (Patient) TableName() string { return "pacientes" }
