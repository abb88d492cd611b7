package model

// Doctor represents a doctor profile (doctores table), linked 1:1 to a user
// with role doctor and to exactly one specialty.
type Doctor struct {
	DoctorID       uint   `json:"doctor_id" gorm:"column:doctor_id;primaryKey"`
	UsuarioID      uint   `json:"usuario_id" gorm:"column:usuario_id;uniqueIndex;not null"`
	Nombre         string `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Apellido       string `json:"apellido" gorm:"column:apellido;size:100;not null"`
	EspecialidadID uint   `json:"especialidad_id" gorm:"column:especialidad_id;index;not null"`
	Telefono       string `json:"telefono" gorm:"column:telefono;size:20"`
	NumeroLicencia string `json:"numero_licencia" gorm:"column:numero_licencia;size:50"`
}

func (Doctor) TableName() string { return "doctores" }
