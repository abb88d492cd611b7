package model

import "time"

// Roles stored in usuarios.tipo. Each doctor/paciente row in the profile
// tables links back to exactly one user of the matching role.
const (
	RoleAdmin    = "admin"
	RoleDoctor   = "doctor"
	RolePaciente = "paciente"
)

// User represents a login account in the usuarios table.
type User struct {
	UsuarioID      uint       `json:"usuario_id" gorm:"column:usuario_id;primaryKey"`
	Email          string     `json:"email" gorm:"column:email;uniqueIndex;size:255;not null"`
	ContrasenaHash string     `json:"-" gorm:"column:contrasena_hash;size:255;not null"` // Never expose in JSON
	Tipo           string     `json:"tipo" gorm:"column:tipo;size:20;not null"`
	Activo         bool       `json:"activo" gorm:"column:activo;default:true"`
	UltimoLogin    *time.Time `json:"ultimo_login,omitempty" gorm:"column:ultimo_login"`
	FechaRegistro  time.Time  `json:"fecha_registro" gorm:"column:fecha_registro;autoCreateTime"`
}

// TableName maps the model onto the existing schema.
func (User) TableName() string { return "usuarios" }
