package model

// Administrator represents an admin profile (administradores table).
// Only the seed command writes it; login returns base fields for admins
// without joining this table.
type Administrator struct {
	AdminID   uint   `json:"admin_id" gorm:"column:admin_id;primaryKey"`
	UsuarioID uint   `json:"usuario_id" gorm:"column:usuario_id;uniqueIndex;not null"`
	Nombre    string `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Apellido  string `json:"apellido" gorm:"column:apellido;size:100;not null"`
}

func (Administrator) TableName() string { return "administradores" }
