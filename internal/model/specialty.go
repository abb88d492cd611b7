package model

// Specialty represents a medical field of practice (especialidades table).
// Read-only from the API's perspective; rows come from the seed command.
type Specialty struct {
	EspecialidadID uint   `json:"id" gorm:"column:especialidad_id;primaryKey"`
	Nombre         string `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Descripcion    string `json:"descripcion" gorm:"column:descripcion;type:text"`
}

func (Specialty) TableName() string { return "especialidades" }
