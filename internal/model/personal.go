package model

import "time"

// Personal represents an employee/laborer tracked by the system.
// Estado: "activo" | "inactivo"
type Personal struct {
	ID              uint   `gorm:"primaryKey"`
	Nombre          string `gorm:"size:100;not null"`
	Apellido        string `gorm:"size:100;not null"`
	Email           *string `gorm:"size:100"`
	Telefono        *string `gorm:"size:20"`
	DNI             *string `gorm:"column:dni;size:20;uniqueIndex"`
	FechaNacimiento *string `gorm:"size:10"`
	Domicilio       *string `gorm:"size:200"`
	Ciudad          *string `gorm:"size:100"`
	Provincia       *string `gorm:"size:100"`
	CodigoPostal    *string `gorm:"size:10"`
	Estado          string  `gorm:"size:20;not null;default:'activo'"`
	FechaIngreso    *string `gorm:"size:10"`
	FechaCreacion   time.Time `gorm:"autoCreateTime"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Personal) TableName() string { return "personal" }
