package model

import "time"

// Obra represents a construction site/project.
// Estado: "activa" | "finalizada" | "suspendida"
type Obra struct {
	ID               uint    `gorm:"primaryKey"`
	Nombre           string  `gorm:"size:200;not null"`
	Descripcion      *string `gorm:"type:text"`
	Ubicacion        *string `gorm:"size:200"`
	FechaInicio      *string `gorm:"size:10"`
	FechaFinEstimada *string `gorm:"size:10"`
	Estado           string  `gorm:"size:20;not null;default:'activa'"`
	Responsable      *string `gorm:"size:100"`
	FechaCreacion    time.Time `gorm:"autoCreateTime"`
}

func (Obra) TableName() string { return "obras" }
