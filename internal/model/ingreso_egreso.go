package model

import "time"

// IngresoEgreso is a check-in/check-out event for a worker at a site.
// Multiple rows per (personal, obra, fecha) are allowed.
type IngresoEgreso struct {
	ID              uint    `gorm:"primaryKey"`
	PersonalID      uint    `gorm:"not null;index"`
	ObraID          uint    `gorm:"not null;index"`
	Fecha           string  `gorm:"size:10;not null;index"`
	HoraIngreso     *string `gorm:"size:5"`
	HoraEgreso      *string `gorm:"size:5"`
	HorasTrabajadas *float64
	Notas           *string `gorm:"type:text"`
	FechaCreacion   time.Time `gorm:"autoCreateTime"`

	Personal *Personal `gorm:"foreignKey:PersonalID;constraint:OnDelete:CASCADE"`
	Obra     *Obra     `gorm:"foreignKey:ObraID;constraint:OnDelete:CASCADE"`
}

func (IngresoEgreso) TableName() string { return "ingresos_egresos" }
