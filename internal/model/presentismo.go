package model

import "time"

// Presentismo is a daily attendance-category record.
// One row per (personal, obra, fecha) — enforced by uq_presentismo.
type Presentismo struct {
	ID          uint   `gorm:"primaryKey"`
	PersonalID  uint   `gorm:"not null;uniqueIndex:uq_presentismo"`
	ObraID      uint   `gorm:"not null;uniqueIndex:uq_presentismo"`
	Fecha       string `gorm:"size:10;not null;uniqueIndex:uq_presentismo"`
	// Tipo is a free-form category: "presente", "ausente", "horas_extra", …
	Tipo          string  `gorm:"size:50;not null"`
	Descripcion   *string `gorm:"type:text"`
	Notas         *string `gorm:"type:text"`
	FechaCreacion time.Time `gorm:"autoCreateTime"`

	Personal *Personal `gorm:"foreignKey:PersonalID;constraint:OnDelete:CASCADE"`
	Obra     *Obra     `gorm:"foreignKey:ObraID;constraint:OnDelete:CASCADE"`
}

func (Presentismo) TableName() string { return "presentismo" }
