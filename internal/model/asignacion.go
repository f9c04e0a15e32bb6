package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asignacion links one Personal to one Obra with a role and a daily wage.
// FK integrity is enforced by the store; deleting the referenced Personal
// or Obra cascades to its asignaciones.
type Asignacion struct {
	ID              uint   `gorm:"primaryKey"`
	PersonalID      uint   `gorm:"not null;index"`
	ObraID          uint   `gorm:"not null;index"`
	FechaAsignacion string `gorm:"size:10;not null"`
	FechaFin        *string `gorm:"size:10"`
	Puesto          *string `gorm:"size:100"`
	SalarioDiario   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Estado          string  `gorm:"size:20;not null;default:'activa'"`
	FechaCreacion   time.Time `gorm:"autoCreateTime"`

	Personal *Personal `gorm:"foreignKey:PersonalID;constraint:OnDelete:CASCADE"`
	Obra     *Obra     `gorm:"foreignKey:ObraID;constraint:OnDelete:CASCADE"`
}

func (Asignacion) TableName() string { return "asignaciones" }
