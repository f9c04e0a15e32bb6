package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearAsignacionRequest struct {
	PersonalID      uint             `json:"personal_id"      validate:"required"`
	ObraID          uint             `json:"obra_id"          validate:"required"`
	FechaAsignacion string           `json:"fecha_asignacion" validate:"required,datetime=2006-01-02"`
	FechaFin        *string          `json:"fecha_fin"        validate:"omitempty,datetime=2006-01-02"`
	Puesto          *string          `json:"puesto"           validate:"omitempty,max=100"`
	SalarioDiario   *decimal.Decimal `json:"salario_diario"`
}

type ActualizarAsignacionRequest struct {
	PersonalID      *uint            `json:"personal_id"`
	ObraID          *uint            `json:"obra_id"`
	FechaAsignacion *string          `json:"fecha_asignacion" validate:"omitempty,datetime=2006-01-02"`
	FechaFin        *string          `json:"fecha_fin"`
	Puesto          *string          `json:"puesto"`
	SalarioDiario   *decimal.Decimal `json:"salario_diario"`
	Estado          *string          `json:"estado"           validate:"omitempty,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// AsignacionResponse is flat: entity fields plus display fields copied from
// the related Personal and Obra at read time (never stored).
type AsignacionResponse struct {
	ID               uint             `json:"id"`
	PersonalID       uint             `json:"personal_id"`
	ObraID           uint             `json:"obra_id"`
	PersonalNombre   string           `json:"personal_nombre"`
	PersonalApellido string           `json:"personal_apellido"`
	ObraNombre       string           `json:"obra_nombre"`
	FechaAsignacion  string           `json:"fecha_asignacion"`
	FechaFin         *string          `json:"fecha_fin"`
	Puesto           *string          `json:"puesto"`
	SalarioDiario    *decimal.Decimal `json:"salario_diario"`
	Estado           string           `json:"estado"`
}
