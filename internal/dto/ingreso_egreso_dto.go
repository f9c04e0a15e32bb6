package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearIngresoEgresoRequest struct {
	PersonalID      uint     `json:"personal_id"      validate:"required"`
	ObraID          uint     `json:"obra_id"          validate:"required"`
	Fecha           string   `json:"fecha"            validate:"required,datetime=2006-01-02"`
	HoraIngreso     *string  `json:"hora_ingreso"     validate:"omitempty,datetime=15:04"`
	HoraEgreso      *string  `json:"hora_egreso"      validate:"omitempty,datetime=15:04"`
	HorasTrabajadas *float64 `json:"horas_trabajadas" validate:"omitempty,min=0"`
	Notas           *string  `json:"notas"`
}

type ActualizarIngresoEgresoRequest struct {
	HoraIngreso     *string  `json:"hora_ingreso"     validate:"omitempty,datetime=15:04"`
	HoraEgreso      *string  `json:"hora_egreso"      validate:"omitempty,datetime=15:04"`
	HorasTrabajadas *float64 `json:"horas_trabajadas" validate:"omitempty,min=0"`
	Notas           *string  `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type IngresoEgresoResponse struct {
	ID               uint     `json:"id"`
	PersonalID       uint     `json:"personal_id"`
	ObraID           uint     `json:"obra_id"`
	PersonalNombre   string   `json:"personal_nombre"`
	PersonalApellido string   `json:"personal_apellido"`
	ObraNombre       string   `json:"obra_nombre"`
	Fecha            string   `json:"fecha"`
	HoraIngreso      *string  `json:"hora_ingreso"`
	HoraEgreso       *string  `json:"hora_egreso"`
	HorasTrabajadas  *float64 `json:"horas_trabajadas"`
	Notas            *string  `json:"notas"`
}
