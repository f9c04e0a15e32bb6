package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPresentismoRequest struct {
	PersonalID  uint    `json:"personal_id" validate:"required"`
	ObraID      uint    `json:"obra_id"     validate:"required"`
	Fecha       string  `json:"fecha"       validate:"required,datetime=2006-01-02"`
	Tipo        string  `json:"tipo"        validate:"required,max=50"`
	Descripcion *string `json:"descripcion"`
	Notas       *string `json:"notas"`
}

type ActualizarPresentismoRequest struct {
	Tipo        *string `json:"tipo"        validate:"omitempty,max=50"`
	Descripcion *string `json:"descripcion"`
	Notas       *string `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PresentismoResponse struct {
	ID               uint    `json:"id"`
	PersonalID       uint    `json:"personal_id"`
	ObraID           uint    `json:"obra_id"`
	PersonalNombre   string  `json:"personal_nombre"`
	PersonalApellido string  `json:"personal_apellido"`
	ObraNombre       string  `json:"obra_nombre"`
	Fecha            string  `json:"fecha"`
	Tipo             string  `json:"tipo"`
	Descripcion      *string `json:"descripcion"`
	Notas            *string `json:"notas"`
}
