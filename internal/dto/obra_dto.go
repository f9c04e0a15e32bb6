package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearObraRequest struct {
	Nombre           string  `json:"nombre"             validate:"required,min=1,max=200"`
	Descripcion      *string `json:"descripcion"`
	Ubicacion        *string `json:"ubicacion"          validate:"omitempty,max=200"`
	FechaInicio      *string `json:"fecha_inicio"       validate:"omitempty,datetime=2006-01-02"`
	FechaFinEstimada *string `json:"fecha_fin_estimada" validate:"omitempty,datetime=2006-01-02"`
	Responsable      *string `json:"responsable"        validate:"omitempty,max=100"`
}

type ActualizarObraRequest struct {
	Nombre           *string `json:"nombre"             validate:"omitempty,min=1,max=200"`
	Descripcion      *string `json:"descripcion"`
	Ubicacion        *string `json:"ubicacion"`
	FechaInicio      *string `json:"fecha_inicio"`
	FechaFinEstimada *string `json:"fecha_fin_estimada"`
	Responsable      *string `json:"responsable"`
	Estado           *string `json:"estado"             validate:"omitempty,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ObraResponse struct {
	ID               uint    `json:"id"`
	Nombre           string  `json:"nombre"`
	Descripcion      *string `json:"descripcion"`
	Ubicacion        *string `json:"ubicacion"`
	FechaInicio      *string `json:"fecha_inicio"`
	FechaFinEstimada *string `json:"fecha_fin_estimada"`
	Estado           string  `json:"estado"`
	Responsable      *string `json:"responsable"`
}
