package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPersonalRequest struct {
	Nombre          string  `json:"nombre"           validate:"required,min=1,max=100"`
	Apellido        string  `json:"apellido"         validate:"required,min=1,max=100"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	Telefono        *string `json:"telefono"         validate:"omitempty,max=20"`
	DNI             *string `json:"dni"              validate:"omitempty,max=20"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Domicilio       *string `json:"domicilio"        validate:"omitempty,max=200"`
	Ciudad          *string `json:"ciudad"           validate:"omitempty,max=100"`
	Provincia       *string `json:"provincia"        validate:"omitempty,max=100"`
	CodigoPostal    *string `json:"codigo_postal"    validate:"omitempty,max=10"`
	FechaIngreso    *string `json:"fecha_ingreso"    validate:"omitempty,datetime=2006-01-02"`
}

// ActualizarPersonalRequest applies merge semantics: nil fields keep the
// stored value, a present empty value clears it.
type ActualizarPersonalRequest struct {
	Nombre          *string `json:"nombre"           validate:"omitempty,min=1,max=100"`
	Apellido        *string `json:"apellido"         validate:"omitempty,min=1,max=100"`
	Email           *string `json:"email"`
	Telefono        *string `json:"telefono"`
	DNI             *string `json:"dni"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Domicilio       *string `json:"domicilio"`
	Ciudad          *string `json:"ciudad"`
	Provincia       *string `json:"provincia"`
	CodigoPostal    *string `json:"codigo_postal"`
	FechaIngreso    *string `json:"fecha_ingreso"`
	Estado          *string `json:"estado"           validate:"omitempty,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PersonalResponse struct {
	ID              uint    `json:"id"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	Email           *string `json:"email"`
	Telefono        *string `json:"telefono"`
	DNI             *string `json:"dni"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Domicilio       *string `json:"domicilio"`
	Ciudad          *string `json:"ciudad"`
	Provincia       *string `json:"provincia"`
	CodigoPostal    *string `json:"codigo_postal"`
	Estado          string  `json:"estado"`
	FechaIngreso    *string `json:"fecha_ingreso"`
}
