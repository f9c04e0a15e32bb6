package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest arrives form-encoded from the login page.
type LoginRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=1"`
	Remember bool   `form:"remember"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}

type LoginResponse struct {
	Mensaje string          `json:"mensaje"`
	Usuario UsuarioResponse `json:"usuario"`
}

// SesionResponse reports the caller's current session state (GET /login).
type SesionResponse struct {
	Autenticado bool             `json:"autenticado"`
	Usuario     *UsuarioResponse `json:"usuario,omitempty"`
}
