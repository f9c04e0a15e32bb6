package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearUsuarioRequest arrives form-encoded from the admin user page.
type CrearUsuarioRequest struct {
	Nombre   string `form:"nombre"   validate:"required,min=1,max=120"`
	Apellido string `form:"apellido" validate:"required,min=1,max=120"`
	Email    string `form:"email"    validate:"required,email,max=120"`
	Rol      string `form:"rol"      validate:"omitempty,oneof=admin en_obra"`
	Password string `form:"password" validate:"required,min=6"`
}

// AccionUsuarioRequest is the form posted to /admin/usuarios.
// Action: "cambiar_rol" | "activar_desactivar".
type AccionUsuarioRequest struct {
	Action string `form:"action"  validate:"required,oneof=cambiar_rol activar_desactivar"`
	UserID uint   `form:"user_id" validate:"required"`
	Rol    string `form:"rol"     validate:"omitempty,oneof=admin en_obra"`
}

type CambiarPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}
