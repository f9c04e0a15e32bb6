package handler

import (
	"net/http"

	"nomina/internal/apierror"
	"nomina/internal/dto"
	"nomina/internal/middleware"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
)

// UsuariosHandler serves the /admin user management routes. Every route is
// behind the admin gate; self-targeting actions are rejected by the service.
type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Listar GET /admin/usuarios
func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Accion POST /admin/usuarios (form-encoded)
// action=cambiar_rol requires rol; action=activar_desactivar toggles.
func (h *UsuariosHandler) Accion(c *gin.Context) {
	var req dto.AccionUsuarioRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	actor := middleware.GetPrincipal(c)

	switch req.Action {
	case "cambiar_rol":
		if req.Rol == "" {
			c.JSON(http.StatusBadRequest, apierror.New("Rol requerido"))
			return
		}
		if err := h.svc.CambiarRol(c.Request.Context(), actor.UserID, req.UserID, req.Rol); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Rol actualizado"})
	case "activar_desactivar":
		if err := h.svc.ActivarDesactivar(c.Request.Context(), actor.UserID, req.UserID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Estado actualizado"})
	}
}

// Crear POST /admin/crear-usuario (form-encoded)
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Mensaje: "Usuario creado"})
}

// CambiarPassword POST /admin/usuarios/:id/cambiar-password
func (h *UsuariosHandler) CambiarPassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CambiarPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetPrincipal(c)
	if err := h.svc.CambiarPassword(c.Request.Context(), actor.UserID, id, req.Password); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Contraseña actualizada"})
}
