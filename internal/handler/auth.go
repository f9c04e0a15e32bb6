package handler

import (
	"net/http"

	"nomina/internal/config"
	"nomina/internal/dto"
	"nomina/internal/middleware"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// Login POST /login (form-encoded). Opens a session and sets the cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	token, ttl, resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(ttl.Seconds()), "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, resp)
}

// Sesion GET /login. Reports the caller's current session state.
func (h *AuthHandler) Sesion(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusOK, dto.SesionResponse{Autenticado: false})
		return
	}
	c.JSON(http.StatusOK, dto.SesionResponse{
		Autenticado: true,
		Usuario: &dto.UsuarioResponse{
			ID:       p.UserID,
			Email:    p.Email,
			Nombre:   p.Nombre,
			Apellido: p.Apellido,
			Rol:      p.Rol,
			Activo:   true,
		},
	})
}

// Logout GET /logout. Revokes the session server-side and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.SessionTokenKey)
	if token != "" {
		if err := h.svc.Logout(c.Request.Context(), token); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Sesión cerrada correctamente"})
}
