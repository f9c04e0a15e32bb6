package handler

import (
	"net/http"

	"nomina/internal/dto"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
)

type PersonalHandler struct{ svc service.PersonalService }

func NewPersonalHandler(svc service.PersonalService) *PersonalHandler {
	return &PersonalHandler{svc: svc}
}

// Listar GET /api/personal
func (h *PersonalHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/personal/:id
func (h *PersonalHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /api/personal
func (h *PersonalHandler) Crear(c *gin.Context) {
	var req dto.CrearPersonalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Mensaje: "Empleado creado"})
}

// Actualizar PUT /api/personal/:id
func (h *PersonalHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPersonalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Actualizado"})
}

// Eliminar DELETE /api/personal/:id
func (h *PersonalHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Eliminado"})
}
