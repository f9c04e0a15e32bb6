package handler

import (
	"net/http"

	"nomina/internal/dto"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
)

type AsignacionesHandler struct{ svc service.AsignacionService }

func NewAsignacionesHandler(svc service.AsignacionService) *AsignacionesHandler {
	return &AsignacionesHandler{svc: svc}
}

// Listar GET /api/asignaciones
func (h *AsignacionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/asignaciones/:id
func (h *AsignacionesHandler) Obtener(c *gin.Context) {
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

// Crear POST /api/asignaciones
func (h *AsignacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearAsignacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Mensaje: "Asignación creada"})
}

// Actualizar PUT /api/asignaciones/:id
func (h *AsignacionesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarAsignacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Actualizado"})
}

// Eliminar DELETE /api/asignaciones/:id
func (h *AsignacionesHandler) Eliminar(c *gin.Context) {
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
