package handler

import (
	"net/http"

	"nomina/internal/dto"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
)

type ObrasHandler struct{ svc service.ObraService }

func NewObrasHandler(svc service.ObraService) *ObrasHandler {
	return &ObrasHandler{svc: svc}
}

// Listar GET /api/obras
func (h *ObrasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/obras/:id
func (h *ObrasHandler) Obtener(c *gin.Context) {
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

// Crear POST /api/obras
func (h *ObrasHandler) Crear(c *gin.Context) {
	var req dto.CrearObraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Mensaje: "Obra creada"})
}

// Actualizar PUT /api/obras/:id
func (h *ObrasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarObraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Actualizado"})
}

// Eliminar DELETE /api/obras/:id
func (h *ObrasHandler) Eliminar(c *gin.Context) {
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
