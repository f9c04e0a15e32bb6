package handler

import (
	"net/http"

	"nomina/internal/dto"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
)

type IngresosEgresosHandler struct{ svc service.IngresoEgresoService }

func NewIngresosEgresosHandler(svc service.IngresoEgresoService) *IngresosEgresosHandler {
	return &IngresosEgresosHandler{svc: svc}
}

// Listar GET /api/ingresos-egresos?obra_id=&fecha_inicio=&fecha_fin=
func (h *IngresosEgresosHandler) Listar(c *gin.Context) {
	filter, ok := registroFilterFromQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /api/ingresos-egresos/:id
func (h *IngresosEgresosHandler) Obtener(c *gin.Context) {
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

// Crear POST /api/ingresos-egresos
func (h *IngresosEgresosHandler) Crear(c *gin.Context) {
	var req dto.CrearIngresoEgresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Mensaje: "Registro creado"})
}

// Actualizar PUT /api/ingresos-egresos/:id
func (h *IngresosEgresosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarIngresoEgresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Actualizado"})
}

// Eliminar DELETE /api/ingresos-egresos/:id
func (h *IngresosEgresosHandler) Eliminar(c *gin.Context) {
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
