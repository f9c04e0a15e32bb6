package handler

import (
	"net/http"
	"strconv"

	"nomina/internal/apierror"
	"nomina/internal/dto"
	"nomina/internal/repository"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
)

type PresentismoHandler struct{ svc service.PresentismoService }

func NewPresentismoHandler(svc service.PresentismoService) *PresentismoHandler {
	return &PresentismoHandler{svc: svc}
}

// registroFilterFromQuery reads the optional obra_id / fecha_inicio /
// fecha_fin query parameters shared by the registry listings. Writes a 400
// and returns false on a non-numeric obra_id.
func registroFilterFromQuery(c *gin.Context) (repository.RegistroFilter, bool) {
	var filter repository.RegistroFilter
	if raw := c.Query("obra_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("obra_id inválido"))
			return filter, false
		}
		obraID := uint(id)
		filter.ObraID = &obraID
	}
	filter.FechaInicio = c.Query("fecha_inicio")
	filter.FechaFin = c.Query("fecha_fin")
	return filter, true
}

// Listar GET /api/presentismo?obra_id=&fecha_inicio=&fecha_fin=
func (h *PresentismoHandler) Listar(c *gin.Context) {
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

// Obtener GET /api/presentismo/:id
func (h *PresentismoHandler) Obtener(c *gin.Context) {
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

// Crear POST /api/presentismo
func (h *PresentismoHandler) Crear(c *gin.Context) {
	var req dto.CrearPresentismoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Mensaje: "Presentismo registrado"})
}

// Actualizar PUT /api/presentismo/:id
func (h *PresentismoHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPresentismoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Actualizado"})
}

// Eliminar DELETE /api/presentismo/:id
func (h *PresentismoHandler) Eliminar(c *gin.Context) {
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
