package handler

import (
	"net/http"

	"nomina/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Totales GET /api/dashboard
func (h *DashboardHandler) Totales(c *gin.Context) {
	resp, err := h.svc.Totales(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
