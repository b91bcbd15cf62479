package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/stats", h.GetStats)
}

// GetStats returns aggregated totals and breakdowns for the dashboard
// @Summary      Dashboard statistics
// @Description  Totals plus per cost-center, per status and per month breakdowns, optionally bounded by request date
// @Tags         dashboard
// @Produce      json
// @Param        dataInicio  query  string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        dataFim     query  string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context(), c.Query("dataInicio"), c.Query("dataFim"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
