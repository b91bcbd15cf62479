package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	transferService service.TransferService
}

func NewTransferHandler(transferService service.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

func (h *TransferHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/export", h.ExportData)
	router.POST("/import", h.ImportData)
}

// ExportData dumps all insumos and solicitante names
// @Summary      Export data
// @Tags         transfer
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /export [get]
func (h *TransferHandler) ExportData(c *gin.Context) {
	payload, err := h.transferService.ExportData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, payload))
}

// ImportData merges an exported dump into the store
// @Summary      Import data
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        payload  body  service.ImportRequest  true  "Exported dump"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /import [post]
func (h *TransferHandler) ImportData(c *gin.Context) {
	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	summary, err := h.transferService.ImportData(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"message":  "Data imported successfully",
		"imported": summary.Imported,
		"skipped":  summary.Skipped,
	}))
}
