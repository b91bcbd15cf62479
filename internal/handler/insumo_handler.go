package handler

import (
	"net/http"
	"strconv"

	"backend/internal/service"
	"backend/pkg/apperror"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type InsumoHandler struct {
	insumoService service.InsumoService
}

func NewInsumoHandler(insumoService service.InsumoService) *InsumoHandler {
	return &InsumoHandler{insumoService: insumoService}
}

func (h *InsumoHandler) RegisterRoutes(router *gin.RouterGroup) {
	insumos := router.Group("/insumos")
	{
		insumos.GET("", h.ListInsumos)
		insumos.POST("", h.CreateInsumo)
		insumos.PUT("/:id", h.UpdateInsumo)
		insumos.DELETE("/:id", h.DeleteInsumo)
	}
	router.GET("/solicitantes", h.ListSolicitantes)
}

// ListInsumos returns the filtered record set, newest request date first
// @Summary      List insumos
// @Tags         insumos
// @Produce      json
// @Param        centroCusto  query  string  false  "Exact cost center"
// @Param        status       query  string  false  "Exact status"
// @Param        solicitante  query  string  false  "Exact requester name"
// @Param        dataInicio   query  string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        dataFim      query  string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /insumos [get]
func (h *InsumoHandler) ListInsumos(c *gin.Context) {
	query := service.ListInsumosQuery{
		CentroCusto: c.Query("centroCusto"),
		Status:      c.Query("status"),
		Solicitante: c.Query("solicitante"),
		DataInicio:  c.Query("dataInicio"),
		DataFim:     c.Query("dataFim"),
	}

	insumos, err := h.insumoService.ListInsumos(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, insumos))
}

// CreateInsumo creates a new request record
// @Summary      Create insumo
// @Tags         insumos
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateInsumoRequest  true  "Insumo payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /insumos [post]
func (h *InsumoHandler) CreateInsumo(c *gin.Context) {
	var req service.CreateInsumoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	insumo, err := h.insumoService.CreateInsumo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, insumo))
}

// UpdateInsumo applies a partial update to an existing record
// @Summary      Update insumo
// @Tags         insumos
// @Accept       json
// @Produce      json
// @Param        id       path  int                          true  "Insumo ID"
// @Param        payload  body  service.UpdateInsumoRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /insumos/{id} [put]
func (h *InsumoHandler) UpdateInsumo(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.UpdateInsumoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	insumo, err := h.insumoService.UpdateInsumo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, insumo))
}

// DeleteInsumo removes a record
// @Summary      Delete insumo
// @Tags         insumos
// @Produce      json
// @Param        id  path  int  true  "Insumo ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /insumos/{id} [delete]
func (h *InsumoHandler) DeleteInsumo(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.insumoService.DeleteInsumo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Insumo deleted successfully"}))
}

// ListSolicitantes returns the distinct requester names, alphabetically
// @Summary      List solicitantes
// @Tags         solicitantes
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /solicitantes [get]
func (h *InsumoHandler) ListSolicitantes(c *gin.Context) {
	nomes, err := h.insumoService.ListSolicitantes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, nomes))
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validationf("invalid insumo id %q", raw)
	}
	return uint(id), nil
}
