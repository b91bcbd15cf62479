package handler

import (
	"net/http"

	"backend/pkg/apperror"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses: validation → 400,
// not found → 404, anything else (store failures) → 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperror.IsValidation(err):
		status = http.StatusBadRequest
	case apperror.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.JSON(status, response.Error(status, err.Error()))
}
