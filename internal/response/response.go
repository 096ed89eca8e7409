// Package response provides standardized JSON response helpers.
package response

import (
	"net/http"

	app_errors "lingo-gate/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse defines the standard JSON error response structure.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON sends an adapter-defined payload verbatim with a 200 status.
// Adapter wire formats are a compatibility contract, so success bodies
// are not wrapped in an envelope.
func JSON(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Error sends a standardized error response using an APIError.
func Error(c *gin.Context, apiErr *app_errors.APIError) {
	c.JSON(apiErr.HTTPStatus, ErrorResponse{
		Code:    apiErr.Code,
		Message: apiErr.Message,
	})
}
