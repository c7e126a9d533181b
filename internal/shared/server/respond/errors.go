package respond

import (
	"github.com/gin-gonic/gin"

	"careercompass-backend/internal/shared/telemetry"
)

// ErrorResponse is the flat error object every endpoint returns on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs and sends the standardized error response.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
