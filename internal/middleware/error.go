// File: internal/middleware/error.go
package middleware

import (
	"gitmeet_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler creates a Gin middleware for centralized error handling.
// Handlers normally respond themselves via common.RespondWithError; this is
// the safety net for errors attached to the context instead.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		ginErr := c.Errors[0]
		if apiErr, ok := common.IsAPIError(ginErr.Err); ok {
			c.AbortWithStatusJSON(apiErr.StatusCode, common.Envelope{Success: false, Body: apiErr})
			return
		}

		logger.Error("Unhandled application error",
			zap.Error(ginErr.Err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDContextKey)),
		)
		generic := common.ErrInternalServer.WithDetails("An unexpected error occurred.")
		c.AbortWithStatusJSON(generic.StatusCode, common.Envelope{Success: false, Body: generic})
	}
}
