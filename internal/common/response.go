// File: internal/common/response.go
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Envelope is the JSON shape every endpoint responds with.
type Envelope struct {
	Success bool        `json:"success"`
	Body    interface{} `json:"body"`
}

// RespondWithError sends a JSON error envelope.
func RespondWithError(c *gin.Context, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		if l, exists := c.Get("logger"); exists {
			if logger, ok := l.(*zap.Logger); ok {
				logger.Error("Unhandled internal error being wrapped", zap.Error(err))
			}
		}
		// Wrap it as a generic internal server error
		apiErr = ErrInternalServer.WithDetails(err.Error())
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, Envelope{Success: false, Body: apiErr})
}

// RespondSuccess sends a JSON success envelope.
func RespondSuccess(c *gin.Context, statusCode int, body interface{}) {
	c.JSON(statusCode, Envelope{Success: true, Body: body})
}

// RespondOK sends a 200 OK response.
func RespondOK(c *gin.Context, body interface{}) {
	RespondSuccess(c, http.StatusOK, body)
}

// RespondCreated sends a 201 Created response.
func RespondCreated(c *gin.Context, body interface{}) {
	RespondSuccess(c, http.StatusCreated, body)
}
