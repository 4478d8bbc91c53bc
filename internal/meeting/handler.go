// File: internal/meeting/handler.go
package meeting

import (
	"errors"

	"gitmeet_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for meeting handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new meeting handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for meeting operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	meetingGroup := router.Group("/meetings")
	{
		meetingGroup.POST("", h.createMeeting)
		meetingGroup.GET("/:id", h.getMeeting)
		meetingGroup.POST("/:id/delete", h.deleteMeeting)
	}
}

func (h *Handler) createMeeting(c *gin.Context) {
	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create meeting: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, ToMeetingResponse(m))
}

func (h *Handler) getMeeting(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToMeetingResponse(m))
}

func (h *Handler) deleteMeeting(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Meeting has been deleted successfully!")
}
