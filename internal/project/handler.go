// File: internal/project/handler.go
package project

import (
	"errors"

	"gitmeet_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for project handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new project handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for project operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	projectGroup := router.Group("/projects")
	{
		projectGroup.POST("", h.createProject)
		projectGroup.GET("/:id", h.getProject)
		projectGroup.POST("/:id/refresh", h.refreshProject)
		projectGroup.POST("/:id/swipe", h.swipeProject)
		projectGroup.POST("/:id/delete", h.deleteProject)
	}
}

func (h *Handler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("Invalid project request body", zap.String("path", c.Request.URL.Path), zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return false
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return false
	}
	return true
}

func (h *Handler) createProject(c *gin.Context) {
	var req CreateProjectRequest
	if !h.bindJSON(c, &req) {
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, ToProjectResponse(p))
}

func (h *Handler) getProject(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToProjectResponse(p))
}

func (h *Handler) refreshProject(c *gin.Context) {
	var req RefreshProjectRequest
	if !h.bindJSON(c, &req) {
		return
	}

	p, err := h.service.Refresh(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToProjectResponse(p))
}

func (h *Handler) swipeProject(c *gin.Context) {
	var req SwipeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.service.Swipe(c.Request.Context(), c.Param("id"), req.UserID, *req.Liked); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Swipe has been saved successfully!")
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Project has been deleted successfully!")
}
