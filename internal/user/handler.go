// File: internal/user/handler.go
package user

import (
	"errors"

	"gitmeet_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for user operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/users")
	{
		userGroup.POST("", h.createUser)
		userGroup.GET("/:id", h.getUser)
		userGroup.POST("/edit", h.editUser)
	}
}

func (h *Handler) createUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create user: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, ToUserResponse(u))
}

func (h *Handler) getUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Required fields are missing. UserId not found!"))
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToUserResponse(u))
}

// editUser appends to one or more of the user's collections. Each provided
// field is a separate append so insertion order within a collection is
// preserved.
func (h *Handler) editUser(c *gin.Context) {
	var req EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Edit user: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	appends := []struct {
		collection Collection
		value      string
	}{
		{CollectionSchedules, req.Schedule},
		{CollectionLikedProjects, req.LikedProject},
		{CollectionPersonalProjects, req.PersonalProject},
	}

	var updated *User
	var appendedAny bool
	for _, a := range appends {
		if a.value == "" {
			continue
		}
		u, err := h.service.AppendToCollection(c.Request.Context(), req.UserID, a.collection, a.value)
		if err != nil {
			common.RespondWithError(c, err)
			return
		}
		updated = u
		appendedAny = true
	}

	if !appendedAny {
		common.RespondWithError(c, common.NewValidationAPIError(
			"At least one of schedule, liked_project or personal_project is required."))
		return
	}

	common.RespondOK(c, ToUserResponse(updated))
}
