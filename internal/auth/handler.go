// File: internal/auth/handler.go
package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/config"
	"gitmeet_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// VerifyRequest checks whether a stored token is still valid.
type VerifyRequest struct {
	Username  string `json:"username" binding:"required"`
	AuthToken string `json:"auth_token" binding:"required"`
}

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	service *Service
	cfg     *config.Config
	logger  *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(service *Service, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for authentication operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/github/login", h.githubLogin)
		authGroup.GET("/github/callback", h.githubCallback)
		authGroup.POST("/verify", h.verify)
	}
}

func (h *Handler) githubLogin(c *gin.Context) {
	url, err := h.service.LoginURL(c)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// githubCallback finishes the OAuth flow and hands the reconciled user back
// to the frontend as a base64 JSON blob in the redirect URL.
func (h *Handler) githubCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Missing code or state parameter."))
		return
	}

	u, err := h.service.HandleCallback(c, code, state)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	payload, err := json.Marshal(user.ToUserResponse(u))
	if err != nil {
		h.logger.Error("Failed to encode user for redirect", zap.Error(err), zap.String("userID", u.ID))
		common.RespondWithError(c, common.ErrInternalServer.WithDetails("Login failed. Try again!"))
		return
	}
	token := base64.StdEncoding.EncodeToString(payload)
	c.Redirect(http.StatusFound, fmt.Sprintf("%s/auth?token=%s", h.cfg.FrontendURL, token))
}

func (h *Handler) verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Verify: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	if err := h.service.Verify(c.Request.Context(), req.Username, req.AuthToken); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Successfully authenticated")
}
