// File: internal/auth/service.go
package auth

import (
	"context"
	"errors"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/config"
	"gitmeet_backend/internal/github"
	"gitmeet_backend/internal/platform/crypto"
	"gitmeet_backend/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// githubScopes are the permissions requested from GitHub on login.
var githubScopes = []string{
	"repo:status",
	"read:org",
	"notifications",
	"read:user",
	"user:email",
	"read:discussion",
}

// UserService is the slice of the user service the auth flow consumes.
type UserService interface {
	ReconcileLogin(ctx context.Context, username, displayName, accessToken string) (*user.User, error)
	VerifyToken(ctx context.Context, username, token string) (*user.User, error)
}

// ProfileGateway resolves an access token to its GitHub profile.
type ProfileGateway interface {
	CheckToken(ctx context.Context, token string) (*github.Profile, error)
}

// Service drives the GitHub OAuth login flow and token verification.
type Service struct {
	cfg     *config.Config
	users   UserService
	gateway ProfileGateway
	logger  *zap.Logger
}

// NewService creates a new auth service.
func NewService(cfg *config.Config, users UserService, gateway ProfileGateway, logger *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		users:   users,
		gateway: gateway,
		logger:  logger.Named("AuthService"),
	}
}

func (s *Service) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GitHubClientID,
		ClientSecret: s.cfg.GitHubClientSecret,
		Endpoint:     githuboauth.Endpoint,
		RedirectURL:  s.cfg.GitHubCallbackURL,
		Scopes:       githubScopes,
	}
}

// LoginURL generates the GitHub authorize URL and stores the CSRF state in a
// cookie.
func (s *Service) LoginURL(c *gin.Context) (string, error) {
	state, err := crypto.GenerateSecureRandomString(32)
	if err != nil {
		s.logger.Error("Failed to generate OAuth state", zap.Error(err))
		return "", common.ErrInternalServer.WithDetails("Could not initiate GitHub login.")
	}
	setOAuthCookie(c, s.cfg, s.cfg.OAuthStateCookieName, state)
	return s.oauthConfig().AuthCodeURL(state), nil
}

// HandleCallback exchanges the authorization code, resolves the GitHub
// profile behind the granted token and reconciles it into a local user.
func (s *Service) HandleCallback(c *gin.Context, code, state string) (*user.User, error) {
	storedState, err := getOAuthCookie(c, s.cfg, s.cfg.OAuthStateCookieName)
	if err != nil {
		s.logger.Warn("OAuth state cookie missing on callback", zap.Error(err))
		return nil, common.ErrBadRequest.WithDetails("Invalid session or state mismatch.")
	}
	if state != storedState {
		s.logger.Warn("OAuth state mismatch on callback")
		return nil, common.ErrBadRequest.WithDetails("OAuth state mismatch.")
	}

	token, err := s.oauthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		s.logger.Error("Failed to exchange GitHub auth code", zap.Error(err))
		return nil, common.ErrAccessDenied.WithDetails("Could not exchange GitHub authorization code.")
	}

	profile, err := s.gateway.CheckToken(c.Request.Context(), token.AccessToken)
	if err != nil {
		s.logger.Error("Failed to fetch GitHub profile after exchange", zap.Error(err))
		return nil, err
	}

	return s.users.ReconcileLogin(c.Request.Context(), profile.Username, profile.DisplayName, token.AccessToken)
}

// Verify checks the presented token against the stored one and then against
// GitHub itself, so a revoked token fails even when it matches our copy.
func (s *Service) Verify(ctx context.Context, username, token string) error {
	u, err := s.users.VerifyToken(ctx, username, token)
	if err != nil {
		return err
	}

	if _, err := s.gateway.CheckToken(ctx, u.AuthToken); err != nil {
		if errors.Is(err, common.ErrAccessDenied) || errors.Is(err, common.ErrNotFound) {
			return common.ErrUnauthorized.WithDetails("Token expired. Login again.")
		}
		return err
	}
	return nil
}
