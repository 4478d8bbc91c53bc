// File: internal/auth/auth_helper.go
package auth

import (
	"fmt"
	"net/http"

	"gitmeet_backend/internal/config"

	"github.com/gin-gonic/gin"
)

// setOAuthCookie sets a secure cookie for the CSRF state.
func setOAuthCookie(c *gin.Context, cfg *config.Config, name, value string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   cfg.OAuthCookieMaxAgeMinutes * 60,
		Secure:   cfg.OAuthCookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// getOAuthCookie retrieves and deletes an OAuth cookie.
func getOAuthCookie(c *gin.Context, cfg *config.Config, name string) (string, error) {
	cookie, err := c.Request.Cookie(name)
	if err != nil {
		return "", fmt.Errorf("%s cookie not found: %w", name, err)
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   cfg.OAuthCookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return cookie.Value, nil
}
