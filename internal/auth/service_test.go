// File: internal/auth/service_test.go
package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/config"
	"gitmeet_backend/internal/github"
	"gitmeet_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserService struct {
	verifyUser *user.User
	verifyErr  error
}

func (s *stubUserService) ReconcileLogin(ctx context.Context, username, displayName, accessToken string) (*user.User, error) {
	return &user.User{ID: "u-1", Username: username, Name: displayName, AuthToken: accessToken}, nil
}

func (s *stubUserService) VerifyToken(ctx context.Context, username, token string) (*user.User, error) {
	return s.verifyUser, s.verifyErr
}

type stubProfileGateway struct {
	profile  *github.Profile
	checkErr error
}

func (s *stubProfileGateway) CheckToken(ctx context.Context, token string) (*github.Profile, error) {
	return s.profile, s.checkErr
}

func testAuthConfig() *config.Config {
	return &config.Config{
		GitHubClientID:           "client-id",
		GitHubClientSecret:       "client-secret",
		GitHubCallbackURL:        "http://localhost:8080/api/v1/auth/github/callback",
		OAuthStateCookieName:     "gitmeet_oauth_state",
		OAuthCookieMaxAgeMinutes: 10,
	}
}

func newAuthTestService(users UserService, gateway ProfileGateway) *Service {
	return NewService(testAuthConfig(), users, gateway, zap.NewNop())
}

func newTestGinContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestLoginURLSetsStateCookie(t *testing.T) {
	svc := newAuthTestService(&stubUserService{}, &stubProfileGateway{})
	c, rec := newTestGinContext(t)

	loginURL, err := svc.LoginURL(c)
	require.NoError(t, err)

	u, err := url.Parse(loginURL)
	require.NoError(t, err)
	assert.Equal(t, "github.com", u.Host)
	assert.Equal(t, "client-id", u.Query().Get("client_id"))

	state := u.Query().Get("state")
	require.NotEmpty(t, state)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "gitmeet_oauth_state", cookies[0].Name)
	assert.Equal(t, state, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestHandleCallbackRejectsMissingStateCookie(t *testing.T) {
	svc := newAuthTestService(&stubUserService{}, &stubProfileGateway{})
	c, _ := newTestGinContext(t)

	_, err := svc.HandleCallback(c, "code", "state")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestHandleCallbackRejectsStateMismatch(t *testing.T) {
	svc := newAuthTestService(&stubUserService{}, &stubProfileGateway{})
	c, _ := newTestGinContext(t)
	c.Request.AddCookie(&http.Cookie{Name: "gitmeet_oauth_state", Value: "stored-state"})

	_, err := svc.HandleCallback(c, "code", "forged-state")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestVerifyAcceptsLiveToken(t *testing.T) {
	svc := newAuthTestService(
		&stubUserService{verifyUser: &user.User{ID: "u-1", Username: "alice", AuthToken: "T1"}},
		&stubProfileGateway{profile: &github.Profile{Username: "alice"}},
	)

	assert.NoError(t, svc.Verify(context.Background(), "alice", "T1"))
}

func TestVerifyRejectsStoredMismatch(t *testing.T) {
	svc := newAuthTestService(
		&stubUserService{verifyErr: common.ErrUnauthorized.WithDetails("Token mismatch.")},
		&stubProfileGateway{},
	)

	err := svc.Verify(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestVerifyRejectsRevokedToken(t *testing.T) {
	// The stored token matches but GitHub no longer accepts it.
	svc := newAuthTestService(
		&stubUserService{verifyUser: &user.User{ID: "u-1", Username: "alice", AuthToken: "T1"}},
		&stubProfileGateway{checkErr: common.ErrAccessDenied.WithDetails("Bad credentials.")},
	)

	err := svc.Verify(context.Background(), "alice", "T1")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
