// File: internal/github/service.go
package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/config"

	gh "github.com/google/go-github/v66/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// RepoMetadata is the normalized repository description the core consumes.
type RepoMetadata struct {
	RepoID        string
	FullName      string
	Name          string
	Description   string
	Topics        []string
	DefaultBranch string
	HTMLURL       string
	OwnerLogin    string
}

// Profile is the authenticated GitHub user behind a token.
type Profile struct {
	Username    string
	DisplayName string
}

// Service talks to the GitHub REST API on behalf of a per-request token.
// Fetches have no side effects; a failed fetch leaves nothing to roll back.
type Service struct {
	baseURL string
	logger  *zap.Logger
}

// NewService creates the GitHub gateway. cfg.GitHubAPIBaseURL overrides the
// API host (used by tests); empty means api.github.com.
func NewService(cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		baseURL: cfg.GitHubAPIBaseURL,
		logger:  logger.Named("GitHubGateway"),
	}
}

func (s *Service) client(ctx context.Context, token string) (*gh.Client, error) {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	client := gh.NewClient(httpClient)
	if s.baseURL != "" {
		base := s.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, common.ErrInternalServer.WithDetails("Invalid GitHub API base URL.")
		}
		client.BaseURL = u
	}
	return client, nil
}

// GetRepository fetches repository metadata for owner/repo.
func (s *Service) GetRepository(ctx context.Context, token, owner, repo string) (*RepoMetadata, error) {
	client, err := s.client(ctx, token)
	if err != nil {
		return nil, err
	}

	r, _, err := client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		s.logger.Warn("Repository fetch failed",
			zap.String("owner", owner), zap.String("repo", repo), zap.Error(err))
		return nil, s.mapError(err)
	}

	return &RepoMetadata{
		RepoID:        strconv.FormatInt(r.GetID(), 10),
		FullName:      r.GetFullName(),
		Name:          r.GetName(),
		Description:   r.GetDescription(),
		Topics:        r.Topics,
		DefaultBranch: r.GetDefaultBranch(),
		HTMLURL:       r.GetHTMLURL(),
		OwnerLogin:    r.GetOwner().GetLogin(),
	}, nil
}

// GetReadme fetches the decoded README body from the given branch.
func (s *Service) GetReadme(ctx context.Context, token, owner, repo, ref string) (string, error) {
	client, err := s.client(ctx, token)
	if err != nil {
		return "", err
	}

	readme, _, err := client.Repositories.GetReadme(ctx, owner, repo, &gh.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		s.logger.Warn("README fetch failed",
			zap.String("owner", owner), zap.String("repo", repo), zap.String("ref", ref), zap.Error(err))
		return "", s.mapError(err)
	}

	content, err := readme.GetContent()
	if err != nil {
		return "", common.ErrInternalServer.WithDetails("Could not decode README content.")
	}
	return content, nil
}

// CheckToken resolves the token to its GitHub profile, proving the token is
// still live.
func (s *Service) CheckToken(ctx context.Context, token string) (*Profile, error) {
	client, err := s.client(ctx, token)
	if err != nil {
		return nil, err
	}

	u, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, s.mapError(err)
	}
	return &Profile{Username: u.GetLogin(), DisplayName: u.GetName()}, nil
}

// mapError translates GitHub API failures into the error taxonomy. Anything
// that is not a clean 404/401/403 becomes INTERNAL so transport errors never
// leak raw.
func (s *Service) mapError(err error) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return common.ErrNotFound.WithDetails("Repository could not be found on GitHub.")
		case http.StatusUnauthorized, http.StatusForbidden:
			return common.ErrAccessDenied.WithDetails("Access denied trying to access the repository on GitHub.")
		}
	}
	return common.ErrInternalServer.WithDetails("GitHub request failed.")
}
