// File: internal/project/service.go
package project

import (
	"context"
	"errors"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/github"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gateway is the slice of the GitHub gateway this service consumes.
type Gateway interface {
	GetRepository(ctx context.Context, token, owner, repo string) (*github.RepoMetadata, error)
	GetReadme(ctx context.Context, token, owner, repo, ref string) (string, error)
}

// Service implements project sync and swipe mutations. Sync operations are
// two-phase: external fetch first, local write second, so a gateway failure
// never leaves a partially-populated record.
type Service struct {
	repo    Repository
	gateway Gateway
	logger  *zap.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, gateway Gateway, logger *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
		logger:  logger.Named("ProjectService"),
	}
}

// fetchFromGitHub runs the external half of create/refresh: repository
// metadata, then the README from the default branch.
func (s *Service) fetchFromGitHub(ctx context.Context, token, owner, repo string) (*github.RepoMetadata, string, error) {
	meta, err := s.gateway.GetRepository(ctx, token, owner, repo)
	if err != nil {
		return nil, "", err
	}
	readme, err := s.gateway.GetReadme(ctx, token, owner, repo, meta.DefaultBranch)
	if err != nil {
		return nil, "", err
	}
	return meta, readme, nil
}

// Create publishes a repository as a new project with a fresh identifier.
func (s *Service) Create(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	meta, readme, err := s.fetchFromGitHub(ctx, req.Auth, req.Username, req.RepoName)
	if err != nil {
		return nil, err
	}

	p := &Project{
		ID:          uuid.NewString(),
		Name:        meta.Name,
		Author:      meta.OwnerLogin,
		Readme:      readme,
		Lat:         req.Lat,
		Long:        req.Long,
		Tags:        meta.Topics,
		Swipes:      []SwipeRecord{},
		RepoID:      meta.RepoID,
		RepoLink:    meta.HTMLURL,
		Description: meta.Description,
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		s.logger.Error("Failed to insert project", zap.Error(err), zap.String("repo", meta.FullName))
		return nil, common.ErrInternalServer.WithDetails("Project not created.")
	}

	s.logger.Info("Project created", zap.String("projectID", p.ID), zap.String("repo", meta.FullName))
	return p, nil
}

// Refresh re-syncs an existing project's metadata under the same identifier.
// The swipe list is untouched; only externally-sourced fields and the
// caller's geolocation are overwritten.
func (s *Service) Refresh(ctx context.Context, projectID string, req RefreshProjectRequest) (*Project, error) {
	meta, readme, err := s.fetchFromGitHub(ctx, req.Auth, req.Username, req.RepoName)
	if err != nil {
		return nil, err
	}

	p := &Project{
		ID:          projectID,
		Name:        meta.Name,
		Author:      meta.OwnerLogin,
		Readme:      readme,
		Lat:         req.Lat,
		Long:        req.Long,
		Tags:        meta.Topics,
		RepoID:      meta.RepoID,
		RepoLink:    meta.HTMLURL,
		Description: meta.Description,
	}

	if err := s.repo.UpdateMetadata(ctx, p); err != nil {
		s.logger.Error("Failed to refresh project", zap.Error(err), zap.String("projectID", projectID))
		return nil, common.ErrInternalServer.WithDetails("Project not refreshed.")
	}

	s.logger.Info("Project refreshed", zap.String("projectID", projectID), zap.String("repo", meta.FullName))
	return p, nil
}

// Swipe appends a single vote to the project's swipe list after verifying
// the project exists. The write uses the storage-native list append, never a
// read-modify-write of the accumulated list.
func (s *Service) Swipe(ctx context.Context, projectID, voterID string, liked bool) error {
	if _, err := s.repo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		s.logger.Error("Failed to check project before swipe", zap.Error(err), zap.String("projectID", projectID))
		return common.ErrInternalServer.WithDetails("Could not record swipe.")
	}

	swipe := []SwipeRecord{{SwipedBy: voterID, Liked: liked}}
	if err := s.repo.AppendSwipes(ctx, projectID, swipe); err != nil {
		s.logger.Error("Failed to append swipe", zap.Error(err), zap.String("projectID", projectID))
		return common.ErrInternalServer.WithDetails("Could not record swipe.")
	}
	return nil
}

// Get fetches a single project.
func (s *Service) Get(ctx context.Context, projectID string) (*Project, error) {
	p, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Failed to fetch project", zap.Error(err), zap.String("projectID", projectID))
			return nil, common.ErrInternalServer.WithDetails("Could not fetch project.")
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a project after verifying it exists.
func (s *Service) Delete(ctx context.Context, projectID string) error {
	if _, err := s.repo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		s.logger.Error("Failed to check project before delete", zap.Error(err), zap.String("projectID", projectID))
		return common.ErrInternalServer.WithDetails("Could not delete project.")
	}

	if err := s.repo.Delete(ctx, projectID); err != nil {
		s.logger.Error("Failed to delete project", zap.Error(err), zap.String("projectID", projectID))
		return common.ErrInternalServer.WithDetails("Could not delete project.")
	}
	s.logger.Info("Project deleted", zap.String("projectID", projectID))
	return nil
}
