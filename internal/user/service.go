// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitmeet_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements identity reconciliation and the user collection
// mutations. One store round trip per read, zero or one write per call, no
// retries: a failed store call surfaces immediately.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("UserService"),
	}
}

// ReconcileLogin resolves a GitHub login into exactly one durable user
// record, idempotently.
//
// Known race: two first-time logins for the same username can both pass the
// lookup and both create a record, because only the id key is guarded by the
// conditional write. That window produces two rows for one username, which
// the identity sweep job reports; it is a data-quality defect, not a crash.
func (s *Service) ReconcileLogin(ctx context.Context, username, displayName, accessToken string) (*User, error) {
	matches, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to look up user by username", zap.Error(err), zap.String("username", username))
		return nil, common.ErrInternalServer.WithDetails("Could not look up user account.")
	}

	if len(matches) > 1 {
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		s.logger.Error("Duplicate identity detected during login",
			zap.String("username", username),
			zap.Strings("userIDs", ids))
		return nil, common.ErrDuplicateIdentity.WithDetails(
			fmt.Sprintf("Username %s resolves to more than one account.", username))
	}

	if len(matches) == 1 {
		existing := matches[0]
		if existing.AuthToken == accessToken {
			// Token unchanged: return the record as stored, no write.
			return existing, nil
		}
		if err := s.repo.UpdateToken(ctx, existing.ID, existing.Username, accessToken); err != nil {
			s.logger.Error("Failed to refresh access token", zap.Error(err), zap.String("userID", existing.ID))
			return nil, common.ErrInternalServer.WithDetails("Could not refresh access token.")
		}
		existing.AuthToken = accessToken
		s.logger.Info("Refreshed access token", zap.String("userID", existing.ID))
		return existing, nil
	}

	newUser := &User{
		ID:               uuid.NewString(),
		Name:             displayName,
		Username:         username,
		Schedules:        []string{},
		LikedProjects:    []string{},
		PersonalProjects: []string{},
		AuthToken:        accessToken,
		CreatedAt:        time.Now().UTC(),
	}

	applied, err := s.repo.Insert(ctx, newUser)
	if err != nil {
		s.logger.Error("Failed to create user", zap.Error(err), zap.String("username", username))
		return nil, common.ErrInternalServer.WithDetails("Could not create user account.")
	}
	if !applied {
		// A fresh UUID colliding is a store-level anomaly. Surface it rather
		// than retrying with another id the caller never saw.
		s.logger.Error("Conditional create rejected for fresh identifier",
			zap.String("userID", newUser.ID), zap.String("username", username))
		return nil, common.ErrConflict.WithDetails("Account creation conflicted with an existing record.")
	}

	s.logger.Info("Created user from GitHub login", zap.String("userID", newUser.ID), zap.String("username", username))
	return newUser, nil
}

// Create handles the explicit registration endpoint. Unlike ReconcileLogin it
// rejects an already-taken username outright.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	matches, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("Failed to check existing username", zap.Error(err), zap.String("username", req.Username))
		return nil, common.ErrInternalServer.WithDetails("Could not check existing users.")
	}
	if len(matches) > 0 {
		return nil, common.ErrConflict.WithDetails(
			fmt.Sprintf("User already exists with username %s.", req.Username))
	}

	newUser := &User{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Username:         req.Username,
		Schedules:        []string{},
		LikedProjects:    []string{},
		PersonalProjects: req.PersonalProjects,
		AuthToken:        req.AuthToken,
		CreatedAt:        time.Now().UTC(),
	}

	applied, err := s.repo.Insert(ctx, newUser)
	if err != nil {
		s.logger.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, common.ErrInternalServer.WithDetails("User not registered.")
	}
	if !applied {
		return nil, common.ErrConflict.WithDetails("Account creation conflicted with an existing record.")
	}

	s.logger.Info("User registered", zap.String("userID", newUser.ID), zap.String("username", newUser.Username))
	return newUser, nil
}

// GetByID fetches a single user.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Failed to fetch user", zap.Error(err), zap.String("userID", id))
			return nil, common.ErrInternalServer.WithDetails("Could not fetch user.")
		}
		return nil, err
	}
	return u, nil
}

// AppendToCollection reads the current record, appends value to the named
// collection preserving prior order, and rewrites the full record with every
// other field carried through unchanged.
//
// This is a non-atomic read-modify-write: concurrent appends to the same user
// can lose one update (last write wins on the full record). Switching these
// lists to storage-native appends, as the project swipe path does, is the
// follow-up once callers no longer need the updated record echoed back.
func (s *Service) AppendToCollection(ctx context.Context, userID string, collection Collection, value string) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Failed to read user for append", zap.Error(err), zap.String("userID", userID))
		return nil, common.ErrInternalServer.WithDetails("Could not read user.")
	}

	switch collection {
	case CollectionSchedules:
		u.Schedules = append(emptyIfNil(u.Schedules), value)
	case CollectionLikedProjects:
		u.LikedProjects = append(emptyIfNil(u.LikedProjects), value)
	case CollectionPersonalProjects:
		u.PersonalProjects = append(emptyIfNil(u.PersonalProjects), value)
	default:
		return nil, common.ErrBadRequest.WithDetails(
			fmt.Sprintf("Unknown collection %q.", collection))
	}

	if err := s.repo.Save(ctx, u); err != nil {
		s.logger.Error("Failed to write user collections", zap.Error(err), zap.String("userID", userID))
		return nil, common.ErrInternalServer.WithDetails("User details not updated.")
	}
	return u, nil
}

// VerifyToken checks a presented token against the stored one. The live
// check against GitHub happens in the auth service; this only covers the
// local comparison.
func (s *Service) VerifyToken(ctx context.Context, username, token string) (*User, error) {
	matches, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to look up user for verification", zap.Error(err), zap.String("username", username))
		return nil, common.ErrInternalServer.WithDetails("Could not verify user.")
	}
	if len(matches) == 0 {
		return nil, common.ErrUnauthorized.WithDetails("User doesn't exist.")
	}
	u := matches[0]
	if u.AuthToken != token {
		return nil, common.ErrUnauthorized.WithDetails("Token expired. Login again.")
	}
	return u, nil
}
