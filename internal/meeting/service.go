// File: internal/meeting/service.go
package meeting

import (
	"context"
	"errors"
	"time"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScheduleAppender is the slice of the user service this package consumes:
// adding a meeting reference to a user's schedule collection.
type ScheduleAppender interface {
	AppendToCollection(ctx context.Context, userID string, collection user.Collection, value string) (*user.User, error)
}

// Service implements meeting scheduling. Creating a meeting is two writes
// with no rollback: the meeting row, then the schedule append on the owner.
// A failed append leaves an unreferenced meeting row, which delete-and-retry
// resolves; no conflict resolution is attempted.
type Service struct {
	repo      Repository
	schedules ScheduleAppender
	logger    *zap.Logger
}

// NewService creates a new meeting service.
func NewService(repo Repository, schedules ScheduleAppender, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		schedules: schedules,
		logger:    logger.Named("MeetingService"),
	}
}

// Create stores the meeting and appends its id to the owner's schedules.
func (s *Service) Create(ctx context.Context, req CreateMeetingRequest) (*Meeting, error) {
	m := &Meeting{
		ID:          uuid.NewString(),
		OwnerID:     req.OwnerID,
		InviteeID:   req.InviteeID,
		Link:        req.Link,
		ScheduledAt: req.ScheduledAt,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		s.logger.Error("Failed to insert meeting", zap.Error(err), zap.String("ownerID", req.OwnerID))
		return nil, common.ErrInternalServer.WithDetails("Meeting not created.")
	}

	if _, err := s.schedules.AppendToCollection(ctx, req.OwnerID, user.CollectionSchedules, m.ID); err != nil {
		s.logger.Error("Failed to append meeting to owner schedule",
			zap.Error(err), zap.String("meetingID", m.ID), zap.String("ownerID", req.OwnerID))
		return nil, err
	}

	s.logger.Info("Meeting created", zap.String("meetingID", m.ID), zap.String("ownerID", req.OwnerID))
	return m, nil
}

// Get fetches a single meeting.
func (s *Service) Get(ctx context.Context, id string) (*Meeting, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Failed to fetch meeting", zap.Error(err), zap.String("meetingID", id))
			return nil, common.ErrInternalServer.WithDetails("Could not fetch meeting.")
		}
		return nil, err
	}
	return m, nil
}

// Delete removes a meeting after verifying it exists.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		s.logger.Error("Failed to check meeting before delete", zap.Error(err), zap.String("meetingID", id))
		return common.ErrInternalServer.WithDetails("Could not delete meeting.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete meeting", zap.Error(err), zap.String("meetingID", id))
		return common.ErrInternalServer.WithDetails("Could not delete meeting.")
	}
	return nil
}
