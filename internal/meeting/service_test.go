// File: internal/meeting/service_test.go
package meeting

import (
	"context"
	"testing"
	"time"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockMeetingRepository is an in-memory Repository.
type mockMeetingRepository struct {
	meetings  map[string]*Meeting
	insertErr error
}

func newMockMeetingRepository() *mockMeetingRepository {
	return &mockMeetingRepository{meetings: make(map[string]*Meeting)}
}

func (m *mockMeetingRepository) FindByID(ctx context.Context, id string) (*Meeting, error) {
	mt, ok := m.meetings[id]
	if !ok {
		return nil, common.ErrNotFound.WithDetails("Meeting not found with this ID.")
	}
	clone := *mt
	return &clone, nil
}

func (m *mockMeetingRepository) Insert(ctx context.Context, mt *Meeting) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	clone := *mt
	m.meetings[mt.ID] = &clone
	return nil
}

func (m *mockMeetingRepository) Delete(ctx context.Context, id string) error {
	delete(m.meetings, id)
	return nil
}

// mockScheduleAppender records every schedule append.
type mockScheduleAppender struct {
	appended  map[string][]string // userID -> values
	appendErr error
}

func newMockScheduleAppender() *mockScheduleAppender {
	return &mockScheduleAppender{appended: make(map[string][]string)}
}

func (m *mockScheduleAppender) AppendToCollection(ctx context.Context, userID string, collection user.Collection, value string) (*user.User, error) {
	if m.appendErr != nil {
		return nil, m.appendErr
	}
	if collection != user.CollectionSchedules {
		panic("meetings must only touch the schedules collection")
	}
	m.appended[userID] = append(m.appended[userID], value)
	return &user.User{ID: userID, Schedules: m.appended[userID]}, nil
}

func TestCreateMeetingAppendsToOwnerSchedule(t *testing.T) {
	repo := newMockMeetingRepository()
	appender := newMockScheduleAppender()
	svc := NewService(repo, appender, zap.NewNop())

	when := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	m, err := svc.Create(context.Background(), CreateMeetingRequest{
		OwnerID:     "u-1",
		InviteeID:   "u-2",
		Link:        "https://meet.example.com/abc",
		ScheduledAt: when,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, when, m.ScheduledAt)

	// The stored meeting id must be the one referenced from the schedule.
	assert.Equal(t, []string{m.ID}, appender.appended["u-1"])
	assert.Empty(t, appender.appended["u-2"])
	assert.Contains(t, repo.meetings, m.ID)
}

func TestCreateMeetingScheduleAppendFailure(t *testing.T) {
	repo := newMockMeetingRepository()
	appender := newMockScheduleAppender()
	appender.appendErr = common.ErrNotFound.WithDetails("User not found with this ID.")
	svc := NewService(repo, appender, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateMeetingRequest{
		OwnerID:     "missing",
		InviteeID:   "u-2",
		Link:        "https://meet.example.com/abc",
		ScheduledAt: time.Now().UTC(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	// The meeting row is written first; a failed append leaves it behind.
	assert.Len(t, repo.meetings, 1)
}

func TestGetAndDeleteMeeting(t *testing.T) {
	repo := newMockMeetingRepository()
	repo.meetings["m-1"] = &Meeting{ID: "m-1", OwnerID: "u-1"}
	svc := NewService(repo, newMockScheduleAppender(), zap.NewNop())
	ctx := context.Background()

	m, err := svc.Get(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", m.OwnerID)

	require.NoError(t, svc.Delete(ctx, "m-1"))

	_, err = svc.Get(ctx, "m-1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "m-1"), common.ErrNotFound)
}
