// File: internal/meeting/model.go
package meeting

import "time"

// Meeting links two users at a time and place (a call link). From the user
// record's perspective a meeting is an opaque schedule reference.
type Meeting struct {
	ID          string
	OwnerID     string
	InviteeID   string
	Link        string
	ScheduledAt time.Time
	CreatedAt   time.Time
}

// --- DTOs (Data Transfer Objects) for API requests/responses ---

// CreateMeetingRequest schedules a meeting between two users.
type CreateMeetingRequest struct {
	OwnerID     string    `json:"owner_id" binding:"required"`
	InviteeID   string    `json:"invitee_id" binding:"required"`
	Link        string    `json:"link" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// MeetingResponse defines the structure for meeting data sent in API responses.
type MeetingResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	InviteeID   string    `json:"inviteeId"`
	Link        string    `json:"link"`
	ScheduledAt time.Time `json:"scheduledAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToMeetingResponse converts a Meeting model to a MeetingResponse DTO.
func ToMeetingResponse(m *Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		InviteeID:   m.InviteeID,
		Link:        m.Link,
		ScheduledAt: m.ScheduledAt,
		CreatedAt:   m.CreatedAt,
	}
}
