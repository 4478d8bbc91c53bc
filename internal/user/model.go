// File: internal/user/model.go
package user

import (
	"time"
)

// User is a developer identity linked to a GitHub login. The identifier is
// assigned once at creation and never reassigned; created_at is immutable.
// The three list fields record chronological history: appends only, order
// preserved.
type User struct {
	ID               string
	Name             string
	Username         string
	Schedules        []string
	LikedProjects    []string
	PersonalProjects []string
	AuthToken        string
	CreatedAt        time.Time
}

// Collection names one of the user's append-only lists.
type Collection string

const (
	CollectionSchedules        Collection = "schedules"
	CollectionLikedProjects    Collection = "liked_projects"
	CollectionPersonalProjects Collection = "personal_projects"
)

// --- DTOs (Data Transfer Objects) for API requests/responses ---

// CreateUserRequest defines the structure for explicitly registering a user.
type CreateUserRequest struct {
	Name             string   `json:"name" binding:"required"`
	Username         string   `json:"username" binding:"required"`
	PersonalProjects []string `json:"personal_projects" binding:"required"`
	AuthToken        string   `json:"auth_token" binding:"required"`
}

// EditUserRequest appends values to the user's collections. At least one of
// the three optional fields must be present; the handler enforces that.
type EditUserRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	Schedule        string `json:"schedule,omitempty"`
	LikedProject    string `json:"liked_project,omitempty"`
	PersonalProject string `json:"personal_project,omitempty"`
}

// UserResponse defines the structure for user data sent in API responses.
type UserResponse struct {
	UserID           string    `json:"userId"`
	Name             string    `json:"name"`
	Username         string    `json:"username"`
	Schedules        []string  `json:"schedules"`
	LikedProjects    []string  `json:"likedProjects"`
	PersonalProjects []string  `json:"personalProjects"`
	AuthToken        string    `json:"authToken"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		UserID:           u.ID,
		Name:             u.Name,
		Username:         u.Username,
		Schedules:        emptyIfNil(u.Schedules),
		LikedProjects:    emptyIfNil(u.LikedProjects),
		PersonalProjects: emptyIfNil(u.PersonalProjects),
		AuthToken:        u.AuthToken,
		CreatedAt:        u.CreatedAt,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
