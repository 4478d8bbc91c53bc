// File: internal/project/model.go
package project

// SwipeRecord is one vote on a project. Records are embedded in their
// project and only ever appended.
type SwipeRecord struct {
	SwipedBy string `cql:"swiped_by" json:"swipedBy"`
	Liked    bool   `cql:"liked" json:"liked"`
}

// Project mirrors an external GitHub repository plus caller-supplied
// geolocation. Metadata fields are overwritten wholesale on refresh; the
// swipe list only grows.
type Project struct {
	ID          string
	Name        string
	Author      string
	Readme      string
	Lat         string
	Long        string
	Tags        []string
	Swipes      []SwipeRecord
	RepoID      string
	RepoLink    string
	Description string
}

// --- DTOs (Data Transfer Objects) for API requests/responses ---

// CreateProjectRequest publishes a repository as a project.
type CreateProjectRequest struct {
	Auth     string `json:"auth" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	Username string `json:"username" binding:"required"`
	RepoName string `json:"reponame" binding:"required"`
	Lat      string `json:"lat" binding:"required"`
	Long     string `json:"long" binding:"required"`
}

// RefreshProjectRequest re-syncs an existing project from GitHub.
type RefreshProjectRequest struct {
	Auth     string `json:"auth" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	Username string `json:"username" binding:"required"`
	RepoName string `json:"reponame" binding:"required"`
	Lat      string `json:"lat" binding:"required"`
	Long     string `json:"long" binding:"required"`
}

// SwipeRequest records a like/pass vote. Liked is a pointer so an explicit
// false is distinguishable from a missing field.
type SwipeRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Liked  *bool  `json:"liked" binding:"required"`
}

// ProjectResponse defines the structure for project data sent in API responses.
type ProjectResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Author      string        `json:"author"`
	Readme      string        `json:"readme"`
	Lat         string        `json:"lat"`
	Long        string        `json:"long"`
	Tags        []string      `json:"tags"`
	Swipes      []SwipeRecord `json:"swipes"`
	RepoID      string        `json:"repoId"`
	RepoLink    string        `json:"repoLink"`
	Description string        `json:"description"`
}

// ToProjectResponse converts a Project model to a ProjectResponse DTO.
func ToProjectResponse(p *Project) ProjectResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	swipes := p.Swipes
	if swipes == nil {
		swipes = []SwipeRecord{}
	}
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Author:      p.Author,
		Readme:      p.Readme,
		Lat:         p.Lat,
		Long:        p.Long,
		Tags:        tags,
		Swipes:      swipes,
		RepoID:      p.RepoID,
		RepoLink:    p.RepoLink,
		Description: p.Description,
	}
}
