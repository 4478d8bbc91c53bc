// File: internal/project/repository.go
package project

import (
	"context"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/platform/cassandra"
)

// Repository defines the interface for project data operations.
type Repository interface {
	// FindByID retrieves a project by identifier. Returns common.ErrNotFound
	// when no row matches.
	FindByID(ctx context.Context, id string) (*Project, error)

	// Insert writes a freshly created project.
	Insert(ctx context.Context, p *Project) error

	// UpdateMetadata overwrites every externally-synced column plus the
	// geolocation. The swipes column is never part of this statement.
	UpdateMetadata(ctx context.Context, p *Project) error

	// AppendSwipes adds records to the swipe list using the store's native
	// list-append, so prior swipes are never read, rewritten or clobbered.
	AppendSwipes(ctx context.Context, id string, swipes []SwipeRecord) error

	// Delete removes the project row.
	Delete(ctx context.Context, id string) error
}

const (
	selectProjectColumns = `id, name, author, readme, lat, long, tags, swipes, repo_id, repo_link, description`

	findProjectByIDStmt = `SELECT ` + selectProjectColumns + ` FROM projects WHERE id = ?`

	insertProjectStmt = `INSERT INTO projects (id, name, author, readme, lat, long, tags, swipes, repo_id, repo_link, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateProjectMetadataStmt = `UPDATE projects SET name = ?, author = ?, readme = ?, lat = ?, long = ?, tags = ?, repo_id = ?, repo_link = ?, description = ?
		WHERE id = ?`

	appendSwipesStmt = `UPDATE projects SET swipes = swipes + ? WHERE id = ?`

	deleteProjectStmt = `DELETE FROM projects WHERE id = ?`
)

type cassandraRepository struct {
	store cassandra.Store
}

// NewCassandraRepository creates a new Cassandra-backed project repository.
func NewCassandraRepository(store cassandra.Store) Repository {
	return &cassandraRepository{store: store}
}

func (r *cassandraRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	rows, err := r.store.Query(ctx, findProjectByIDStmt, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.ErrNotFound.WithDetails("Project not found with this ID.")
	}
	return projectFromRow(rows[0]), nil
}

func (r *cassandraRepository) Insert(ctx context.Context, p *Project) error {
	return r.store.Exec(ctx, insertProjectStmt,
		p.ID, p.Name, p.Author, p.Readme, p.Lat, p.Long,
		p.Tags, p.Swipes, p.RepoID, p.RepoLink, p.Description)
}

func (r *cassandraRepository) UpdateMetadata(ctx context.Context, p *Project) error {
	return r.store.Exec(ctx, updateProjectMetadataStmt,
		p.Name, p.Author, p.Readme, p.Lat, p.Long,
		p.Tags, p.RepoID, p.RepoLink, p.Description,
		p.ID)
}

func (r *cassandraRepository) AppendSwipes(ctx context.Context, id string, swipes []SwipeRecord) error {
	return r.store.Exec(ctx, appendSwipesStmt, swipes, id)
}

func (r *cassandraRepository) Delete(ctx context.Context, id string) error {
	return r.store.Exec(ctx, deleteProjectStmt, id)
}

func projectFromRow(row cassandra.Row) *Project {
	return &Project{
		ID:          row.String("id"),
		Name:        row.String("name"),
		Author:      row.String("author"),
		Readme:      row.String("readme"),
		Lat:         row.String("lat"),
		Long:        row.String("long"),
		Tags:        row.Strings("tags"),
		Swipes:      swipesFromRow(row["swipes"]),
		RepoID:      row.String("repo_id"),
		RepoLink:    row.String("repo_link"),
		Description: row.String("description"),
	}
}

// swipesFromRow decodes a list<frozen<swipe>> column, which the driver hands
// back as a slice of column maps.
func swipesFromRow(v interface{}) []SwipeRecord {
	raw, ok := v.([]map[string]interface{})
	if !ok {
		return nil
	}
	swipes := make([]SwipeRecord, 0, len(raw))
	for _, m := range raw {
		swipedBy, _ := m["swiped_by"].(string)
		liked, _ := m["liked"].(bool)
		swipes = append(swipes, SwipeRecord{SwipedBy: swipedBy, Liked: liked})
	}
	return swipes
}
