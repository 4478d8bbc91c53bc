// File: internal/meeting/repository.go
package meeting

import (
	"context"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/platform/cassandra"
)

// Repository defines the interface for meeting data operations.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Meeting, error)
	Insert(ctx context.Context, m *Meeting) error
	Delete(ctx context.Context, id string) error
}

const (
	findMeetingByIDStmt = `SELECT id, owner_id, invitee_id, link, scheduled_at, created_at FROM meetings WHERE id = ?`

	insertMeetingStmt = `INSERT INTO meetings (id, owner_id, invitee_id, link, scheduled_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	deleteMeetingStmt = `DELETE FROM meetings WHERE id = ?`
)

type cassandraRepository struct {
	store cassandra.Store
}

// NewCassandraRepository creates a new Cassandra-backed meeting repository.
func NewCassandraRepository(store cassandra.Store) Repository {
	return &cassandraRepository{store: store}
}

func (r *cassandraRepository) FindByID(ctx context.Context, id string) (*Meeting, error) {
	rows, err := r.store.Query(ctx, findMeetingByIDStmt, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.ErrNotFound.WithDetails("Meeting not found with this ID.")
	}
	row := rows[0]
	return &Meeting{
		ID:          row.String("id"),
		OwnerID:     row.String("owner_id"),
		InviteeID:   row.String("invitee_id"),
		Link:        row.String("link"),
		ScheduledAt: row.Time("scheduled_at"),
		CreatedAt:   row.Time("created_at"),
	}, nil
}

func (r *cassandraRepository) Insert(ctx context.Context, m *Meeting) error {
	return r.store.Exec(ctx, insertMeetingStmt,
		m.ID, m.OwnerID, m.InviteeID, m.Link, m.ScheduledAt, m.CreatedAt)
}

func (r *cassandraRepository) Delete(ctx context.Context, id string) error {
	return r.store.Exec(ctx, deleteMeetingStmt, id)
}
