// File: internal/user/repository.go
package user

import (
	"context"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/platform/cassandra"
)

// Identity is the (id, username) pair used by the duplicate sweep.
type Identity struct {
	ID       string
	Username string
}

// Repository defines the interface for user data operations.
type Repository interface {
	// FindByID retrieves a user by identifier. Returns common.ErrNotFound
	// when no row matches.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername returns every user whose GitHub username matches. The
	// caller decides what more than one row means.
	FindByUsername(ctx context.Context, username string) ([]*User, error)

	// Insert performs a conditional creation write and reports whether it was
	// applied. A false return means a record with this id already exists.
	Insert(ctx context.Context, u *User) (bool, error)

	// UpdateToken rewrites only the auth_token column; every other column is
	// left untouched by the statement itself.
	UpdateToken(ctx context.Context, id, username, token string) error

	// Save rewrites the full record. Callers must re-supply every field from
	// a just-read record; the write is not a partial patch.
	Save(ctx context.Context, u *User) error

	// ListIdentities scans all (id, username) pairs.
	ListIdentities(ctx context.Context) ([]Identity, error)
}

const (
	selectUserColumns = `id, name, username, schedules, liked_projects, personal_projects, auth_token, created_at`

	findUserByIDStmt       = `SELECT ` + selectUserColumns + ` FROM users WHERE id = ?`
	findUserByUsernameStmt = `SELECT ` + selectUserColumns + ` FROM users WHERE username = ?`

	insertUserStmt = `INSERT INTO users (id, name, username, schedules, liked_projects, personal_projects, auth_token, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) IF NOT EXISTS`

	updateTokenStmt = `UPDATE users SET auth_token = ? WHERE id = ? AND username = ?`

	saveUserStmt = `UPDATE users SET name = ?, schedules = ?, liked_projects = ?, personal_projects = ?, auth_token = ?, created_at = ?
		WHERE id = ? AND username = ?`

	listIdentitiesStmt = `SELECT id, username FROM users`
)

type cassandraRepository struct {
	store cassandra.Store
}

// NewCassandraRepository creates a new Cassandra-backed user repository.
func NewCassandraRepository(store cassandra.Store) Repository {
	return &cassandraRepository{store: store}
}

func (r *cassandraRepository) FindByID(ctx context.Context, id string) (*User, error) {
	rows, err := r.store.Query(ctx, findUserByIDStmt, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.ErrNotFound.WithDetails("User not found with this ID.")
	}
	return userFromRow(rows[0]), nil
}

func (r *cassandraRepository) FindByUsername(ctx context.Context, username string) ([]*User, error) {
	rows, err := r.store.Query(ctx, findUserByUsernameStmt, username)
	if err != nil {
		return nil, err
	}
	users := make([]*User, len(rows))
	for i, row := range rows {
		users[i] = userFromRow(row)
	}
	return users, nil
}

func (r *cassandraRepository) Insert(ctx context.Context, u *User) (bool, error) {
	return r.store.ExecCAS(ctx, insertUserStmt,
		u.ID, u.Name, u.Username,
		u.Schedules, u.LikedProjects, u.PersonalProjects,
		u.AuthToken, u.CreatedAt)
}

func (r *cassandraRepository) UpdateToken(ctx context.Context, id, username, token string) error {
	return r.store.Exec(ctx, updateTokenStmt, token, id, username)
}

func (r *cassandraRepository) Save(ctx context.Context, u *User) error {
	return r.store.Exec(ctx, saveUserStmt,
		u.Name, u.Schedules, u.LikedProjects, u.PersonalProjects,
		u.AuthToken, u.CreatedAt,
		u.ID, u.Username)
}

func (r *cassandraRepository) ListIdentities(ctx context.Context) ([]Identity, error) {
	rows, err := r.store.Query(ctx, listIdentitiesStmt)
	if err != nil {
		return nil, err
	}
	ids := make([]Identity, len(rows))
	for i, row := range rows {
		ids[i] = Identity{ID: row.String("id"), Username: row.String("username")}
	}
	return ids, nil
}

func userFromRow(row cassandra.Row) *User {
	return &User{
		ID:               row.String("id"),
		Name:             row.String("name"),
		Username:         row.String("username"),
		Schedules:        row.Strings("schedules"),
		LikedProjects:    row.Strings("liked_projects"),
		PersonalProjects: row.Strings("personal_projects"),
		AuthToken:        row.String("auth_token"),
		CreatedAt:        row.Time("created_at"),
	}
}
