// File: internal/user/repository_test.go
package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/platform/cassandra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records every statement so tests can assert the exact CQL the
// repository sends to the cluster.
type fakeStore struct {
	queryRows []cassandra.Row
	queryErr  error
	casOK     bool

	lastStmt   string
	lastValues []interface{}
}

func (f *fakeStore) Query(ctx context.Context, stmt string, values ...interface{}) ([]cassandra.Row, error) {
	f.lastStmt = stmt
	f.lastValues = values
	return f.queryRows, f.queryErr
}

func (f *fakeStore) Exec(ctx context.Context, stmt string, values ...interface{}) error {
	f.lastStmt = stmt
	f.lastValues = values
	return nil
}

func (f *fakeStore) ExecCAS(ctx context.Context, stmt string, values ...interface{}) (bool, error) {
	f.lastStmt = stmt
	f.lastValues = values
	return f.casOK, nil
}

func TestRepositoryFindByIDMapsRow(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{queryRows: []cassandra.Row{{
		"id":                "u-1",
		"name":              "Alice",
		"username":          "alice",
		"schedules":         []string{"m-1"},
		"liked_projects":    []string{"p-1", "p-2"},
		"personal_projects": []string{"p-3"},
		"auth_token":        "T1",
		"created_at":        created,
	}}}
	repo := NewCassandraRepository(store)

	u, err := repo.FindByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, []string{"p-1", "p-2"}, u.LikedProjects)
	assert.Equal(t, created, u.CreatedAt)
	assert.Equal(t, []interface{}{"u-1"}, store.lastValues)
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	repo := NewCassandraRepository(&fakeStore{})

	_, err := repo.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRepositoryFindByUsernameReturnsAllRows(t *testing.T) {
	store := &fakeStore{queryRows: []cassandra.Row{
		{"id": "id-1", "username": "bob"},
		{"id": "id-2", "username": "bob"},
	}}
	repo := NewCassandraRepository(store)

	users, err := repo.FindByUsername(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "id-1", users[0].ID)
	assert.Equal(t, "id-2", users[1].ID)
}

func TestRepositoryInsertIsConditional(t *testing.T) {
	store := &fakeStore{casOK: true}
	repo := NewCassandraRepository(store)

	applied, err := repo.Insert(context.Background(), &User{ID: "u-1", Username: "alice"})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Contains(t, store.lastStmt, "IF NOT EXISTS")
	assert.Equal(t, "u-1", store.lastValues[0])
}

func TestRepositoryUpdateTokenTouchesOnlyToken(t *testing.T) {
	store := &fakeStore{}
	repo := NewCassandraRepository(store)

	require.NoError(t, repo.UpdateToken(context.Background(), "u-1", "alice", "T2"))
	assert.Contains(t, store.lastStmt, "SET auth_token = ?")
	assert.NotContains(t, store.lastStmt, "liked_projects")
	assert.NotContains(t, store.lastStmt, "schedules")
	assert.Equal(t, []interface{}{"T2", "u-1", "alice"}, store.lastValues)
}

func TestRepositorySaveRewritesFullRecord(t *testing.T) {
	store := &fakeStore{}
	repo := NewCassandraRepository(store)

	u := &User{
		ID:            "u-1",
		Username:      "alice",
		Name:          "Alice",
		LikedProjects: []string{"p-1"},
		AuthToken:     "T1",
	}
	require.NoError(t, repo.Save(context.Background(), u))
	for _, col := range []string{"name", "schedules", "liked_projects", "personal_projects", "auth_token", "created_at"} {
		assert.True(t, strings.Contains(store.lastStmt, col), "statement missing column %s", col)
	}
	// Both partition key columns must appear in the WHERE clause.
	assert.Contains(t, store.lastStmt, "WHERE id = ? AND username = ?")
}

func TestRepositoryListIdentities(t *testing.T) {
	store := &fakeStore{queryRows: []cassandra.Row{
		{"id": "id-1", "username": "alice"},
		{"id": "id-2", "username": "bob"},
	}}
	repo := NewCassandraRepository(store)

	ids, err := repo.ListIdentities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Identity{{ID: "id-1", Username: "alice"}, {ID: "id-2", Username: "bob"}}, ids)
}
