// File: internal/project/repository_test.go
package project

import (
	"context"
	"testing"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/platform/cassandra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records the last statement so tests can assert the exact CQL.
type fakeStore struct {
	queryRows []cassandra.Row

	lastStmt   string
	lastValues []interface{}
}

func (f *fakeStore) Query(ctx context.Context, stmt string, values ...interface{}) ([]cassandra.Row, error) {
	f.lastStmt = stmt
	f.lastValues = values
	return f.queryRows, nil
}

func (f *fakeStore) Exec(ctx context.Context, stmt string, values ...interface{}) error {
	f.lastStmt = stmt
	f.lastValues = values
	return nil
}

func (f *fakeStore) ExecCAS(ctx context.Context, stmt string, values ...interface{}) (bool, error) {
	f.lastStmt = stmt
	f.lastValues = values
	return true, nil
}

func TestRepositoryAppendSwipesUsesListAppend(t *testing.T) {
	store := &fakeStore{}
	repo := NewCassandraRepository(store)

	swipes := []SwipeRecord{{SwipedBy: "u-1", Liked: true}}
	require.NoError(t, repo.AppendSwipes(context.Background(), "p-1", swipes))
	assert.Contains(t, store.lastStmt, "swipes = swipes + ?")
	assert.Equal(t, []interface{}{swipes, "p-1"}, store.lastValues)
}

func TestRepositoryUpdateMetadataExcludesSwipes(t *testing.T) {
	store := &fakeStore{}
	repo := NewCassandraRepository(store)

	p := &Project{ID: "p-1", Name: "gitmeet", Author: "alice"}
	require.NoError(t, repo.UpdateMetadata(context.Background(), p))
	assert.NotContains(t, store.lastStmt, "swipes")
	assert.Contains(t, store.lastStmt, "name = ?")
	assert.Contains(t, store.lastStmt, "readme = ?")
}

func TestRepositoryFindByIDDecodesSwipes(t *testing.T) {
	store := &fakeStore{queryRows: []cassandra.Row{{
		"id":     "p-1",
		"name":   "gitmeet",
		"author": "alice",
		"tags":   []string{"go"},
		"swipes": []map[string]interface{}{
			{"swiped_by": "u-1", "liked": true},
			{"swiped_by": "u-2", "liked": false},
		},
	}}}
	repo := NewCassandraRepository(store)

	p, err := repo.FindByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "gitmeet", p.Name)
	assert.Equal(t, []SwipeRecord{
		{SwipedBy: "u-1", Liked: true},
		{SwipedBy: "u-2", Liked: false},
	}, p.Swipes)
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	repo := NewCassandraRepository(&fakeStore{})

	_, err := repo.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
