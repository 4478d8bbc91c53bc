// File: internal/project/service_test.go
package project

import (
	"context"
	"testing"

	"gitmeet_backend/internal/common"
	"gitmeet_backend/internal/github"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockGateway returns canned GitHub responses.
type mockGateway struct {
	meta      *github.RepoMetadata
	metaErr   error
	readme    string
	readmeErr error
}

func (m *mockGateway) GetRepository(ctx context.Context, token, owner, repo string) (*github.RepoMetadata, error) {
	return m.meta, m.metaErr
}

func (m *mockGateway) GetReadme(ctx context.Context, token, owner, repo, ref string) (string, error) {
	return m.readme, m.readmeErr
}

// mockProjectRepository is an in-memory Repository with write counters.
type mockProjectRepository struct {
	projects map[string]*Project

	insertCalls         int
	updateMetadataCalls int
	appendCalls         int
	deleteCalls         int
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{projects: make(map[string]*Project)}
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, common.ErrNotFound.WithDetails("Project not found with this ID.")
	}
	clone := *p
	return &clone, nil
}

func (m *mockProjectRepository) Insert(ctx context.Context, p *Project) error {
	m.insertCalls++
	clone := *p
	m.projects[p.ID] = &clone
	return nil
}

func (m *mockProjectRepository) UpdateMetadata(ctx context.Context, p *Project) error {
	m.updateMetadataCalls++
	existing, ok := m.projects[p.ID]
	if !ok {
		m.projects[p.ID] = p
		return nil
	}
	swipes := existing.Swipes
	clone := *p
	clone.Swipes = swipes
	m.projects[p.ID] = &clone
	return nil
}

func (m *mockProjectRepository) AppendSwipes(ctx context.Context, id string, swipes []SwipeRecord) error {
	m.appendCalls++
	if p, ok := m.projects[id]; ok {
		p.Swipes = append(p.Swipes, swipes...)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	delete(m.projects, id)
	return nil
}

func testMetadata() *github.RepoMetadata {
	return &github.RepoMetadata{
		RepoID:        "12345",
		FullName:      "alice/gitmeet",
		Name:          "gitmeet",
		Description:   "Tinder for open source",
		Topics:        []string{"go", "dating"},
		DefaultBranch: "main",
		HTMLURL:       "https://github.com/alice/gitmeet",
		OwnerLogin:    "alice",
	}
}

func newProjectTestService(repo Repository, gw Gateway) *Service {
	return NewService(repo, gw, zap.NewNop())
}

func TestCreateProjectFromGitHubMetadata(t *testing.T) {
	repo := newMockProjectRepository()
	gw := &mockGateway{meta: testMetadata(), readme: "# gitmeet"}
	svc := newProjectTestService(repo, gw)

	p, err := svc.Create(context.Background(), CreateProjectRequest{
		Auth: "T1", UserID: "u-1", Username: "alice", RepoName: "gitmeet",
		Lat: "47.6", Long: "-122.3",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "gitmeet", p.Name)
	assert.Equal(t, "alice", p.Author)
	assert.Equal(t, "# gitmeet", p.Readme)
	assert.Equal(t, "12345", p.RepoID)
	assert.Equal(t, []string{"go", "dating"}, p.Tags)
	assert.Empty(t, p.Swipes)
	assert.Equal(t, 1, repo.insertCalls)
}

func TestCreateProjectGatewayFailureWritesNothing(t *testing.T) {
	repo := newMockProjectRepository()
	gw := &mockGateway{metaErr: common.ErrNotFound.WithDetails("Repository not found.")}
	svc := newProjectTestService(repo, gw)

	_, err := svc.Create(context.Background(), CreateProjectRequest{
		Auth: "T1", UserID: "u-1", Username: "alice", RepoName: "gone",
		Lat: "0", Long: "0",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 0, repo.insertCalls)
}

func TestRefreshProjectKeepsIDAndSwipes(t *testing.T) {
	repo := newMockProjectRepository()
	repo.projects["p-1"] = &Project{
		ID:     "p-1",
		Name:   "old-name",
		Swipes: []SwipeRecord{{SwipedBy: "u-9", Liked: true}},
	}
	gw := &mockGateway{meta: testMetadata(), readme: "# updated"}
	svc := newProjectTestService(repo, gw)

	p, err := svc.Refresh(context.Background(), "p-1", RefreshProjectRequest{
		Auth: "T1", UserID: "u-1", Username: "alice", RepoName: "gitmeet",
		Lat: "47.6", Long: "-122.3",
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "gitmeet", p.Name)
	assert.Equal(t, "# updated", p.Readme)
	assert.Equal(t, 1, repo.updateMetadataCalls)

	stored := repo.projects["p-1"]
	assert.Equal(t, []SwipeRecord{{SwipedBy: "u-9", Liked: true}}, stored.Swipes)
}

func TestRefreshProjectReadmeFailureWritesNothing(t *testing.T) {
	repo := newMockProjectRepository()
	repo.projects["p-1"] = &Project{ID: "p-1", Name: "old-name"}
	gw := &mockGateway{meta: testMetadata(), readmeErr: common.ErrAccessDenied.WithDetails("Token rejected.")}
	svc := newProjectTestService(repo, gw)

	_, err := svc.Refresh(context.Background(), "p-1", RefreshProjectRequest{
		Auth: "bad", UserID: "u-1", Username: "alice", RepoName: "gitmeet",
		Lat: "0", Long: "0",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAccessDenied)
	assert.Equal(t, 0, repo.updateMetadataCalls)
	assert.Equal(t, "old-name", repo.projects["p-1"].Name)
}

func TestSwipeAppendsSingleRecord(t *testing.T) {
	repo := newMockProjectRepository()
	repo.projects["p-1"] = &Project{ID: "p-1"}
	svc := newProjectTestService(repo, &mockGateway{})
	ctx := context.Background()

	require.NoError(t, svc.Swipe(ctx, "p-1", "u-1", true))
	require.NoError(t, svc.Swipe(ctx, "p-1", "u-2", false))
	require.NoError(t, svc.Swipe(ctx, "p-1", "u-1", false))

	assert.Equal(t, 3, repo.appendCalls)
	assert.Equal(t, []SwipeRecord{
		{SwipedBy: "u-1", Liked: true},
		{SwipedBy: "u-2", Liked: false},
		{SwipedBy: "u-1", Liked: false},
	}, repo.projects["p-1"].Swipes)
}

func TestSwipeMissingProject(t *testing.T) {
	repo := newMockProjectRepository()
	svc := newProjectTestService(repo, &mockGateway{})

	err := svc.Swipe(context.Background(), "missing", "u-1", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 0, repo.appendCalls)
}

func TestDeleteProject(t *testing.T) {
	repo := newMockProjectRepository()
	repo.projects["p-1"] = &Project{ID: "p-1"}
	svc := newProjectTestService(repo, &mockGateway{})
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "p-1"))
	assert.Equal(t, 1, repo.deleteCalls)

	err := svc.Delete(ctx, "p-1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 1, repo.deleteCalls)
}
