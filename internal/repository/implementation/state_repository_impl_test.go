package implementation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/internal/entity"
)

func newTestRepo(t *testing.T) (path string, repo *fileStateRepository) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "state.json")
	return path, &fileStateRepository{path: path}
}

func TestLoadMissingFileReturnsFreshState(t *testing.T) {
	_, repo := newTestRepo(t)

	state, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Empty(t, state.Sessions)
}

func TestUpdatePersistsAndRoundTrips(t *testing.T) {
	path, repo := newTestRepo(t)

	entry := entity.HistoryEntry{
		Id:        uuid.New(),
		Timestamp: "2026-01-15T10:30:00Z",
		Query:     "what is retrieval",
		Docs: []entity.DocumentRef{
			{Id: "doc1", Title: "Doc One", Url: "https://example.com/one"},
			{Id: "doc2", Title: "Doc Two"},
		},
		Summary: "a **bold** summary",
		Plan:    &entity.Plan{Plan: "1. read 2. write 3. ship"},
		Mode:    "retrieval",
		User:    entity.UserMeta{Name: "alice"},
	}

	_, err := repo.Update(func(state *entity.State) error {
		session := state.SessionFor("alice")
		session.UserName = "alice"
		session.History = append(session.History, entry)
		session.LastSummary = entry.Summary

		other := state.SessionFor("user1")
		other.History = append(other.History, entity.HistoryEntry{
			Id:        uuid.New(),
			Timestamp: "2026-01-15T10:31:00Z",
			Query:     "chat only",
			Docs:      []entity.DocumentRef{},
			Mode:      "chat",
			User:      entity.UserMeta{Name: "user1"},
		})
		return nil
	})
	require.NoError(t, err)

	// A fresh repository instance must see exactly what was written.
	reloaded, err := NewFileStateRepository(path).Load()
	require.NoError(t, err)
	require.Len(t, reloaded.Sessions, 2)

	session := reloaded.Sessions["alice"]
	require.NotNil(t, session)
	assert.Equal(t, "alice", session.UserName)
	assert.Equal(t, entry.Summary, session.LastSummary)
	require.Len(t, session.History, 1)
	assert.Equal(t, entry, session.History[0])

	require.NotNil(t, reloaded.Sessions["user1"])
	assert.Nil(t, reloaded.Sessions["user1"].History[0].Plan)
}

func TestUpdateAccumulatesAcrossCalls(t *testing.T) {
	_, repo := newTestRepo(t)

	for i := 0; i < 3; i++ {
		_, err := repo.Update(func(state *entity.State) error {
			session := state.SessionFor("user1")
			session.History = append(session.History, entity.HistoryEntry{
				Id:    uuid.New(),
				Query: "q",
				Docs:  []entity.DocumentRef{},
			})
			return nil
		})
		require.NoError(t, err)
	}

	state, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, state.Sessions["user1"].History, 3)
}

func TestUpdateMutateErrorDoesNotPersist(t *testing.T) {
	path, repo := newTestRepo(t)

	boom := errors.New("boom")
	_, err := repo.Update(func(state *entity.State) error {
		state.SessionFor("user1")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed update must not create the state file")
}

func TestLoadCorruptFile(t *testing.T) {
	path, repo := newTestRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repo.Load()
	assert.Error(t, err)
}
