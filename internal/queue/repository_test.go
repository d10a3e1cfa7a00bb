package queue

import (
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatdj/internal/db"
)

func setupPlayLog(t *testing.T) *PlayLogRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	dbPair, err := db.Init(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { dbPair.Close() })

	return NewPlayLogRepository(dbPair)
}

func TestPlayLog_AppendAndRecent(t *testing.T) {
	repo := setupPlayLog(t)

	require.NoError(t, repo.Append("spotify:track:1", "First", "Act A", "disco"))
	require.NoError(t, repo.Append("spotify:track:2", "Second", "Act B", "disco"))

	entries, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "Second", entries[0].Title)
	assert.Equal(t, "Act B", entries[0].Artist)
	assert.Equal(t, "disco", entries[0].Query)
	assert.Equal(t, "spotify:track:2", entries[0].URI)
	assert.False(t, entries[0].QueuedAt.IsZero())
	assert.Equal(t, "First", entries[1].Title)
}

func TestPlayLog_RecentHonorsLimit(t *testing.T) {
	repo := setupPlayLog(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append("spotify:track:x", "Song", "Act", ""))
	}

	entries, err := repo.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestPlayLog_RecentEmptyLog(t *testing.T) {
	repo := setupPlayLog(t)

	entries, err := repo.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
