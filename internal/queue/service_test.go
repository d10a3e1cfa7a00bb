package queue

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CurrentComputesFreshVerdict(t *testing.T) {
	player := &stubPlayer{
		now: NowPlaying{Title: "Second", Artist: "Act", QueuePosition: 2},
		snapshot: Snapshot{
			Items: []Item{
				{Position: 1, Title: "First", Artist: "Act"},
				{Position: 2, Title: "Second", Artist: "Act"},
			},
			Total: 2,
		},
	}
	service := NewService(player, nil, log.New(io.Discard, "", 0))

	current, verdict, err := service.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Second", current.Title)
	assert.Equal(t, SourceQueue, verdict.Type)
	assert.Equal(t, 2, verdict.Position)
}

func TestService_CurrentSnapshotFailureReportsExternal(t *testing.T) {
	player := &stubPlayer{
		now:         NowPlaying{Title: "Something", Artist: "Someone"},
		snapshotErr: errors.New("device busy"),
	}
	service := NewService(player, nil, log.New(io.Discard, "", 0))

	current, verdict, err := service.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Something", current.Title)
	assert.Equal(t, SourceExternal, verdict.Type)
	assert.Equal(t, "Something", verdict.Track.Title)
}

func TestService_RecordCommitsWithoutPlayLogIsNoOp(t *testing.T) {
	service := NewService(&stubPlayer{}, nil, log.New(io.Discard, "", 0))

	// Must not panic with a nil repository.
	service.RecordCommits(CommitResult{Queued: someTracks("a")}, "query")
}
