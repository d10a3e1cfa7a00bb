package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func snapshotOf(items ...Item) Snapshot {
	return Snapshot{Items: items, Total: len(items)}
}

func TestResolveSource_TrustsReportedPosition(t *testing.T) {
	snapshot := snapshotOf(
		Item{Position: 1, Title: "First", Artist: "Act"},
		Item{Position: 2, Title: "Second", Artist: "Act"},
	)
	current := NowPlaying{Title: "Second", Artist: "Act", QueuePosition: 2}

	verdict := ResolveSource(current, snapshot)

	assert.Equal(t, SourceQueue, verdict.Type)
	assert.Equal(t, 2, verdict.Position)
	assert.False(t, verdict.PositionMismatch)
	assert.False(t, verdict.Fuzzy)
}

func TestResolveSource_RederivesPositionAfterReorder(t *testing.T) {
	// Device still reports position 1 but the queue was reordered.
	snapshot := snapshotOf(
		Item{Position: 1, Title: "Other", Artist: "Act"},
		Item{Position: 2, Title: "Playing Now", Artist: "Act"},
	)
	current := NowPlaying{Title: "Playing Now", Artist: "Act", QueuePosition: 1}

	verdict := ResolveSource(current, snapshot)

	assert.Equal(t, SourceQueue, verdict.Type)
	assert.Equal(t, 2, verdict.Position)
	assert.True(t, verdict.PositionMismatch)
	assert.False(t, verdict.Fuzzy)
}

func TestResolveSource_NormalizedIdentityMatch(t *testing.T) {
	// Remaster suffix differs between device report and queue entry.
	snapshot := snapshotOf(
		Item{Position: 1, Title: "Hotel California - Remastered", Artist: "Eagles"},
	)
	current := NowPlaying{Title: "Hotel California", Artist: "Eagles"}

	verdict := ResolveSource(current, snapshot)

	assert.Equal(t, SourceQueue, verdict.Type)
	assert.Equal(t, 1, verdict.Position)
}

func TestResolveSource_FuzzyMatch(t *testing.T) {
	// Exact keys differ (typo-level), similarity carries it.
	snapshot := snapshotOf(
		Item{Position: 4, Title: "Smells Like Teen Spirit", Artist: "Nirvana"},
	)
	current := NowPlaying{Title: "Smells Like Teen Spirits", Artist: "Nirvana"}

	verdict := ResolveSource(current, snapshot)

	assert.Equal(t, SourceQueue, verdict.Type)
	assert.Equal(t, 4, verdict.Position)
	assert.True(t, verdict.Fuzzy)
}

func TestResolveSource_External(t *testing.T) {
	snapshot := snapshotOf(
		Item{Position: 1, Title: "Queued Song", Artist: "Queued Act"},
	)
	current := NowPlaying{Title: "Radio Stream", Artist: "Some Station", QueuePosition: 1}

	verdict := ResolveSource(current, snapshot)

	assert.Equal(t, SourceExternal, verdict.Type)
	assert.Equal(t, "Radio Stream", verdict.Track.Title)
	assert.Zero(t, verdict.Position)
}

func TestResolveSource_EmptySnapshotIsExternal(t *testing.T) {
	current := NowPlaying{Title: "Anything", Artist: "Anyone", QueuePosition: 3}

	verdict := ResolveSource(current, Snapshot{})

	assert.Equal(t, SourceExternal, verdict.Type)
}

func TestResolveSource_OutOfRangePositionFallsBackToScan(t *testing.T) {
	snapshot := snapshotOf(
		Item{Position: 1, Title: "Playing Now", Artist: "Act"},
	)
	current := NowPlaying{Title: "Playing Now", Artist: "Act", QueuePosition: 9}

	verdict := ResolveSource(current, snapshot)

	assert.Equal(t, SourceQueue, verdict.Type)
	assert.Equal(t, 1, verdict.Position)
	assert.True(t, verdict.PositionMismatch)
}
