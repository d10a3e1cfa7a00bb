package queue

import (
	"context"
	"errors"

	"chatdj/internal/catalog"
)

// PlayState is the device transport state.
type PlayState string

const (
	PlayStateStopped       PlayState = "stopped"
	PlayStatePaused        PlayState = "paused"
	PlayStatePlaying       PlayState = "playing"
	PlayStateTransitioning PlayState = "transitioning"
)

// Item is one entry of the externally-owned queue. The device exposes only
// position plus title/artist; there is no stable join key.
type Item struct {
	Position int    `json:"position"` // 1-based
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	URI      string `json:"uri,omitempty"`
}

// Snapshot is a point-in-time read of the device queue. It is borrowed and
// immediately stale: any decision made from it is best-effort, never a
// guarantee.
type Snapshot struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// NowPlaying describes the device's current track report. QueuePosition is
// the device's own 1-based bookkeeping and becomes unreliable the moment the
// queue is mutated out of band; zero means unknown.
type NowPlaying struct {
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	URI           string `json:"uri,omitempty"`
	QueuePosition int    `json:"queue_position,omitempty"`
}

// Player is the playback device capability consumed by this package.
type Player interface {
	Queue(ctx context.Context) (Snapshot, error)
	// Enqueue appends a track and returns the 1-based position it landed at.
	Enqueue(ctx context.Context, track catalog.Track) (int, error)
	State(ctx context.Context) (PlayState, error)
	NowPlaying(ctx context.Context) (NowPlaying, error)
	Play(ctx context.Context) error
	Flush(ctx context.Context) error
}

// SourceType tags where the currently playing item originates.
type SourceType string

const (
	SourceQueue    SourceType = "queue"
	SourceExternal SourceType = "external"
)

// Verdict is the outcome of source reconciliation. Computed fresh on every
// query and never cached: the underlying device state can change between the
// moment of computation and its use.
type Verdict struct {
	Type     SourceType `json:"type"`
	Position int        `json:"position,omitempty"` // 1-based, queue verdicts only
	Track    Descriptor `json:"track"`
	// PositionMismatch is set when the device-reported position did not match
	// and identity was re-derived by content scan.
	PositionMismatch bool `json:"position_mismatch,omitempty"`
	// Fuzzy is set when the content scan only matched by similarity.
	Fuzzy bool `json:"fuzzy,omitempty"`
}

// Descriptor identifies a track by content.
type Descriptor struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// CommitFailure records one track the device rejected during a batch commit.
type CommitFailure struct {
	Track            catalog.Track `json:"track"`
	Reason           string        `json:"reason"`
	RegionRestricted bool          `json:"region_restricted,omitempty"`
}

// CommitResult reports a batch commit. Per-item failures never abort the
// batch; the coordinator reports counts, not exceptions.
type CommitResult struct {
	Added    int             `json:"added"`
	Queued   []catalog.Track `json:"queued"`
	Failures []CommitFailure `json:"failures,omitempty"`
}

// RegionRestrictedReporter is implemented by device errors that can tell a
// market/region rejection apart from a generic one.
type RegionRestrictedReporter interface {
	RegionRestricted() bool
}

// IsRegionRestricted reports whether err is a device-side region rejection.
func IsRegionRestricted(err error) bool {
	var reporter RegionRestrictedReporter
	return errors.As(err, &reporter) && reporter.RegionRestricted()
}
