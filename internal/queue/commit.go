package queue

import (
	"context"
	"fmt"
	"log"
	"sync"

	"chatdj/internal/catalog"
)

// Coordinator commits resolved candidates into the live device queue.
//
// Decision table on device state:
//
//	stopped                 flush existing queue, then start playback
//	paused                  resume playback after queuing
//	playing/transitioning   queue only
type Coordinator struct {
	player Player
	logger *log.Logger
}

// NewCoordinator creates a commit coordinator.
func NewCoordinator(player Player, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{player: player, logger: logger}
}

// Commit queues every candidate independently and concurrently. A per-item
// device rejection (commonly a region restriction) is recorded and does not
// abort the remaining items. The returned error covers whole-operation
// problems only (device state unreadable, flush failed); partial failure is
// reported through CommitResult.
func (c *Coordinator) Commit(ctx context.Context, candidates []catalog.Track) (CommitResult, error) {
	result := CommitResult{}
	if len(candidates) == 0 {
		return result, nil
	}

	state, err := c.player.State(ctx)
	if err != nil {
		return result, fmt.Errorf("read device state: %w", err)
	}

	if state == PlayStateStopped {
		if err := c.player.Flush(ctx); err != nil {
			return result, fmt.Errorf("flush queue: %w", err)
		}
	}

	// Fire all enqueues concurrently and settle. Device-side ordering of the
	// batch's own items may jitter; every accepted item lands exactly once.
	errs := make([]error, len(candidates))
	var wg sync.WaitGroup
	for i, track := range candidates {
		wg.Add(1)
		go func(idx int, track catalog.Track) {
			defer wg.Done()
			_, err := c.player.Enqueue(ctx, track)
			errs[idx] = err
		}(i, track)
	}
	wg.Wait()

	for i, track := range candidates {
		if errs[i] == nil {
			result.Added++
			result.Queued = append(result.Queued, track)
			continue
		}
		failure := CommitFailure{
			Track:            track,
			Reason:           errs[i].Error(),
			RegionRestricted: IsRegionRestricted(errs[i]),
		}
		c.logger.Printf("enqueue rejected %q by %q: %v", track.Name, track.Artist, errs[i])
		result.Failures = append(result.Failures, failure)
	}

	switch state {
	case PlayStateStopped, PlayStatePaused:
		if result.Added > 0 {
			if err := c.player.Play(ctx); err != nil {
				c.logger.Printf("start playback after commit: %v", err)
			}
		}
	}

	return result, nil
}
