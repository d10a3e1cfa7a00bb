package queue

import (
	"context"
	"log"
)

// Service bundles the queue-facing operations the HTTP layer needs: snapshot
// reads, source reconciliation for the current track, flush, and play history.
type Service struct {
	player  Player
	playLog *PlayLogRepository
	logger  *log.Logger
}

// NewService creates a queue service.
func NewService(player Player, playLog *PlayLogRepository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{player: player, playLog: playLog, logger: logger}
}

// Player exposes the underlying device capability.
func (s *Service) Player() Player { return s.player }

// Snapshot reads the live queue.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return s.player.Queue(ctx)
}

// Current reports the playing track together with a freshly computed source
// verdict. The verdict is never cached across calls.
func (s *Service) Current(ctx context.Context) (NowPlaying, Verdict, error) {
	current, err := s.player.NowPlaying(ctx)
	if err != nil {
		return NowPlaying{}, Verdict{}, err
	}
	snapshot, err := s.player.Queue(ctx)
	if err != nil {
		// No snapshot means no content to reconcile against; report external.
		s.logger.Printf("queue snapshot unavailable for source check: %v", err)
		return current, Verdict{Type: SourceExternal, Track: Descriptor{Title: current.Title, Artist: current.Artist}}, nil
	}
	return current, ResolveSource(current, snapshot), nil
}

// Flush clears the device queue.
func (s *Service) Flush(ctx context.Context) error {
	return s.player.Flush(ctx)
}

// History returns the most recent play log entries.
func (s *Service) History(limit int) ([]PlayEntry, error) {
	return s.playLog.Recent(limit)
}

// RecordCommits appends every queued track of a commit to the play log.
func (s *Service) RecordCommits(result CommitResult, query string) {
	if s.playLog == nil {
		return
	}
	for _, track := range result.Queued {
		if err := s.playLog.Append(track.URI, track.Name, track.Artist, query); err != nil {
			s.logger.Printf("play log append failed for %q: %v", track.Name, err)
		}
	}
}
