package resolve

import (
	"context"
	"log"
	"strings"

	"chatdj/internal/apperrors"
	"chatdj/internal/blacklist"
	"chatdj/internal/catalog"
	"chatdj/internal/config"
	"chatdj/internal/queue"
)

// Skip reasons surfaced per rejected track.
const (
	SkipReasonBlacklisted      = "blacklisted"
	SkipReasonDuplicate        = "duplicate"
	SkipReasonRegionRestricted = "region_restricted"
	SkipReasonDeviceRejected   = "device_rejected"
)

// Request asks for N tracks resolved and queued for a query, with optional
// theme mixing. ThemePercent nil means the configured default.
type Request struct {
	Query        string `json:"query"`
	Count        int    `json:"count"`
	Theme        string `json:"theme,omitempty"`
	ThemePercent *int   `json:"theme_percent,omitempty"`
}

// SkippedTrack reports one candidate that was not queued and why.
type SkippedTrack struct {
	Track         catalog.Track `json:"track"`
	Reason        string        `json:"reason"`
	QueuePosition int           `json:"queue_position,omitempty"` // duplicates: where the existing copy sits
}

// Result reports a resolve-and-queue operation.
type Result struct {
	Object     string          `json:"object"`
	Added      int             `json:"added"`
	Tracks     []catalog.Track `json:"tracks"`
	MainCount  int             `json:"main_count"`
	ThemeCount int             `json:"theme_count"`
	Query      string          `json:"query"`
	Boosters   []string        `json:"boosters,omitempty"`
	Skipped    []SkippedTrack  `json:"skipped,omitempty"`
}

// DryRunResult reports a resolution without any device write.
type DryRunResult struct {
	Object     string          `json:"object"`
	Query      string          `json:"query"`
	Boosters   []string        `json:"boosters,omitempty"`
	MainCount  int             `json:"main_count"`
	ThemeCount int             `json:"theme_count"`
	Tracks     []catalog.Track `json:"tracks"`
}

// BatchResult reports queuing an expanded album or playlist.
type BatchResult struct {
	Object  string          `json:"object"`
	Name    string          `json:"name"`
	Credit  string          `json:"credit,omitempty"` // album artist or playlist owner
	URI     string          `json:"uri"`
	Added   int             `json:"added"`
	Tracks  []catalog.Track `json:"tracks"`
	Skipped []SkippedTrack  `json:"skipped,omitempty"`
}

// BlacklistSource provides the persisted ban list. The pipeline reads a fresh
// list per operation and never memoizes it.
type BlacklistSource interface {
	Entries() ([]string, error)
}

// Service composes the resolution pipeline: boost, aggregate, dedupe, rank,
// mix, filter, guard, commit.
type Service struct {
	catalog      catalog.Catalog
	booster      *Booster
	aggregator   *Aggregator
	committer    *queue.Coordinator
	queueService *queue.Service
	blacklist    BlacklistSource
	defaultTheme string
	defaultPct   int
	resultCap    int
	logger       *log.Logger
}

// NewService creates the resolver service.
func NewService(cat catalog.Catalog, booster *Booster, aggregator *Aggregator, committer *queue.Coordinator, queueService *queue.Service, blacklistSource BlacklistSource, cfg config.Config, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		catalog:      cat,
		booster:      booster,
		aggregator:   aggregator,
		committer:    committer,
		queueService: queueService,
		blacklist:    blacklistSource,
		defaultTheme: cfg.DefaultTheme,
		defaultPct:   cfg.ThemePercentage,
		resultCap:    cfg.SearchResultCap,
		logger:       logger,
	}
}

// assembly is a fully mixed candidate list before policy filtering.
type assembly struct {
	tracks     []catalog.Track
	mainCount  int
	themeCount int
	query      string
	boosters   []string
}

func (s *Service) themeFor(req Request) (string, int) {
	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		theme = s.defaultTheme
	}
	pct := s.defaultPct
	if req.ThemePercent != nil {
		pct = *req.ThemePercent
	}
	return theme, pct
}

func (s *Service) assemble(ctx context.Context, req Request) (assembly, error) {
	boosted, applied := s.booster.Boost(req.Query)

	theme, pct := s.themeFor(req)
	split := SplitCounts(req.Count, pct)
	if theme == "" {
		split = ThemeSplit{MainCount: req.Count}
	}

	raw := s.aggregator.Search(ctx, boosted, split.MainCount)
	main := RankTracks(Dedupe(raw, nil), req.Query)
	if len(main) > split.MainCount {
		main = main[:split.MainCount]
	}

	var themeTracks []catalog.Track
	if split.ThemeCount > 0 {
		rawTheme := s.aggregator.Search(ctx, theme, split.ThemeCount)
		// Theme tracks stay disjoint from the main picks.
		themeTracks = RankTracks(Dedupe(rawTheme, Keys(main)), theme)
		if len(themeTracks) > split.ThemeCount {
			themeTracks = themeTracks[:split.ThemeCount]
		}
	}

	if len(main) == 0 && len(themeTracks) == 0 {
		return assembly{}, apperrors.NewNothingFoundError(req.Query)
	}

	return assembly{
		tracks:     Mix(main, themeTracks, req.Count),
		mainCount:  len(main),
		themeCount: len(themeTracks),
		query:      boosted,
		boosters:   applied,
	}, nil
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.Query) == "" {
		return apperrors.NewValidationError("query is required", nil)
	}
	if req.Count < 1 {
		return apperrors.NewValidationError("count must be at least 1", map[string]any{"count": req.Count})
	}
	if req.ThemePercent != nil && (*req.ThemePercent < 0 || *req.ThemePercent > 100) {
		return apperrors.NewValidationError("theme_percent must be in [0,100]", map[string]any{"theme_percent": *req.ThemePercent})
	}
	return nil
}

// Resolve runs the pipeline without touching the device.
func (s *Service) Resolve(ctx context.Context, req Request) (*DryRunResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	asm, err := s.assemble(ctx, req)
	if err != nil {
		return nil, err
	}
	return &DryRunResult{
		Object:     "resolution",
		Query:      asm.query,
		Boosters:   asm.boosters,
		MainCount:  asm.mainCount,
		ThemeCount: asm.themeCount,
		Tracks:     asm.tracks,
	}, nil
}

// ResolveAndQueue is the exposed high-level operation: resolve N tracks for a
// query with optional theme mixing, filter and guard them, and commit the
// remainder into the live device queue.
func (s *Service) ResolveAndQueue(ctx context.Context, req Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	asm, err := s.assemble(ctx, req)
	if err != nil {
		return nil, err
	}

	entries, err := s.blacklist.Entries()
	if err != nil {
		return nil, err
	}

	allowed, banned := blacklist.Partition(asm.tracks, entries)
	skipped := make([]SkippedTrack, 0, len(banned))
	for _, track := range banned {
		skipped = append(skipped, SkippedTrack{Track: track, Reason: SkipReasonBlacklisted})
	}
	if len(allowed) == 0 && len(banned) > 0 {
		return nil, apperrors.NewAllBannedError(len(banned))
	}

	fresh, duplicates := s.guardDuplicates(ctx, allowed)
	skipped = append(skipped, duplicates...)

	commit, err := s.committer.Commit(ctx, fresh)
	if err != nil {
		return nil, err
	}
	for _, failure := range commit.Failures {
		reason := SkipReasonDeviceRejected
		if failure.RegionRestricted {
			reason = SkipReasonRegionRestricted
		}
		skipped = append(skipped, SkippedTrack{Track: failure.Track, Reason: reason})
	}

	s.queueService.RecordCommits(commit, req.Query)

	return &Result{
		Object:     "queue_result",
		Added:      commit.Added,
		Tracks:     commit.Queued,
		MainCount:  asm.mainCount,
		ThemeCount: asm.themeCount,
		Query:      asm.query,
		Boosters:   asm.boosters,
		Skipped:    skipped,
	}, nil
}

// guardDuplicates drops candidates already present in the live queue. The
// snapshot is read once and is stale by the time the commit lands; duplicate
// suppression is best-effort by design. A failed snapshot read skips the
// guard rather than failing the operation.
func (s *Service) guardDuplicates(ctx context.Context, candidates []catalog.Track) ([]catalog.Track, []SkippedTrack) {
	snapshot, err := s.queueService.Snapshot(ctx)
	if err != nil {
		s.logger.Printf("queue snapshot unavailable, skipping duplicate guard: %v", err)
		return candidates, nil
	}

	fresh := make([]catalog.Track, 0, len(candidates))
	var skipped []SkippedTrack
	for _, candidate := range candidates {
		if position, dup := queue.FindDuplicate(candidate, snapshot); dup {
			skipped = append(skipped, SkippedTrack{
				Track:         candidate,
				Reason:        SkipReasonDuplicate,
				QueuePosition: position,
			})
			continue
		}
		fresh = append(fresh, candidate)
	}
	return fresh, skipped
}

// QueueAlbum picks the best-ranked album for the query, expands it, and
// queues the tracks that clear the blacklist.
func (s *Service) QueueAlbum(ctx context.Context, query string) (*BatchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidationError("query is required", nil)
	}

	albums, err := s.catalog.SearchAlbums(ctx, query, s.resultCap)
	if err != nil {
		s.logger.Printf("album search failed for %q: %v", query, err)
		return nil, apperrors.NewNothingFoundError(query)
	}
	if len(albums) == 0 {
		return nil, apperrors.NewNothingFoundError(query)
	}
	best := RankAlbums(albums, query)[0]

	tracks, err := s.catalog.AlbumTracks(ctx, best.URI)
	if err != nil {
		return nil, err
	}

	return s.commitBatch(ctx, "album_queue", best.Name, best.Artist, best.URI, tracks, query)
}

// QueuePlaylist picks the best-ranked playlist for the query, expands it, and
// queues the tracks that clear the blacklist.
func (s *Service) QueuePlaylist(ctx context.Context, query string) (*BatchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidationError("query is required", nil)
	}

	playlists, err := s.catalog.SearchPlaylists(ctx, query, s.resultCap)
	if err != nil {
		s.logger.Printf("playlist search failed for %q: %v", query, err)
		return nil, apperrors.NewNothingFoundError(query)
	}
	if len(playlists) == 0 {
		return nil, apperrors.NewNothingFoundError(query)
	}
	best := RankPlaylists(playlists, query)[0]

	tracks, err := s.catalog.PlaylistTracks(ctx, best.URI)
	if err != nil {
		return nil, err
	}

	return s.commitBatch(ctx, "playlist_queue", best.Name, best.Owner, best.URI, tracks, query)
}

func (s *Service) commitBatch(ctx context.Context, object, name, credit, uri string, tracks []catalog.Track, query string) (*BatchResult, error) {
	if len(tracks) == 0 {
		return nil, apperrors.NewNothingFoundError(query)
	}

	entries, err := s.blacklist.Entries()
	if err != nil {
		return nil, err
	}

	allowed, banned := blacklist.Partition(tracks, entries)
	// If every track of the batch is banned, nothing is queued and the batch
	// is rejected outright rather than silently queuing zero items.
	if len(allowed) == 0 {
		return nil, apperrors.NewAllBannedError(len(banned))
	}

	skipped := make([]SkippedTrack, 0, len(banned))
	for _, track := range banned {
		skipped = append(skipped, SkippedTrack{Track: track, Reason: SkipReasonBlacklisted})
	}

	commit, err := s.committer.Commit(ctx, allowed)
	if err != nil {
		return nil, err
	}
	for _, failure := range commit.Failures {
		reason := SkipReasonDeviceRejected
		if failure.RegionRestricted {
			reason = SkipReasonRegionRestricted
		}
		skipped = append(skipped, SkippedTrack{Track: failure.Track, Reason: reason})
	}

	s.queueService.RecordCommits(commit, query)

	return &BatchResult{
		Object:  object,
		Name:    name,
		Credit:  credit,
		URI:     uri,
		Added:   commit.Added,
		Tracks:  commit.Queued,
		Skipped: skipped,
	}, nil
}
