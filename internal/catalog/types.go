package catalog

import (
	"context"
	"regexp"
	"strings"
)

// Track is a single playable catalog record.
type Track struct {
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	URI         string `json:"uri"`
	Album       string `json:"album,omitempty"`
	Popularity  int    `json:"popularity,omitempty"`
	DurationSec int    `json:"duration_sec,omitempty"`
}

// Album is an album search result.
type Album struct {
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	URI        string `json:"uri"`
	Popularity int    `json:"popularity,omitempty"`
}

// Playlist is a playlist search result.
type Playlist struct {
	Name       string `json:"name"`
	Owner      string `json:"owner"`
	URI        string `json:"uri"`
	Followers  int    `json:"followers,omitempty"`
	TrackCount int    `json:"track_count,omitempty"`
}

// Catalog is the search capability consumed by the resolution pipeline.
// Implementations are assumed to cap results per call and to be unreliable
// per call; callers must tolerate and skip failures.
type Catalog interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]Track, error)
	SearchAlbums(ctx context.Context, query string, limit int) ([]Album, error)
	SearchPlaylists(ctx context.Context, query string, limit int) ([]Playlist, error)
	AlbumTracks(ctx context.Context, uri string) ([]Track, error)
	PlaylistTracks(ctx context.Context, uri string) ([]Track, error)
}

// Edition qualifiers the catalog appends to what a listener considers the same
// song. Dash-suffixed qualifiers ("Song - Remastered 2011"), parenthesized
// qualifiers ("Song (Live)"), and featured-artist credits are all stripped.
var (
	featPattern = regexp.MustCompile(`(?i)\s*[(\[](feat|featuring|ft|with)[.\s][^)\]]*[)\]]`)
	dashPattern = regexp.MustCompile(`(?i)\s+-\s+(\d{4}\s+)?(remaster(ed)?|live|mono|stereo|acoustic|demo|deluxe|single version|album version|radio edit|re-?recorded|edit|version|bonus track)\b.*$`)
	parenPattern = regexp.MustCompile(`(?i)\s*[(\[](\d{4}\s+)?(remaster(ed)?|live|mono|stereo|acoustic|demo|deluxe|single version|album version|radio edit|re-?recorded|bonus track)[^)\]]*[)\]]`)
)

// NormalizeTitle lower-cases a track name and strips trailing edition
// qualifiers so different catalog editions collapse to one logical song.
func NormalizeTitle(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = featPattern.ReplaceAllString(s, "")
	s = parenPattern.ReplaceAllString(s, "")
	s = dashPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// TrackKey derives the identity key used by both the deduplicator and the
// live-queue duplicate guard. Keeping one shared function means the two can
// never silently diverge on what counts as "the same song".
func TrackKey(name, artist string) string {
	return NormalizeTitle(name) + "|" + strings.ToLower(strings.TrimSpace(artist))
}

// Key returns the track's identity key.
func (t Track) Key() string {
	return TrackKey(t.Name, t.Artist)
}
