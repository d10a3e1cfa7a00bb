package blacklist

import (
	"strings"

	"chatdj/internal/catalog"
)

// IsBanned reports whether a track matches any blacklist entry. An entry
// matches when it is a substring of "{track} {artist}" or of the track name
// alone, case-insensitively.
func IsBanned(trackName, artistName string, entries []string) bool {
	full := strings.ToLower(trackName + " " + artistName)
	name := strings.ToLower(trackName)
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if strings.Contains(full, entry) || strings.Contains(name, entry) {
			return true
		}
	}
	return false
}

// Partition splits a track batch into allowed and banned halves, preserving
// order. Callers enforce the all-banned rule: a batch where allowed comes
// back empty while banned does not must be rejected outright rather than
// silently queuing zero items.
func Partition(tracks []catalog.Track, entries []string) (allowed, banned []catalog.Track) {
	for _, track := range tracks {
		if IsBanned(track.Name, track.Artist, entries) {
			banned = append(banned, track)
		} else {
			allowed = append(allowed, track)
		}
	}
	return allowed, banned
}
