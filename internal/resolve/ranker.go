package resolve

import (
	"sort"
	"strings"

	"chatdj/internal/catalog"
)

// Score tiers for segmented queries. The catalog already does fuzzy matching
// server-side; the ranker's only job is to re-order an already-relevant set
// so the result whose artist and title both match wins over lookalikes.
const (
	scoreBothMatch   = 10000
	scoreTitleMatch  = 5000
	scoreArtistMatch = 2000
	scoreTitleWord   = 1000
	scoreArtistWord  = 500
)

// Word-length noise floors. Short common words ("a", "to", "the") produce
// false positives, more so on the artist side.
const (
	minTitleWordLen  = 3
	minArtistWordLen = 4
)

// searchTerm is the segmented form of a user query.
type searchTerm struct {
	titleWords  []string
	artistWords []string
	segmented   bool
	allWords    []string
}

// parseSearchTerm detects an "<A> - <B>" or "<A> by <B>" segmentation in the
// lower-cased term, "-" checked before "by", first match wins. Which side is
// the artist depends on the separator: "artist - title" but "title by artist".
func parseSearchTerm(term string) searchTerm {
	lowered := strings.ToLower(term)
	parsed := searchTerm{allWords: strings.Fields(lowered)}

	var artistPart, titlePart string
	if idx := strings.Index(lowered, " - "); idx >= 0 {
		artistPart = lowered[:idx]
		titlePart = lowered[idx+3:]
		parsed.segmented = true
	} else if idx := strings.Index(lowered, " by "); idx >= 0 {
		titlePart = lowered[:idx]
		artistPart = lowered[idx+4:]
		parsed.segmented = true
	}

	if parsed.segmented {
		parsed.titleWords = filterWords(titlePart, minTitleWordLen)
		parsed.artistWords = filterWords(artistPart, minArtistWordLen)
	}
	return parsed
}

func filterWords(part string, minLen int) []string {
	words := strings.Fields(part)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) >= minLen {
			kept = append(kept, word)
		}
	}
	return kept
}

// score rates one candidate's lower-cased name and artist against the term.
func (t searchTerm) score(name, artist string) int {
	if t.segmented && len(t.titleWords) > 0 && len(t.artistWords) > 0 {
		artistHit := containsAll(artist, t.artistWords)
		titleHit := containsAll(name, t.titleWords)
		switch {
		case artistHit && titleHit:
			return scoreBothMatch
		case titleHit:
			return scoreTitleMatch
		case artistHit:
			return scoreArtistMatch
		default:
			return 0
		}
	}

	// No usable segmentation: every word of the term counts as a title word.
	// Artist hits score lower and only for longer words, to avoid false
	// positives from short common words.
	total := 0
	for _, word := range t.allWords {
		if strings.Contains(name, word) {
			total += scoreTitleWord
		}
		if len(word) >= minArtistWordLen && strings.Contains(artist, word) {
			total += scoreArtistWord
		}
	}
	return total
}

func containsAll(haystack string, words []string) bool {
	for _, word := range words {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}

// RankTracks orders tracks by descending relevance to the term, ties broken
// by descending popularity. Pure: identical inputs yield identical order.
func RankTracks(tracks []catalog.Track, term string) []catalog.Track {
	parsed := parseSearchTerm(term)
	ranked := make([]catalog.Track, len(tracks))
	copy(ranked, tracks)
	scores := make([]int, len(ranked))
	ties := make([]int, len(ranked))
	for i, track := range ranked {
		scores[i] = parsed.score(strings.ToLower(track.Name), strings.ToLower(track.Artist))
		ties[i] = track.Popularity
	}
	sort.Stable(&byScore{scores: scores, ties: ties, length: len(ranked), swapItems: func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}})
	return ranked
}

// RankAlbums orders albums the same way tracks are ranked.
func RankAlbums(albums []catalog.Album, term string) []catalog.Album {
	parsed := parseSearchTerm(term)
	ranked := make([]catalog.Album, len(albums))
	copy(ranked, albums)
	scores := make([]int, len(ranked))
	ties := make([]int, len(ranked))
	for i, album := range ranked {
		scores[i] = parsed.score(strings.ToLower(album.Name), strings.ToLower(album.Artist))
		ties[i] = album.Popularity
	}
	sort.Stable(&byScore{scores: scores, ties: ties, length: len(ranked), swapItems: func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}})
	return ranked
}

// RankPlaylists orders playlists; the owner name stands in for the artist
// field and follower count breaks ties.
func RankPlaylists(playlists []catalog.Playlist, term string) []catalog.Playlist {
	parsed := parseSearchTerm(term)
	ranked := make([]catalog.Playlist, len(playlists))
	copy(ranked, playlists)
	scores := make([]int, len(ranked))
	ties := make([]int, len(ranked))
	for i, playlist := range ranked {
		scores[i] = parsed.score(strings.ToLower(playlist.Name), strings.ToLower(playlist.Owner))
		ties[i] = playlist.Followers
	}
	sort.Stable(&byScore{scores: scores, ties: ties, length: len(ranked), swapItems: func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}})
	return ranked
}

// byScore sorts parallel slices by descending score, then descending
// tie-break value, keeping input order for full ties.
type byScore struct {
	scores    []int
	ties      []int
	length    int
	swapItems func(i, j int)
}

func (s *byScore) Len() int { return s.length }

func (s *byScore) Less(i, j int) bool {
	if s.scores[i] != s.scores[j] {
		return s.scores[i] > s.scores[j]
	}
	return s.ties[i] > s.ties[j]
}

func (s *byScore) Swap(i, j int) {
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
	s.ties[i], s.ties[j] = s.ties[j], s.ties[i]
	s.swapItems(i, j)
}
