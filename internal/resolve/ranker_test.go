package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatdj/internal/catalog"
)

func TestRankTracks_ArtistAndTitleBeatLookalike(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Bohemian Rhapsody", Artist: "Bohemian Rhapsody Karaoke Crew", Popularity: 40},
		{Name: "Bohemian Rhapsody", Artist: "Queen", Popularity: 90},
	}

	ranked := RankTracks(tracks, "Bohemian Rhapsody by Queen")

	require.Len(t, ranked, 2)
	assert.Equal(t, "Queen", ranked[0].Artist)
}

func TestRankTracks_OriginalArtistBeatsCoverBand(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Yesterday", Artist: "Beatles Cover Band", Popularity: 10},
		{Name: "Yesterday", Artist: "The Beatles", Popularity: 90},
	}

	ranked := RankTracks(tracks, "beatles - yesterday")

	assert.Equal(t, "The Beatles", ranked[0].Artist)
}

func TestRankTracks_DashSegmentationArtistFirst(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Thunderstruck", Artist: "2Cellos", Popularity: 60},
		{Name: "Thunderstruck", Artist: "AC/DC", Popularity: 85},
	}

	// "artist - title" form.
	ranked := RankTracks(tracks, "AC/DC - Thunderstruck")

	assert.Equal(t, "AC/DC", ranked[0].Artist)
}

func TestRankTracks_TitleOnlyMatchOutranksArtistOnly(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Something Else", Artist: "Queen", Popularity: 95},
		{Name: "Bohemian Rhapsody", Artist: "Panic! At The Disco", Popularity: 50},
	}

	ranked := RankTracks(tracks, "Bohemian Rhapsody by Queen")

	// Title tier sits above artist tier regardless of popularity.
	assert.Equal(t, "Bohemian Rhapsody", ranked[0].Name)
}

func TestRankTracks_PopularityBreaksTies(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Yesterday", Artist: "The Beatles", Popularity: 70},
		{Name: "Yesterday", Artist: "The Beatles", Popularity: 88},
	}

	ranked := RankTracks(tracks, "Yesterday by The Beatles")

	assert.Equal(t, 88, ranked[0].Popularity)
}

func TestRankTracks_UnsegmentedWordScoring(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Purple Haze", Artist: "Jimi Hendrix", Popularity: 80},
		{Name: "Purple Rain", Artist: "Prince", Popularity: 85},
	}

	ranked := RankTracks(tracks, "purple rain")

	// Two title-word hits beat one, popularity notwithstanding.
	assert.Equal(t, "Purple Rain", ranked[0].Name)
}

func TestRankTracks_ShortWordsIgnoredOnArtistSide(t *testing.T) {
	// "the" is below the artist noise floor; only genuine words count.
	parsed := parseSearchTerm("let it be by the beatles")
	require.True(t, parsed.segmented)
	assert.NotContains(t, parsed.artistWords, "the")
	assert.Contains(t, parsed.artistWords, "beatles")
}

func TestParseSearchTerm_DashCheckedBeforeBy(t *testing.T) {
	parsed := parseSearchTerm("Stand by Me - Live")
	require.True(t, parsed.segmented)
	// The dash split wins, so the left side is treated as the artist.
	assert.Equal(t, []string{"stand"}, parsed.artistWords)
	assert.Equal(t, []string{"live"}, parsed.titleWords)
}

func TestParseSearchTerm_Unsegmented(t *testing.T) {
	parsed := parseSearchTerm("uptown funk")
	assert.False(t, parsed.segmented)
	assert.Equal(t, []string{"uptown", "funk"}, parsed.allWords)
}

func TestRankTracks_Deterministic(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "A", Artist: "X", Popularity: 10},
		{Name: "B", Artist: "Y", Popularity: 10},
		{Name: "C", Artist: "Z", Popularity: 10},
	}

	first := RankTracks(tracks, "nothing matches this")
	second := RankTracks(tracks, "nothing matches this")

	assert.Equal(t, first, second)
	// Full ties keep input order.
	assert.Equal(t, "A", first[0].Name)
}

func TestRankTracks_DoesNotMutateInput(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Low Pop", Artist: "X", Popularity: 1},
		{Name: "High Pop", Artist: "X", Popularity: 99},
	}

	RankTracks(tracks, "anything")

	assert.Equal(t, "Low Pop", tracks[0].Name)
}

func TestRankAlbums(t *testing.T) {
	albums := []catalog.Album{
		{Name: "Abbey Road Tribute", Artist: "Some Band", Popularity: 30},
		{Name: "Abbey Road", Artist: "The Beatles", Popularity: 90},
	}

	ranked := RankAlbums(albums, "Abbey Road by The Beatles")

	assert.Equal(t, "The Beatles", ranked[0].Artist)
}

func TestRankPlaylists_FollowersBreakTies(t *testing.T) {
	playlists := []catalog.Playlist{
		{Name: "Road Trip Hits", Owner: "alice", Followers: 120},
		{Name: "Road Trip Hits", Owner: "bob", Followers: 4000},
	}

	ranked := RankPlaylists(playlists, "road trip hits")

	assert.Equal(t, "bob", ranked[0].Owner)
}
