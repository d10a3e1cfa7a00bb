package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatdj/internal/catalog"
)

func TestDedupe_KeepsMostPopularEdition(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Sweet Child O' Mine - Remastered 2011", Artist: "Guns N' Roses", URI: "spotify:track:remaster", Popularity: 70},
		{Name: "Sweet Child O' Mine", Artist: "Guns N' Roses", URI: "spotify:track:original", Popularity: 85},
	}

	out := Dedupe(tracks, nil)

	require.Len(t, out, 1)
	assert.Equal(t, "spotify:track:original", out[0].URI)
}

func TestDedupe_PreservesDistinctTracks(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Hurt", Artist: "Nine Inch Nails", Popularity: 60},
		{Name: "Hurt", Artist: "Johnny Cash", Popularity: 80},
		{Name: "Closer", Artist: "Nine Inch Nails", Popularity: 70},
	}

	out := Dedupe(tracks, nil)

	require.Len(t, out, 3)
	// Popularity-descending order.
	assert.Equal(t, "Johnny Cash", out[0].Artist)
	assert.Equal(t, "Closer", out[1].Name)
}

func TestDedupe_Idempotent(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "Heroes (2017 Remastered)", Artist: "David Bowie", Popularity: 75},
		{Name: "Heroes", Artist: "David Bowie", Popularity: 80},
		{Name: "Life on Mars?", Artist: "David Bowie", Popularity: 78},
	}

	once := Dedupe(tracks, nil)
	twice := Dedupe(once, nil)

	assert.Equal(t, once, twice)
}

func TestDedupe_ExcludesAlreadySeenKeys(t *testing.T) {
	main := []catalog.Track{
		{Name: "Last Christmas", Artist: "Wham!", Popularity: 88},
	}
	theme := []catalog.Track{
		{Name: "Last Christmas - Remastered", Artist: "Wham!", Popularity: 70},
		{Name: "Fairytale of New York", Artist: "The Pogues", Popularity: 82},
	}

	out := Dedupe(theme, Keys(main))

	require.Len(t, out, 1)
	assert.Equal(t, "Fairytale of New York", out[0].Name)
}

func TestKeys(t *testing.T) {
	tracks := []catalog.Track{
		{Name: "One", Artist: "Metallica"},
		{Name: "One", Artist: "U2"},
	}
	keys := Keys(tracks)
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, catalog.TrackKey("One", "Metallica"))
}
