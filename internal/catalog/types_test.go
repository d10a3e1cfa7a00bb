package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle_StripsEditionQualifiers(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"remaster suffix", "Sweet Child O' Mine - Remastered 2011", "sweet child o' mine"},
		{"year-first remaster", "Thunderstruck - 2012 Remaster", "thunderstruck"},
		{"live suffix", "Comfortably Numb - Live", "comfortably numb"},
		{"parenthesized remaster", "Heroes (2017 Remastered)", "heroes"},
		{"feat credit", "Airplanes (feat. Hayley Williams)", "airplanes"},
		{"ft credit brackets", "Empire State of Mind [ft. Alicia Keys]", "empire state of mind"},
		{"radio edit", "Blue Monday - Radio Edit", "blue monday"},
		{"plain title untouched", "Bohemian Rhapsody", "bohemian rhapsody"},
		{"dash inside title kept", "Twenty-One", "twenty-one"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeTitle(tc.input))
		})
	}
}

func TestTrackKey_CollapsesEditions(t *testing.T) {
	a := TrackKey("Sweet Child O' Mine - Remastered 2011", "Guns N' Roses")
	b := TrackKey("Sweet Child O' Mine", "guns n' roses")
	assert.Equal(t, a, b)
}

func TestTrackKey_DistinguishesArtists(t *testing.T) {
	a := TrackKey("Hurt", "Nine Inch Nails")
	b := TrackKey("Hurt", "Johnny Cash")
	assert.NotEqual(t, a, b)
}

func TestTrackKey_MatchesTrackKeyMethod(t *testing.T) {
	track := Track{Name: "Yesterday (Remastered 2009)", Artist: "The Beatles"}
	assert.Equal(t, TrackKey(track.Name, track.Artist), track.Key())
}
