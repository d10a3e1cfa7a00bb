package resolve

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatdj/internal/catalog"
)

func TestSplitCounts_SumsToTotal(t *testing.T) {
	for total := 0; total <= 20; total++ {
		for pct := 0; pct <= 100; pct += 5 {
			t.Run(fmt.Sprintf("total=%d pct=%d", total, pct), func(t *testing.T) {
				split := SplitCounts(total, pct)
				assert.Equal(t, total, split.MainCount+split.ThemeCount)
				assert.GreaterOrEqual(t, split.MainCount, 0)
				assert.GreaterOrEqual(t, split.ThemeCount, 0)
			})
		}
	}
}

func TestSplitCounts_RoundingFavorsTheme(t *testing.T) {
	// 25% of 10 is exactly 2.5 rounded up.
	split := SplitCounts(10, 25)
	assert.Equal(t, 3, split.ThemeCount)
	assert.Equal(t, 7, split.MainCount)

	// 1% of 10 still yields one theme slot.
	split = SplitCounts(10, 1)
	assert.Equal(t, 1, split.ThemeCount)
}

func TestSplitCounts_Extremes(t *testing.T) {
	assert.Equal(t, ThemeSplit{MainCount: 8, ThemeCount: 0}, SplitCounts(8, 0))
	assert.Equal(t, ThemeSplit{MainCount: 0, ThemeCount: 8}, SplitCounts(8, 100))
}

func TestMix_InterleavesEvenly(t *testing.T) {
	main := makeTracks("m", 6)
	theme := makeTracks("t", 2)

	mixed := Mix(main, theme, 8)

	names := trackNames(mixed)
	assert.Equal(t, []string{"m1", "m2", "t1", "m3", "m4", "t2", "m5", "m6"}, names)
}

func TestMix_EmptyThemeReturnsMainOnly(t *testing.T) {
	main := makeTracks("m", 5)

	mixed := Mix(main, nil, 3)

	assert.Equal(t, []string{"m1", "m2", "m3"}, trackNames(mixed))
}

func TestMix_ThemeHeavy(t *testing.T) {
	main := makeTracks("m", 2)
	theme := makeTracks("t", 4)

	mixed := Mix(main, theme, 6)

	// Interval clamps to 1: alternate while main lasts, then drain theme.
	assert.Equal(t, []string{"m1", "t1", "m2", "t2", "t3", "t4"}, trackNames(mixed))
}

func TestMix_StopsAtRequestedTotal(t *testing.T) {
	mixed := Mix(makeTracks("m", 10), makeTracks("t", 5), 4)
	assert.Len(t, mixed, 4)
}

func TestMix_ShortSupplyReturnsWhatExists(t *testing.T) {
	mixed := Mix(makeTracks("m", 2), makeTracks("t", 1), 10)
	require.Len(t, mixed, 3)
	assert.ElementsMatch(t, []string{"m1", "m2", "t1"}, trackNames(mixed))
}

func TestMix_ZeroTotal(t *testing.T) {
	assert.Empty(t, Mix(makeTracks("m", 3), makeTracks("t", 3), 0))
}

func makeTracks(prefix string, n int) []catalog.Track {
	tracks := make([]catalog.Track, n)
	for i := range tracks {
		tracks[i] = catalog.Track{
			Name:   fmt.Sprintf("%s%d", prefix, i+1),
			Artist: "artist " + prefix,
			URI:    fmt.Sprintf("spotify:track:%s%d", prefix, i+1),
		}
	}
	return tracks
}

func trackNames(tracks []catalog.Track) []string {
	names := make([]string, len(tracks))
	for i, track := range tracks {
		names[i] = track.Name
	}
	return names
}
