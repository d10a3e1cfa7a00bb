package resolve

import "chatdj/internal/catalog"

// ThemeSplit apportions a requested total between main and theme tracks.
type ThemeSplit struct {
	MainCount  int `json:"main_count"`
	ThemeCount int `json:"theme_count"`
}

// SplitCounts derives a ThemeSplit from a requested total and a 0-100 theme
// percentage. MainCount + ThemeCount always equals total; rounding favors the
// theme count.
func SplitCounts(total, percentage int) ThemeSplit {
	if total < 0 {
		total = 0
	}
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	theme := (total*percentage + 99) / 100
	return ThemeSplit{MainCount: total - theme, ThemeCount: theme}
}

// Mix interleaves theme tracks into main tracks, emitting an interval of main
// tracks then one theme track, until requestedTotal items are emitted or both
// lists run out. Spreading theme content evenly makes a themed sprinkle feel
// woven in rather than bolted on at the end.
func Mix(mainTracks, themeTracks []catalog.Track, requestedTotal int) []catalog.Track {
	if requestedTotal <= 0 {
		return []catalog.Track{}
	}
	if len(themeTracks) == 0 {
		if len(mainTracks) > requestedTotal {
			mainTracks = mainTracks[:requestedTotal]
		}
		out := make([]catalog.Track, len(mainTracks))
		copy(out, mainTracks)
		return out
	}

	interval := len(mainTracks) / (len(themeTracks) + 1)
	if interval < 1 {
		interval = 1
	}

	out := make([]catalog.Track, 0, requestedTotal)
	mainIdx, themeIdx := 0, 0
	for len(out) < requestedTotal && (mainIdx < len(mainTracks) || themeIdx < len(themeTracks)) {
		for step := 0; step < interval && mainIdx < len(mainTracks) && len(out) < requestedTotal; step++ {
			out = append(out, mainTracks[mainIdx])
			mainIdx++
		}
		if themeIdx < len(themeTracks) && len(out) < requestedTotal {
			out = append(out, themeTracks[themeIdx])
			themeIdx++
		}
	}
	return out
}
