package resolve

import (
	"sort"

	"chatdj/internal/catalog"
)

// Dedupe collapses near-duplicate catalog records (same song, different
// edition) into a canonical set. Input is sorted by descending popularity, so
// of two records with equal identity only the more popular one survives.
// alreadySeen excludes keys claimed by a different result set; pass nil when
// there is none. Output preserves the popularity-descending order.
func Dedupe(tracks []catalog.Track, alreadySeen map[string]struct{}) []catalog.Track {
	sorted := make([]catalog.Track, len(tracks))
	copy(sorted, tracks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})

	claimed := make(map[string]struct{}, len(alreadySeen)+len(sorted))
	for key := range alreadySeen {
		claimed[key] = struct{}{}
	}

	out := make([]catalog.Track, 0, len(sorted))
	for _, track := range sorted {
		key := track.Key()
		if _, dup := claimed[key]; dup {
			continue
		}
		claimed[key] = struct{}{}
		out = append(out, track)
	}
	return out
}

// Keys returns the identity keys of a track list, for use as a later Dedupe
// call's alreadySeen set.
func Keys(tracks []catalog.Track) map[string]struct{} {
	keys := make(map[string]struct{}, len(tracks))
	for _, track := range tracks {
		keys[track.Key()] = struct{}{}
	}
	return keys
}
