package queue

import "chatdj/internal/catalog"

// FindDuplicate checks a resolved candidate against a queue snapshot. A
// duplicate is any item with the candidate's URI, or with the same normalized
// (title, artist) identity — the catalog returns different URIs (regional
// variant, remaster) for what is musically the same entry.
//
// The snapshot is already stale by the time the caller acts on the answer;
// this is a best-effort judgement, not a guarantee.
func FindDuplicate(candidate catalog.Track, snapshot Snapshot) (int, bool) {
	key := candidate.Key()
	for _, item := range snapshot.Items {
		if item.URI != "" && item.URI == candidate.URI {
			return item.Position, true
		}
		if catalog.TrackKey(item.Title, item.Artist) == key {
			return item.Position, true
		}
	}
	return 0, false
}
