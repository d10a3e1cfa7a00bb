package queue

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"chatdj/internal/catalog"
)

// fuzzyMatchThreshold is the Jaro-Winkler similarity above which a queue item
// is considered the same track as the device report despite differing tags.
const fuzzyMatchThreshold = 0.90

// ResolveSource decides whether the currently playing item originates from
// the managed queue or an external source. The device's own position field
// becomes unreliable the moment the queue is reordered or partially consumed
// out of band, so identity is re-derived from content when the position check
// fails. Steps in order, first success wins:
//
//  1. trust the device-reported position if the snapshot item there matches
//  2. exact content scan over the snapshot
//  3. similarity content scan (cosmetic tag differences: remaster suffixes,
//     feat. credits)
//
// Anything else is external.
func ResolveSource(current NowPlaying, snapshot Snapshot) Verdict {
	descriptor := Descriptor{Title: current.Title, Artist: current.Artist}
	key := catalog.TrackKey(current.Title, current.Artist)

	if pos := current.QueuePosition; pos >= 1 && pos <= len(snapshot.Items) {
		if catalog.TrackKey(snapshot.Items[pos-1].Title, snapshot.Items[pos-1].Artist) == key {
			return Verdict{Type: SourceQueue, Position: pos, Track: descriptor}
		}
	}

	for _, item := range snapshot.Items {
		if catalog.TrackKey(item.Title, item.Artist) == key {
			return Verdict{
				Type:             SourceQueue,
				Position:         item.Position,
				Track:            descriptor,
				PositionMismatch: true,
			}
		}
	}

	jaroWinkler := metrics.NewJaroWinkler()
	wanted := fuzzyDescriptor(current.Title, current.Artist)
	for _, item := range snapshot.Items {
		got := fuzzyDescriptor(item.Title, item.Artist)
		if strutil.Similarity(wanted, got, jaroWinkler) >= fuzzyMatchThreshold {
			return Verdict{
				Type:             SourceQueue,
				Position:         item.Position,
				Track:            descriptor,
				PositionMismatch: true,
				Fuzzy:            true,
			}
		}
	}

	return Verdict{Type: SourceExternal, Track: descriptor}
}

func fuzzyDescriptor(title, artist string) string {
	return strings.ToLower(strings.TrimSpace(title)) + " " + strings.ToLower(strings.TrimSpace(artist))
}
