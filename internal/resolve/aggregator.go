package resolve

import (
	"context"
	"fmt"
	"log"
	"time"

	"chatdj/internal/catalog"
)

// overFetchFactor controls how much raw material the aggregator gathers
// beyond the requested count. Catalog search is noisy and capped per call;
// over-fetching by 2x gives the deduplicator and ranker enough to work with
// without unbounded cost.
const overFetchFactor = 2

// Aggregator issues several query variants against the catalog and
// accumulates raw candidate records.
type Aggregator struct {
	catalog   catalog.Catalog
	resultCap int
	logger    *log.Logger
	now       func() time.Time
}

// NewAggregator creates a search aggregator. resultCap bounds the per-call
// result size requested from the catalog.
func NewAggregator(cat catalog.Catalog, resultCap int, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	if resultCap < 1 {
		resultCap = 50
	}
	return &Aggregator{catalog: cat, resultCap: resultCap, logger: logger, now: time.Now}
}

// variants generates the fixed query variant sequence: the bare query first,
// then progressively broader rewrites.
func (a *Aggregator) variants(query string) []string {
	return []string{
		query,
		fmt.Sprintf("%s %d", query, a.now().Year()),
		query + " classic",
		query + " best",
		query + " hits",
	}
}

// Search accumulates tracks across query variants, stopping early once the
// accumulated count reaches targetCount times the over-fetch factor. A
// failing variant is logged and skipped; it never aborts the aggregation.
// The result is empty only if every variant failed or returned nothing.
func (a *Aggregator) Search(ctx context.Context, query string, targetCount int) []catalog.Track {
	if targetCount < 1 {
		targetCount = 1
	}

	var accumulated []catalog.Track
	for _, variant := range a.variants(query) {
		if len(accumulated) >= targetCount*overFetchFactor {
			break
		}
		batch, err := a.catalog.SearchTracks(ctx, variant, a.resultCap)
		if err != nil {
			a.logger.Printf("search variant %q failed: %v", variant, err)
			continue
		}
		accumulated = append(accumulated, batch...)
	}
	return accumulated
}
