package soap

// TransportInfo mirrors the GetTransportInfo response.
type TransportInfo struct {
	CurrentTransportState  string
	CurrentTransportStatus string
}

// PositionInfo mirrors the GetPositionInfo response. Track is the device's
// own 1-based queue position bookkeeping; TrackMetaData carries DIDL-Lite.
type PositionInfo struct {
	Track         int
	TrackDuration string
	TrackMetaData string
	TrackURI      string
	RelTime       string
}

// QueueItem is one entry browsed from the device queue container.
type QueueItem struct {
	Title   string
	Creator string
	Res     string
}

// BrowseResult mirrors a ContentDirectory Browse response (subset).
type BrowseResult struct {
	Items          []QueueItem
	NumberReturned int
	TotalMatches   int
}
