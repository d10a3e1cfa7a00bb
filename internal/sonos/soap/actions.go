package soap

import (
	"context"
	"strconv"
)

func (c *Client) GetTransportInfo(ctx context.Context, ip string) (TransportInfo, error) {
	payload, err := c.ExecuteAction(ctx, ip, ServiceAVTransport, "GetTransportInfo", map[string]string{
		"InstanceID": "0",
	})
	if err != nil {
		return TransportInfo{}, err
	}
	return parseTransportInfo(payload), nil
}

func (c *Client) GetPositionInfo(ctx context.Context, ip string) (PositionInfo, error) {
	payload, err := c.ExecuteAction(ctx, ip, ServiceAVTransport, "GetPositionInfo", map[string]string{
		"InstanceID": "0",
	})
	if err != nil {
		return PositionInfo{}, err
	}
	return parsePositionInfo(payload), nil
}

func (c *Client) Play(ctx context.Context, ip string) error {
	_, err := c.ExecuteAction(ctx, ip, ServiceAVTransport, "Play", map[string]string{
		"InstanceID": "0",
		"Speed":      "1",
	})
	return err
}

// AddURIToQueue appends a URI to the end of the device queue and returns the
// 1-based position it was enqueued at.
func (c *Client) AddURIToQueue(ctx context.Context, ip, uri, metadata string) (int, error) {
	payload, err := c.ExecuteAction(ctx, ip, ServiceAVTransport, "AddURIToQueue", map[string]string{
		"InstanceID":                      "0",
		"EnqueuedURI":                     uri,
		"EnqueuedURIMetaData":             metadata,
		"DesiredFirstTrackNumberEnqueued": "0",
		"EnqueueAsNext":                   "0",
	})
	if err != nil {
		return 0, err
	}
	position, _ := strconv.Atoi(parseTextValue(payload, "FirstTrackNumberEnqueued"))
	return position, nil
}

func (c *Client) RemoveAllTracksFromQueue(ctx context.Context, ip string) error {
	_, err := c.ExecuteAction(ctx, ip, ServiceAVTransport, "RemoveAllTracksFromQueue", map[string]string{
		"InstanceID": "0",
	})
	return err
}

// BrowseQueue reads a window of the device queue container (Q:0).
func (c *Client) BrowseQueue(ctx context.Context, ip string, startIndex, requestedCount int) (BrowseResult, error) {
	payload, err := c.ExecuteAction(ctx, ip, ServiceContentDirectory, "Browse", map[string]string{
		"ObjectID":       "Q:0",
		"BrowseFlag":     "BrowseDirectChildren",
		"Filter":         "dc:title,dc:creator,res",
		"StartingIndex":  strconv.Itoa(startIndex),
		"RequestedCount": strconv.Itoa(requestedCount),
		"SortCriteria":   "",
	})
	if err != nil {
		return BrowseResult{}, err
	}
	return parseBrowseResult(payload), nil
}
