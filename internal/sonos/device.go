package sonos

import (
	"context"
	"log"
	"strings"

	"chatdj/internal/catalog"
	"chatdj/internal/queue"
	"chatdj/internal/sonos/soap"
)

// maxQueueWindow bounds how much of the device queue one snapshot reads.
const maxQueueWindow = 400

// Device implements the playback capability against a single Sonos
// coordinator.
type Device struct {
	client        *soap.Client
	ip            string
	accountSerial int
	logger        *log.Logger
}

// NewDevice creates a device bound to one coordinator IP.
func NewDevice(client *soap.Client, ip string, accountSerial int, logger *log.Logger) *Device {
	if logger == nil {
		logger = log.Default()
	}
	if accountSerial < 1 {
		accountSerial = 1
	}
	return &Device{client: client, ip: ip, accountSerial: accountSerial, logger: logger}
}

// IP returns the coordinator address the device is bound to.
func (d *Device) IP() string { return d.ip }

// Queue reads a point-in-time snapshot of the device queue.
func (d *Device) Queue(ctx context.Context) (queue.Snapshot, error) {
	result, err := d.client.BrowseQueue(ctx, d.ip, 0, maxQueueWindow)
	if err != nil {
		return queue.Snapshot{}, err
	}
	items := make([]queue.Item, 0, len(result.Items))
	for i, item := range result.Items {
		items = append(items, queue.Item{
			Position: i + 1,
			Title:    item.Title,
			Artist:   item.Creator,
			URI:      item.Res,
		})
	}
	return queue.Snapshot{Items: items, Total: result.TotalMatches}, nil
}

// Enqueue appends a track to the end of the device queue.
func (d *Device) Enqueue(ctx context.Context, track catalog.Track) (int, error) {
	uri := track.URI
	metadata := ""
	if strings.HasPrefix(uri, "spotify:track:") {
		metadata = trackMetadata(uri, track.Name)
		uri = trackURI(uri, d.accountSerial)
	}
	return d.client.AddURIToQueue(ctx, d.ip, uri, metadata)
}

// State maps the device transport state onto the pipeline's play states.
func (d *Device) State(ctx context.Context) (queue.PlayState, error) {
	info, err := d.client.GetTransportInfo(ctx, d.ip)
	if err != nil {
		return "", err
	}
	switch info.CurrentTransportState {
	case "STOPPED":
		return queue.PlayStateStopped, nil
	case "PAUSED_PLAYBACK", "PAUSED_RECORDING":
		return queue.PlayStatePaused, nil
	case "TRANSITIONING":
		return queue.PlayStateTransitioning, nil
	default:
		return queue.PlayStatePlaying, nil
	}
}

// NowPlaying reports the current track from the device's position info.
func (d *Device) NowPlaying(ctx context.Context) (queue.NowPlaying, error) {
	info, err := d.client.GetPositionInfo(ctx, d.ip)
	if err != nil {
		return queue.NowPlaying{}, err
	}
	title, creator := soap.ParseTrackMetadata(info.TrackMetaData)
	return queue.NowPlaying{
		Title:         title,
		Artist:        creator,
		URI:           info.TrackURI,
		QueuePosition: info.Track,
	}, nil
}

// Play starts or resumes playback.
func (d *Device) Play(ctx context.Context) error {
	return d.client.Play(ctx, d.ip)
}

// Flush clears the device queue.
func (d *Device) Flush(ctx context.Context) error {
	return d.client.RemoveAllTracksFromQueue(ctx, d.ip)
}
