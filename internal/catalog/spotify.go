package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// maxSearchLimit is the per-call result cap of the Spotify search API.
const maxSearchLimit = 50

// SpotifyCatalog implements Catalog against the Spotify Web API using the
// client-credentials flow. All calls go through a shared rate limiter.
type SpotifyCatalog struct {
	client  *spotify.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewSpotifyCatalog builds a Spotify-backed catalog. The token is fetched
// lazily on first use, so construction never touches the network.
func NewSpotifyCatalog(clientID, clientSecret string, rps float64, logger *log.Logger) (*SpotifyCatalog, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("spotify client credentials are required")
	}
	if logger == nil {
		logger = log.Default()
	}

	authConfig := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := authConfig.Client(context.Background())

	return &SpotifyCatalog{
		client:  spotify.New(httpClient, spotify.WithRetry(true)),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger,
	}, nil
}

func (c *SpotifyCatalog) search(ctx context.Context, query string, searchType spotify.SearchType, limit int) (*spotify.SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if limit < 1 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return c.client.Search(ctx, query, searchType, spotify.Limit(limit))
}

// SearchTracks searches the catalog for tracks.
func (c *SpotifyCatalog) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	result, err := c.search(ctx, query, spotify.SearchTypeTrack, limit)
	if err != nil {
		return nil, fmt.Errorf("spotify track search: %w", err)
	}
	if result.Tracks == nil {
		return nil, nil
	}
	tracks := make([]Track, 0, len(result.Tracks.Tracks))
	for _, full := range result.Tracks.Tracks {
		tracks = append(tracks, trackFromFull(full))
	}
	return tracks, nil
}

// SearchAlbums searches the catalog for albums.
func (c *SpotifyCatalog) SearchAlbums(ctx context.Context, query string, limit int) ([]Album, error) {
	result, err := c.search(ctx, query, spotify.SearchTypeAlbum, limit)
	if err != nil {
		return nil, fmt.Errorf("spotify album search: %w", err)
	}
	if result.Albums == nil {
		return nil, nil
	}
	albums := make([]Album, 0, len(result.Albums.Albums))
	for _, album := range result.Albums.Albums {
		albums = append(albums, Album{
			Name:   album.Name,
			Artist: joinArtists(album.Artists),
			URI:    string(album.URI),
		})
	}
	return albums, nil
}

// SearchPlaylists searches the catalog for playlists. The search endpoint does
// not return follower counts, so Followers stays zero for this backend.
func (c *SpotifyCatalog) SearchPlaylists(ctx context.Context, query string, limit int) ([]Playlist, error) {
	result, err := c.search(ctx, query, spotify.SearchTypePlaylist, limit)
	if err != nil {
		return nil, fmt.Errorf("spotify playlist search: %w", err)
	}
	if result.Playlists == nil {
		return nil, nil
	}
	playlists := make([]Playlist, 0, len(result.Playlists.Playlists))
	for _, playlist := range result.Playlists.Playlists {
		playlists = append(playlists, Playlist{
			Name:       playlist.Name,
			Owner:      playlist.Owner.DisplayName,
			URI:        string(playlist.URI),
			TrackCount: int(playlist.Tracks.Total),
		})
	}
	return playlists, nil
}

// AlbumTracks fetches the track list of an album by its spotify: URI.
func (c *SpotifyCatalog) AlbumTracks(ctx context.Context, uri string) ([]Track, error) {
	id, err := idFromURI(uri, "album")
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	page, err := c.client.GetAlbumTracks(ctx, id, spotify.Limit(maxSearchLimit))
	if err != nil {
		return nil, fmt.Errorf("spotify album tracks: %w", err)
	}
	tracks := make([]Track, 0, len(page.Tracks))
	for _, simple := range page.Tracks {
		tracks = append(tracks, Track{
			Name:        simple.Name,
			Artist:      joinArtists(simple.Artists),
			URI:         string(simple.URI),
			DurationSec: int((time.Duration(simple.Duration) * time.Millisecond).Seconds()),
		})
	}
	return tracks, nil
}

// PlaylistTracks fetches the track list of a playlist by its spotify: URI.
// Episode items are skipped; only music tracks can be queued.
func (c *SpotifyCatalog) PlaylistTracks(ctx context.Context, uri string) ([]Track, error) {
	id, err := idFromURI(uri, "playlist")
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	page, err := c.client.GetPlaylistItems(ctx, id, spotify.Limit(100))
	if err != nil {
		return nil, fmt.Errorf("spotify playlist tracks: %w", err)
	}
	tracks := make([]Track, 0, len(page.Items))
	for _, item := range page.Items {
		if item.Track.Track == nil {
			continue
		}
		tracks = append(tracks, trackFromFull(*item.Track.Track))
	}
	return tracks, nil
}

func trackFromFull(full spotify.FullTrack) Track {
	return Track{
		Name:        full.Name,
		Artist:      joinArtists(full.Artists),
		URI:         string(full.URI),
		Album:       full.Album.Name,
		Popularity:  int(full.Popularity),
		DurationSec: int((time.Duration(full.Duration) * time.Millisecond).Seconds()),
	}
}

func joinArtists(artists []spotify.SimpleArtist) string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		names = append(names, artist.Name)
	}
	return strings.Join(names, ", ")
}

// idFromURI extracts the ID from a "spotify:<kind>:<id>" URI.
func idFromURI(uri, kind string) (spotify.ID, error) {
	parts := strings.Split(uri, ":")
	if len(parts) != 3 || parts[0] != "spotify" || parts[1] != kind {
		return "", fmt.Errorf("not a spotify %s uri: %q", kind, uri)
	}
	return spotify.ID(parts[2]), nil
}
