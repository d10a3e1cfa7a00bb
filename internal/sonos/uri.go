package sonos

import (
	"fmt"
	"net/url"
	"strings"
)

// Spotify direct-play constants for Sonos. The service ID is fixed per
// service; the SA_RINCON token is sid*256+7.
const (
	spotifySID       = 12
	spotifyToken     = 3079
	spotifyFlags     = 8224
	trackItemPrefix  = "00032020"
	musicTrackClass  = "object.item.audioItem.musicTrack"
	didlNamespaces   = `xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:upnp="urn:schemas-upnp-org:metadata-1-0/upnp/" xmlns:r="urn:schemas-rinconnetworks-com:metadata-1-0/" xmlns="urn:schemas-upnp-org:metadata-1-0/DIDL-Lite/"`
	rinconNamespace  = "urn:schemas-rinconnetworks-com:metadata-1-0/"
)

// trackURI converts a spotify:track: URI into the x-sonos-spotify transport
// URI the device accepts for queueing. accountSerial is the sn= value of the
// Spotify account registered on the device.
func trackURI(spotifyURI string, accountSerial int) string {
	encoded := url.QueryEscape(spotifyURI)
	// Sonos expects lowercase percent-encoding of the colons.
	encoded = strings.ReplaceAll(encoded, "%3A", "%3a")
	return fmt.Sprintf("x-sonos-spotify:%s?sid=%d&flags=%d&sn=%d", encoded, spotifySID, spotifyFlags, accountSerial)
}

// trackMetadata builds the minimal DIDL-Lite blob AddURIToQueue wants
// alongside the transport URI.
func trackMetadata(spotifyURI, title string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(spotifyURI), "%3A", "%3a")
	token := fmt.Sprintf("SA_RINCON%d_X_#Svc%d-0-Token", spotifyToken, spotifyToken)
	return fmt.Sprintf(
		`<DIDL-Lite %s><item id="%s%s" restricted="true"><dc:title>%s</dc:title><upnp:class>%s</upnp:class><desc id="cdudn" nameSpace="%s">%s</desc></item></DIDL-Lite>`,
		didlNamespaces, trackItemPrefix, encoded, escapeDIDL(title), musicTrackClass, rinconNamespace, token,
	)
}

func escapeDIDL(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
