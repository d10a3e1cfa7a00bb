package soap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transportInfoResponse = `<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <u:GetTransportInfoResponse xmlns:u="urn:schemas-upnp-org:service:AVTransport:1">
      <CurrentTransportState>PLAYING</CurrentTransportState>
      <CurrentTransportStatus>OK</CurrentTransportStatus>
      <CurrentSpeed>1</CurrentSpeed>
    </u:GetTransportInfoResponse>
  </s:Body>
</s:Envelope>`

func TestParseTransportInfo(t *testing.T) {
	info := parseTransportInfo([]byte(transportInfoResponse))

	assert.Equal(t, "PLAYING", info.CurrentTransportState)
	assert.Equal(t, "OK", info.CurrentTransportStatus)
}

const positionInfoResponse = `<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <u:GetPositionInfoResponse xmlns:u="urn:schemas-upnp-org:service:AVTransport:1">
      <Track>7</Track>
      <TrackDuration>0:03:51</TrackDuration>
      <TrackMetaData>&lt;DIDL-Lite xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns="urn:schemas-upnp-org:metadata-1-0/DIDL-Lite/"&gt;&lt;item&gt;&lt;dc:title&gt;Hotel California&lt;/dc:title&gt;&lt;dc:creator&gt;Eagles&lt;/dc:creator&gt;&lt;/item&gt;&lt;/DIDL-Lite&gt;</TrackMetaData>
      <TrackURI>x-sonos-spotify:spotify%3atrack%3aabc?sid=12</TrackURI>
      <RelTime>0:01:02</RelTime>
    </u:GetPositionInfoResponse>
  </s:Body>
</s:Envelope>`

func TestParsePositionInfo(t *testing.T) {
	info := parsePositionInfo([]byte(positionInfoResponse))

	assert.Equal(t, 7, info.Track)
	assert.Equal(t, "0:03:51", info.TrackDuration)
	assert.Equal(t, "x-sonos-spotify:spotify%3atrack%3aabc?sid=12", info.TrackURI)
	assert.Equal(t, "0:01:02", info.RelTime)

	title, creator := ParseTrackMetadata(info.TrackMetaData)
	assert.Equal(t, "Hotel California", title)
	assert.Equal(t, "Eagles", creator)
}

func TestParseTrackMetadata_NotImplemented(t *testing.T) {
	title, creator := ParseTrackMetadata("NOT_IMPLEMENTED")
	assert.Empty(t, title)
	assert.Empty(t, creator)

	title, creator = ParseTrackMetadata("")
	assert.Empty(t, title)
	assert.Empty(t, creator)
}

const browseResponse = `<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <u:BrowseResponse xmlns:u="urn:schemas-upnp-org:service:ContentDirectory:1">
      <Result>&lt;DIDL-Lite xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns="urn:schemas-upnp-org:metadata-1-0/DIDL-Lite/"&gt;&lt;item id="Q:0/1"&gt;&lt;dc:title&gt;First Song&lt;/dc:title&gt;&lt;dc:creator&gt;First Act&lt;/dc:creator&gt;&lt;res&gt;x-sonos-spotify:spotify%3atrack%3aone?sid=12&lt;/res&gt;&lt;/item&gt;&lt;item id="Q:0/2"&gt;&lt;dc:title&gt;Second Song&lt;/dc:title&gt;&lt;dc:creator&gt;Second Act&lt;/dc:creator&gt;&lt;res&gt;x-sonos-spotify:spotify%3atrack%3atwo?sid=12&lt;/res&gt;&lt;/item&gt;&lt;/DIDL-Lite&gt;</Result>
      <NumberReturned>2</NumberReturned>
      <TotalMatches>2</TotalMatches>
      <UpdateID>17</UpdateID>
    </u:BrowseResponse>
  </s:Body>
</s:Envelope>`

func TestParseBrowseResult(t *testing.T) {
	result := parseBrowseResult([]byte(browseResponse))

	assert.Equal(t, 2, result.NumberReturned)
	assert.Equal(t, 2, result.TotalMatches)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "First Song", result.Items[0].Title)
	assert.Equal(t, "First Act", result.Items[0].Creator)
	assert.Equal(t, "x-sonos-spotify:spotify%3atrack%3aone?sid=12", result.Items[0].Res)
	assert.Equal(t, "Second Song", result.Items[1].Title)
}

func TestParseBrowseResult_EmptyQueue(t *testing.T) {
	payload := `<Envelope><Body><BrowseResponse><Result></Result><NumberReturned>0</NumberReturned><TotalMatches>0</TotalMatches></BrowseResponse></Body></Envelope>`

	result := parseBrowseResult([]byte(payload))

	assert.Zero(t, result.NumberReturned)
	assert.Empty(t, result.Items)
}
