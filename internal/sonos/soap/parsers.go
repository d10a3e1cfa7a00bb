package soap

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

func parseTextValue(payload []byte, element string) string {
	decoder := xml.NewDecoder(bytes.NewReader(payload))
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local == element {
				var value string
				if err := decoder.DecodeElement(&value, &se); err == nil {
					return strings.TrimSpace(value)
				}
			}
		}
	}
	return ""
}

func parseTransportInfo(payload []byte) TransportInfo {
	return TransportInfo{
		CurrentTransportState:  parseTextValue(payload, "CurrentTransportState"),
		CurrentTransportStatus: parseTextValue(payload, "CurrentTransportStatus"),
	}
}

func parsePositionInfo(payload []byte) PositionInfo {
	track, _ := strconv.Atoi(parseTextValue(payload, "Track"))
	return PositionInfo{
		Track:         track,
		TrackDuration: parseTextValue(payload, "TrackDuration"),
		TrackMetaData: parseTextValue(payload, "TrackMetaData"),
		TrackURI:      parseTextValue(payload, "TrackURI"),
		RelTime:       parseTextValue(payload, "RelTime"),
	}
}

// didlLite is the unescaped DIDL-Lite document carried in Browse results and
// track metadata. Field tags match local names, so the dc:/upnp: prefixes in
// the wire form are irrelevant.
type didlLite struct {
	Items []didlItem `xml:"item"`
}

type didlItem struct {
	Title   string `xml:"title"`
	Creator string `xml:"creator"`
	Res     string `xml:"res"`
}

func parseBrowseResult(payload []byte) BrowseResult {
	numberReturned, _ := strconv.Atoi(parseTextValue(payload, "NumberReturned"))
	totalMatches, _ := strconv.Atoi(parseTextValue(payload, "TotalMatches"))

	result := BrowseResult{
		NumberReturned: numberReturned,
		TotalMatches:   totalMatches,
	}

	// The Result element carries XML-escaped DIDL-Lite; the text decode above
	// already unescaped it.
	didl := parseTextValue(payload, "Result")
	if didl == "" {
		return result
	}
	var doc didlLite
	if err := xml.Unmarshal([]byte(didl), &doc); err != nil {
		return result
	}
	for _, item := range doc.Items {
		result.Items = append(result.Items, QueueItem{
			Title:   item.Title,
			Creator: item.Creator,
			Res:     item.Res,
		})
	}
	return result
}

// ParseTrackMetadata extracts title and creator from a DIDL-Lite track
// metadata blob, as returned inside GetPositionInfo.
func ParseTrackMetadata(metadata string) (title, creator string) {
	if metadata == "" || metadata == "NOT_IMPLEMENTED" {
		return "", ""
	}
	return parseTextValue([]byte(metadata), "title"), parseTextValue([]byte(metadata), "creator")
}
