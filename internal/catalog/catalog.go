// Package catalog holds the predefined media-channel entries served by the
// channel listing endpoint. The set is fixed at build time; there is no
// persistence and no mutation at runtime.
package catalog

import "strings"

// Channel is one predefined media-channel entry.
type Channel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	Logo      string `json:"logo,omitempty"`
	StreamURL string `json:"stream_url"`
}

var channels = []Channel{
	{
		ID:        "nasa-public",
		Name:      "NASA TV Public",
		Group:     "Science",
		Logo:      "https://upload.wikimedia.org/wikipedia/commons/e/e5/NASA_logo.svg",
		StreamURL: "https://ntv1.akamaized.net/hls/live/2014075/NASA-NTV1-HLS/master.m3u8",
	},
	{
		ID:        "nasa-media",
		Name:      "NASA TV Media",
		Group:     "Science",
		StreamURL: "https://ntv2.akamaized.net/hls/live/2013923/NASA-NTV2-HLS/master.m3u8",
	},
	{
		ID:        "red-bull-tv",
		Name:      "Red Bull TV",
		Group:     "Sports",
		StreamURL: "https://rbmn-live.akamaized.net/hls/live/590964/BoRB-AT/master.m3u8",
	},
	{
		ID:        "dw-english",
		Name:      "DW English",
		Group:     "News",
		StreamURL: "https://dwamdstream102.akamaized.net/hls/live/2015525/dwstream102/index.m3u8",
	},
	{
		ID:        "france24-en",
		Name:      "France 24 English",
		Group:     "News",
		StreamURL: "https://static.france24.com/live/F24_EN_LO_HLS/live_web.m3u8",
	},
	{
		ID:        "al-jazeera-en",
		Name:      "Al Jazeera English",
		Group:     "News",
		StreamURL: "https://live-hls-web-aje.getaj.net/AJE/index.m3u8",
	},
	{
		ID:        "bloomberg-us",
		Name:      "Bloomberg TV US",
		Group:     "Business",
		StreamURL: "https://bloomberg.com/media-manifest/streams/us.m3u8",
	},
	{
		ID:        "rakuten-action",
		Name:      "Rakuten Action Movies",
		Group:     "Movies",
		StreamURL: "https://rakuten-actionmovies-1-eu.rakuten.wurl.tv/playlist.m3u8",
	},
	{
		ID:        "fashion-tv",
		Name:      "Fashion TV",
		Group:     "Lifestyle",
		StreamURL: "https://fash1043.cloudycdn.services/slive/_definst_/ftv_ftv_midnite_k1y_27049_midnite_secr_108_hls.smil/playlist.m3u8",
	},
	{
		ID:        "classic-arts",
		Name:      "Classic Arts Showcase",
		Group:     "Music",
		StreamURL: "https://dykga36ven4dz.cloudfront.net/v1/master/3722c60a815c199d9c0ef36c5b73da68a62b09d1/cc-v5z6bxqid3dxv-prd/fast-channel-classic-arts-showcase/fast-channel-classic-arts-showcase.m3u8",
	},
}

// All returns every predefined channel.
func All() []Channel {
	return channels
}

// Filter returns the channels whose name or group contains query,
// case-insensitively. An empty query matches everything.
func Filter(query string) []Channel {
	if query == "" {
		return channels
	}

	q := strings.ToLower(query)
	var matched []Channel
	for _, ch := range channels {
		if strings.Contains(strings.ToLower(ch.Name), q) || strings.Contains(strings.ToLower(ch.Group), q) {
			matched = append(matched, ch)
		}
	}
	return matched
}
