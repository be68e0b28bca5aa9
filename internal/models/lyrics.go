package models

// LyricsRequest is the JSON body posted to the extraction endpoint.
type LyricsRequest struct {
	YouTubeURL string `json:"youtube_url"`
}

// LyricsResponse is the JSON body returned by the extraction endpoint.
type LyricsResponse struct {
	Status   string   `json:"status"`
	Lyrics   string   `json:"lyrics"`
	Metadata Metadata `json:"metadata"`
}

// Metadata describes the song the lyrics belong to.
type Metadata struct {
	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// HasThumbnail reports whether the API sent a non-empty thumbnail URL.
func (m Metadata) HasThumbnail() bool {
	return m.Thumbnail != nil && *m.Thumbnail != ""
}

// ThumbnailURL returns the thumbnail URL or an empty string.
func (m Metadata) ThumbnailURL() string {
	if m.Thumbnail == nil {
		return ""
	}
	return *m.Thumbnail
}
