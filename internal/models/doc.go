// Package models defines the wire types exchanged with the lyrics extraction API.
//
//   - [LyricsRequest] : the source video URL posted to the API
//   - [LyricsResponse] : lyrics text plus [Metadata] describing the song
//
// [Metadata.Thumbnail] is optional; a nil pointer means the API did not send one.
package models
