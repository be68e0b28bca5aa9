// Package services implements the client side of the lyrics extraction API.
//
// # Lyrics Client
//
// [LyricsClient] is the single operation the UI depends on. [LyricsService] implements it with one
// JSON POST per call to the extraction endpoint:
//
//	POST https://lyrics-s7ko.onrender.com/api/extract
//	{"youtube_url": "<source url>"}
//
// There is no retry and no client-side timeout; cancellation comes only from the caller's context.
//
// # Raw API
//
// [APIService] performs raw GET/POST requests and reports status, headers and (when parseable) JSON.
// [LyricsService] builds on it, and the CLI uses it directly to probe the API root.
//
// # Error Handling
//
// Failures are wrapped with sentinel errors from the shared package:
//   - [shared.ErrAPIRequest] : transport failure or non-2xx status
//   - [shared.ErrInvalidResponse] : body that does not decode as a lyrics response
//
// The UI does not distinguish between them.
package services
