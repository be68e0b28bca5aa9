// package services defines the lyrics extraction client
package services

import (
	"context"

	"github.com/desertthunder/lyrx/internal/models"
)

// LyricsClient retrieves lyrics for a source video URL.
type LyricsClient interface {
	// GetLyrics sends exactly one request for sourceURL.
	// Any failure (transport, status, decoding) is returned as an error.
	GetLyrics(ctx context.Context, sourceURL string) (*models.LyricsResponse, error)
}
