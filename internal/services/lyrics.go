package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// DefaultExtractPath is the extraction endpoint path on the API.
const DefaultExtractPath = "/api/extract"

var _ LyricsClient = (*LyricsService)(nil)

// LyricsService implements [LyricsClient] over the extraction API.
//
// It holds no mutable state and is shared by every page instance.
type LyricsService struct {
	api  *APIService
	path string
}

// NewLyricsService creates a lyrics client posting to baseURL+path.
//
// Empty values fall back to [DefaultBaseURL] and [DefaultExtractPath]; a nil client uses [http.DefaultClient].
func NewLyricsService(baseURL, path string, client *http.Client) *LyricsService {
	if path == "" {
		path = DefaultExtractPath
	}
	return &LyricsService{
		api:  NewAPIService(baseURL, client),
		path: path,
	}
}

// Endpoint returns the full URL lyrics are requested from.
func (s *LyricsService) Endpoint() string {
	return s.api.BaseURL() + s.path
}

// API exposes the underlying raw client.
func (s *LyricsService) API() *APIService {
	return s.api
}

// GetLyrics posts sourceURL to the extraction endpoint and decodes the response.
//
// The URL is sent as given; validating it is left to the API.
func (s *LyricsService) GetLyrics(ctx context.Context, sourceURL string) (*models.LyricsResponse, error) {
	body, err := json.Marshal(models.LyricsRequest{YouTubeURL: sourceURL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.api.Post(ctx, s.path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		return nil, fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	var lyrics models.LyricsResponse
	if err := json.Unmarshal(resp.Body, &lyrics); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidResponse, err)
	}

	return &lyrics, nil
}
