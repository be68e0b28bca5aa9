// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"

	"github.com/desertthunder/lyrx/internal/models"
)

// MockLyricsClient is a test double for [services.LyricsClient]
//
// It returns Response/Err for every call and records the URLs it was asked for.
type MockLyricsClient struct {
	Response *models.LyricsResponse
	Err      error

	mu    sync.Mutex
	calls []string
}

func (m *MockLyricsClient) GetLyrics(ctx context.Context, sourceURL string) (*models.LyricsResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, sourceURL)
	m.mu.Unlock()
	return m.Response, m.Err
}

// Calls returns the source URLs requested so far.
func (m *MockLyricsClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockClipboard records clipboard writes; Err makes every write fail.
type MockClipboard struct {
	Err    error
	writes []string
}

func (m *MockClipboard) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.writes = append(m.writes, text)
	return nil
}

// Writes returns the texts written so far.
func (m *MockClipboard) Writes() []string {
	return m.writes
}

// NewLyricsResponse builds a successful response with the given fields.
func NewLyricsResponse(lyrics, title, artist string) *models.LyricsResponse {
	return &models.LyricsResponse{
		Status:   "ok",
		Lyrics:   lyrics,
		Metadata: models.Metadata{Title: title, Artist: artist},
	}
}

// LyricsServer is an httptest server that answers the extraction endpoint with a fixed status and body.
type LyricsServer struct {
	*httptest.Server
	requests atomic.Int32
}

// NewLyricsServer starts a server replying with status and body to every request.
func NewLyricsServer(status int, body string) *LyricsServer {
	s := &LyricsServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	return s
}

// Requests returns the number of requests received.
func (s *LyricsServer) Requests() int {
	return int(s.requests.Load())
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
