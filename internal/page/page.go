// Package page holds the state and operations of the lyrics page, independent of how it is rendered.
//
// A [Page] moves through idle → loading → success or error. Nothing guards against a second submission
// while one is in flight: each call to [Page.Start] yields its own request and whichever
// [Page.Complete] runs last determines what is displayed.
//
// A Page is not safe for concurrent use. The TUI drives it from bubbletea's Update loop and the web
// handler creates one per request.
package page

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/services"
)

// ErrFetchFailed is the only error message shown to users.
const ErrFetchFailed = "Failed to get lyrics. Please try another song."

// DefaultLanguage is the initial translation target.
const DefaultLanguage = "fr"

// Page is the lyrics page state.
type Page struct {
	URL              string
	Lyrics           string
	IsLoading        bool
	ErrorMessage     string
	SongInfo         *models.Metadata
	SelectedLang     string
	TranslatedLyrics string

	client    services.LyricsClient
	clipboard Clipboard
	logger    *log.Logger
}

// Option configures a [Page].
type Option func(*Page)

// WithLanguage sets the selected translation language; empty values are ignored.
func WithLanguage(lang string) Option {
	return func(p *Page) {
		if lang != "" {
			p.SelectedLang = lang
		}
	}
}

// New creates a page backed by the shared lyrics client.
//
// A nil clipboard falls back to [SystemClipboard]; a nil logger discards diagnostics.
func New(client services.LyricsClient, clip Clipboard, logger *log.Logger, opts ...Option) *Page {
	if clip == nil {
		clip = SystemClipboard{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Page{
		SelectedLang: DefaultLanguage,
		client:       client,
		clipboard:    clip,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start enters the loading state and returns the URL to request.
//
// With an empty URL it returns false and leaves the page untouched.
func (p *Page) Start() (string, bool) {
	if p.URL == "" {
		return "", false
	}

	p.IsLoading = true
	p.ErrorMessage = ""
	p.logger.Debug("fetching lyrics", "url", p.URL)
	return p.URL, true
}

// Complete applies the outcome of a request started with [Page.Start].
//
// On failure the previous lyrics stay in place and err is only logged.
func (p *Page) Complete(resp *models.LyricsResponse, err error) {
	p.IsLoading = false

	if err != nil || resp == nil {
		p.ErrorMessage = ErrFetchFailed
		p.logger.Error("failed to fetch lyrics", "error", err)
		return
	}

	metadata := resp.Metadata
	p.Lyrics = resp.Lyrics
	p.SongInfo = &metadata
}

// FetchLyrics performs one request for the current URL and applies the result.
func (p *Page) FetchLyrics(ctx context.Context) {
	url, ok := p.Start()
	if !ok {
		return
	}

	resp, err := p.client.GetLyrics(ctx, url)
	p.Complete(resp, err)
}

// Request returns a function performing the network call for url without touching page state.
//
// Used by UIs that run the call elsewhere and hand the result back to [Page.Complete].
func (p *Page) Request(ctx context.Context, url string) func() (*models.LyricsResponse, error) {
	return func() (*models.LyricsResponse, error) {
		return p.client.GetLyrics(ctx, url)
	}
}

// CopyLyrics writes the lyrics to the clipboard and reports whether a write was made.
//
// Nothing is copied when there are no lyrics. Clipboard errors are logged, never shown.
func (p *Page) CopyLyrics() bool {
	if p.Lyrics == "" {
		return false
	}

	if err := p.clipboard.WriteAll(p.Lyrics); err != nil {
		p.logger.Error("failed to copy lyrics", "error", err)
		return false
	}
	return true
}
