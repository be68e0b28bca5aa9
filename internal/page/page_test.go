package page

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
	tu "github.com/desertthunder/lyrx/internal/testing"
)

func TestPage(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("Defaults", func(t *testing.T) {
			p := New(&tu.MockLyricsClient{}, nil, nil)

			if p.SelectedLang != DefaultLanguage {
				t.Errorf("expected language %s, got %s", DefaultLanguage, p.SelectedLang)
			}
			if _, ok := p.clipboard.(SystemClipboard); !ok {
				t.Error("expected system clipboard by default")
			}
			if p.logger == nil {
				t.Error("expected a logger")
			}
			if p.IsLoading || p.ErrorMessage != "" || p.Lyrics != "" || p.SongInfo != nil || p.TranslatedLyrics != "" {
				t.Errorf("expected zero state, got %+v", p)
			}
		})

		t.Run("WithLanguage", func(t *testing.T) {
			if p := New(nil, nil, nil, WithLanguage("es")); p.SelectedLang != "es" {
				t.Errorf("expected es, got %s", p.SelectedLang)
			}
			if p := New(nil, nil, nil, WithLanguage("")); p.SelectedLang != DefaultLanguage {
				t.Errorf("expected empty language to be ignored, got %s", p.SelectedLang)
			}
		})
	})

	t.Run("FetchLyrics", func(t *testing.T) {
		t.Run("Empty URL Is A Silent No-Op", func(t *testing.T) {
			client := &tu.MockLyricsClient{Response: tu.NewLyricsResponse("x", "T", "A")}
			p := New(client, &tu.MockClipboard{}, nil)
			p.Lyrics = "previous"
			p.ErrorMessage = "previous error"

			p.FetchLyrics(context.Background())

			if len(client.Calls()) != 0 {
				t.Errorf("expected no request, got %v", client.Calls())
			}
			if p.IsLoading {
				t.Error("expected loading to stay false")
			}
			if p.Lyrics != "previous" || p.ErrorMessage != "previous error" {
				t.Errorf("expected state unchanged, got lyrics=%q error=%q", p.Lyrics, p.ErrorMessage)
			}
		})

		t.Run("Success", func(t *testing.T) {
			client := &tu.MockLyricsClient{Response: tu.NewLyricsResponse("La la la", "T", "A")}
			p := New(client, &tu.MockClipboard{}, nil)
			p.URL = "https://www.youtube.com/watch?v=abc"

			p.FetchLyrics(context.Background())

			if calls := client.Calls(); len(calls) != 1 || calls[0] != p.URL {
				t.Errorf("expected one call for the URL, got %v", calls)
			}
			if p.Lyrics != "La la la" {
				t.Errorf("expected lyrics 'La la la', got %q", p.Lyrics)
			}
			if p.SongInfo == nil || p.SongInfo.Title != "T" || p.SongInfo.Artist != "A" {
				t.Errorf("unexpected song info %+v", p.SongInfo)
			}
			if p.IsLoading {
				t.Error("expected loading to be false")
			}
			if p.ErrorMessage != "" {
				t.Errorf("expected no error, got %q", p.ErrorMessage)
			}
		})

		t.Run("Failure Keeps Previous Lyrics", func(t *testing.T) {
			var logs bytes.Buffer
			client := &tu.MockLyricsClient{Err: errors.New("network unreachable")}
			p := New(client, &tu.MockClipboard{}, shared.NewLogger(&logs))
			p.URL = "https://youtu.be/x"
			p.Lyrics = "old lyrics"

			p.FetchLyrics(context.Background())

			if p.ErrorMessage != ErrFetchFailed {
				t.Errorf("expected fixed error message, got %q", p.ErrorMessage)
			}
			if p.IsLoading {
				t.Error("expected loading to be false")
			}
			if p.Lyrics != "old lyrics" {
				t.Errorf("expected lyrics unchanged, got %q", p.Lyrics)
			}
			if strings.Contains(p.ErrorMessage, "network unreachable") {
				t.Error("underlying error must not reach the user")
			}
			if !strings.Contains(logs.String(), "network unreachable") {
				t.Errorf("expected underlying error to be logged, got %q", logs.String())
			}
		})

		t.Run("Failure Modes Share One Message", func(t *testing.T) {
			tc := []struct {
				name   string
				status int
				body   string
			}{
				{name: "client error", status: 400, body: `{"detail":"bad url"}`},
				{name: "server error", status: 500, body: `{"detail":"boom"}`},
				{name: "malformed body", status: 200, body: `not json`},
			}

			for _, tt := range tc {
				t.Run(tt.name, func(t *testing.T) {
					server := tu.NewLyricsServer(tt.status, tt.body)
					defer server.Close()

					p := New(services.NewLyricsService(server.URL, "", nil), &tu.MockClipboard{}, nil)
					p.URL = "https://youtu.be/x"
					p.FetchLyrics(context.Background())

					if p.ErrorMessage != ErrFetchFailed {
						t.Errorf("expected fixed error, got %q", p.ErrorMessage)
					}
					if server.Requests() != 1 {
						t.Errorf("expected exactly one request, got %d", server.Requests())
					}
				})
			}
		})

		t.Run("Success Clears Previous Error", func(t *testing.T) {
			client := &tu.MockLyricsClient{Err: errors.New("boom")}
			p := New(client, &tu.MockClipboard{}, nil)
			p.URL = "https://youtu.be/x"

			p.FetchLyrics(context.Background())
			if p.ErrorMessage == "" {
				t.Fatal("expected error after failure")
			}

			client.Err = nil
			client.Response = tu.NewLyricsResponse("now", "T", "A")
			p.FetchLyrics(context.Background())

			if p.ErrorMessage != "" {
				t.Errorf("expected error cleared, got %q", p.ErrorMessage)
			}
			if p.Lyrics != "now" {
				t.Errorf("expected new lyrics, got %q", p.Lyrics)
			}
		})

		t.Run("Thumbnail Is Optional", func(t *testing.T) {
			thumb := "https://i.ytimg.com/vi/abc/hqdefault.jpg"
			resp := tu.NewLyricsResponse("x", "T", "A")
			resp.Metadata.Thumbnail = &thumb

			p := New(&tu.MockLyricsClient{Response: resp}, &tu.MockClipboard{}, nil)
			p.URL = "u"
			p.FetchLyrics(context.Background())

			if p.SongInfo.ThumbnailURL() != thumb {
				t.Errorf("expected thumbnail %s, got %s", thumb, p.SongInfo.ThumbnailURL())
			}
		})
	})

	t.Run("Start", func(t *testing.T) {
		p := New(&tu.MockLyricsClient{}, &tu.MockClipboard{}, nil)
		p.URL = "https://youtu.be/x"
		p.ErrorMessage = ErrFetchFailed

		url, ok := p.Start()

		if !ok || url != "https://youtu.be/x" {
			t.Errorf("expected start to return the URL, got %q %v", url, ok)
		}
		if !p.IsLoading {
			t.Error("expected loading to be true")
		}
		if p.ErrorMessage != "" {
			t.Error("expected prior error to be cleared")
		}
	})

	t.Run("Overlapping Requests Last Resolved Wins", func(t *testing.T) {
		client := &tu.MockLyricsClient{}
		p := New(client, &tu.MockClipboard{}, nil)

		p.URL = "https://youtu.be/first"
		first, ok := p.Start()
		if !ok {
			t.Fatal("expected first start")
		}
		p.URL = "https://youtu.be/second"
		second, ok := p.Start()
		if !ok {
			t.Fatal("expected second start")
		}

		if first == second {
			t.Fatal("expected independent requests")
		}

		p.Complete(tu.NewLyricsResponse("second lyrics", "S", "B"), nil)
		if p.IsLoading {
			t.Error("expected loading cleared by the first resolution")
		}
		p.Complete(tu.NewLyricsResponse("first lyrics", "F", "A"), nil)

		if p.Lyrics != "first lyrics" || p.SongInfo.Title != "F" {
			t.Errorf("expected last resolved response to win, got %q / %+v", p.Lyrics, p.SongInfo)
		}
	})

	t.Run("Request Does Not Touch State", func(t *testing.T) {
		client := &tu.MockLyricsClient{Response: tu.NewLyricsResponse("x", "T", "A")}
		p := New(client, &tu.MockClipboard{}, nil)

		resp, err := p.Request(context.Background(), "https://youtu.be/x")()

		if err != nil || resp.Lyrics != "x" {
			t.Errorf("unexpected result %+v %v", resp, err)
		}
		if p.Lyrics != "" || p.IsLoading {
			t.Error("expected page state untouched")
		}
		if calls := client.Calls(); len(calls) != 1 || calls[0] != "https://youtu.be/x" {
			t.Errorf("expected one call, got %v", calls)
		}
	})

	t.Run("CopyLyrics", func(t *testing.T) {
		t.Run("Empty Lyrics Does Not Write", func(t *testing.T) {
			clip := &tu.MockClipboard{}
			p := New(&tu.MockLyricsClient{}, clip, nil)

			if p.CopyLyrics() {
				t.Error("expected no copy")
			}
			if len(clip.Writes()) != 0 {
				t.Errorf("expected no clipboard writes, got %v", clip.Writes())
			}
		})

		t.Run("Writes Exact Lyrics", func(t *testing.T) {
			clip := &tu.MockClipboard{}
			p := New(&tu.MockLyricsClient{}, clip, nil)
			p.Lyrics = "La la la\nDa da da"

			if !p.CopyLyrics() {
				t.Error("expected copy")
			}
			if w := clip.Writes(); len(w) != 1 || w[0] != "La la la\nDa da da" {
				t.Errorf("expected exact lyrics written, got %v", w)
			}
		})

		t.Run("Clipboard Failure Is Not Surfaced", func(t *testing.T) {
			clip := &tu.MockClipboard{Err: errors.New("no clipboard utility")}
			p := New(&tu.MockLyricsClient{}, clip, nil)
			p.Lyrics = "x"

			if p.CopyLyrics() {
				t.Error("expected copy to report false")
			}
			if p.ErrorMessage != "" {
				t.Errorf("expected no user-facing error, got %q", p.ErrorMessage)
			}
		})
	})
}

