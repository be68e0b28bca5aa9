package formatter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
	th "github.com/desertthunder/lyrx/internal/testing"
)

func TestFormatters(t *testing.T) {
	t.Run("ParseFormat", func(t *testing.T) {
		tc := []struct {
			in      string
			want    Format
			wantErr bool
		}{
			{in: "", want: Text},
			{in: "txt", want: Text},
			{in: "Markdown", want: Markdown},
			{in: "md", want: Markdown},
			{in: "json", want: JSON},
			{in: "csv", wantErr: true},
		}

		for _, tt := range tc {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidArgument) {
					t.Errorf("ParseFormat(%q) expected ErrInvalidArgument, got %v", tt.in, err)
				}
				continue
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		}
	})

	t.Run("Heading", func(t *testing.T) {
		tc := []struct {
			meta models.Metadata
			want string
		}{
			{meta: models.Metadata{Title: "T", Artist: "A"}, want: "T - A"},
			{meta: models.Metadata{Title: "T"}, want: "T"},
			{meta: models.Metadata{Artist: "A"}, want: "A"},
			{meta: models.Metadata{}, want: ""},
		}

		for _, tt := range tc {
			if got := Heading(tt.meta); got != tt.want {
				t.Errorf("Heading(%+v) = %q, want %q", tt.meta, got, tt.want)
			}
		}
	})

	t.Run("ToText", func(t *testing.T) {
		resp := th.NewLyricsResponse("La la la\nDa da da\n\n", "T", "A")

		got := string(ToText(resp))
		want := "T - A\n\nLa la la\nDa da da\n"
		if got != want {
			t.Errorf("ToText() = %q, want %q", got, want)
		}
	})

	t.Run("ToText Without Metadata", func(t *testing.T) {
		got := string(ToText(&models.LyricsResponse{Lyrics: "only lyrics"}))
		if got != "only lyrics\n" {
			t.Errorf("ToText() = %q", got)
		}
	})

	t.Run("ToMarkdown", func(t *testing.T) {
		thumb := "https://i.ytimg.com/vi/abc/hqdefault.jpg"
		resp := th.NewLyricsResponse("Line one\n\nLine two", "Song", "Band")
		resp.Metadata.Thumbnail = &thumb

		output := string(ToMarkdown(resp))

		if !strings.HasPrefix(output, "# Song\n\n") {
			t.Errorf("Markdown missing title, got: %s", output)
		}
		if !strings.Contains(output, "**Artist**: Band") {
			t.Errorf("Markdown missing artist")
		}
		if !strings.Contains(output, "![Thumbnail]("+thumb+")") {
			t.Errorf("Markdown missing thumbnail")
		}
		if !strings.Contains(output, "Line one  \n\nLine two  \n") {
			t.Errorf("Markdown should keep line breaks, got: %q", output)
		}
	})

	t.Run("ToMarkdown Without Thumbnail", func(t *testing.T) {
		output := string(ToMarkdown(th.NewLyricsResponse("x", "", "")))

		if !strings.HasPrefix(output, "# Lyrics\n\n") {
			t.Errorf("expected fallback title, got: %s", output)
		}
		if strings.Contains(output, "Thumbnail") || strings.Contains(output, "Artist") {
			t.Errorf("expected no thumbnail or artist, got: %s", output)
		}
	})

	t.Run("Render", func(t *testing.T) {
		resp := th.NewLyricsResponse("La la la", "T", "A")

		t.Run("JSON", func(t *testing.T) {
			data, err := Render(resp, JSON)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			var decoded models.LyricsResponse
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("expected valid JSON, got %v", err)
			}
			if decoded.Lyrics != "La la la" || decoded.Metadata.Title != "T" {
				t.Errorf("unexpected decoded %+v", decoded)
			}
			if strings.Contains(string(data), "thumbnail") {
				t.Error("expected absent thumbnail to be omitted")
			}
		})

		t.Run("Every Format", func(t *testing.T) {
			for _, f := range Formats {
				if data, err := Render(resp, f); err != nil || len(data) == 0 {
					t.Errorf("Render(%s) = %q, %v", f, data, err)
				}
			}
		})

		t.Run("Unknown", func(t *testing.T) {
			if _, err := Render(resp, Format("yaml")); !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	})
}
