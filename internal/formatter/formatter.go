// package formatter renders lyrics responses as plain text, Markdown or JSON
package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// Format names an output format.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// Formats lists the supported output formats.
var Formats = []Format{Text, Markdown, JSON}

// ParseFormat maps a flag value to a [Format]; "md" and "txt" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, s)
	}
}

// Render converts resp to the given format.
func Render(resp *models.LyricsResponse, format Format) ([]byte, error) {
	switch format {
	case Text:
		return ToText(resp), nil
	case Markdown:
		return ToMarkdown(resp), nil
	case JSON:
		return shared.MarshalJSON(resp, true)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// Heading returns "Title - Artist", leaving out whichever part is empty.
func Heading(m models.Metadata) string {
	switch {
	case m.Title != "" && m.Artist != "":
		return fmt.Sprintf("%s - %s", m.Title, m.Artist)
	case m.Title != "":
		return m.Title
	default:
		return m.Artist
	}
}

// ToText converts a response to plain text: a heading line, a blank line, then the lyrics.
func ToText(resp *models.LyricsResponse) []byte {
	var buf bytes.Buffer

	if heading := Heading(resp.Metadata); heading != "" {
		buf.WriteString(heading + "\n\n")
	}
	buf.WriteString(strings.TrimRight(resp.Lyrics, "\n"))
	buf.WriteString("\n")

	return buf.Bytes()
}

// ToMarkdown converts a response to Markdown with the thumbnail as an image when present.
//
// Lyric lines end with two spaces so renderers keep the line breaks.
func ToMarkdown(resp *models.LyricsResponse) []byte {
	var buf bytes.Buffer

	title := resp.Metadata.Title
	if title == "" {
		title = "Lyrics"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))

	if resp.Metadata.Artist != "" {
		buf.WriteString(fmt.Sprintf("**Artist**: %s\n\n", resp.Metadata.Artist))
	}

	if resp.Metadata.HasThumbnail() {
		buf.WriteString(fmt.Sprintf("![Thumbnail](%s)\n\n", resp.Metadata.ThumbnailURL()))
	}

	for _, line := range strings.Split(strings.TrimRight(resp.Lyrics, "\n"), "\n") {
		if line == "" {
			buf.WriteString("\n")
			continue
		}
		buf.WriteString(line + "  \n")
	}

	return buf.Bytes()
}
