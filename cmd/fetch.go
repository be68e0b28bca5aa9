package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/page"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Fetch requests lyrics for the url argument and prints them in the chosen format.
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	url := cmd.StringArg("url")
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("%w: url is required", shared.ErrMissingArgument)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	p := page.New(r.lyrics, r.clipboard, r.logger, page.WithLanguage(r.config.UI.Language))
	p.URL = url
	url, _ = p.Start()

	// The response is kept for rendering; the page only stores lyrics and metadata.
	resp, err := p.Request(ctx, url)()
	p.Complete(resp, err)

	if p.ErrorMessage != "" {
		r.writePlain("%s\n", p.ErrorMessage)
		return fmt.Errorf("%w: no lyrics for %s", shared.ErrAPIRequest, url)
	}
	if resp.Status != "ok" {
		r.logger.Warn("lyrics API reported a non-ok status", "status", resp.Status, "url", url)
	}

	out, err := formatter.Render(resp, format)
	if err != nil {
		return err
	}
	if err := r.writePlain("%s\n", strings.TrimRight(string(out), "\n")); err != nil {
		return err
	}

	if cmd.Bool("copy") {
		if p.CopyLyrics() {
			r.logger.Info("lyrics copied to clipboard")
		} else {
			r.logger.Warn("lyrics not copied")
		}
	}

	return nil
}
