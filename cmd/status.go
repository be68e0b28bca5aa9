package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Status sends a GET to the API root and reports whether the service answered.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	api := r.lyrics.API()
	r.logger.Debug("GET request", "base_url", api.BaseURL(), "path", "/")

	resp, err := api.Get(ctx, "/")
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}

	if !resp.OK() {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrServiceUnavailable, resp.StatusCode, string(resp.Body))
	}

	r.writePlain("✓ %s is up (%d)\n", api.BaseURL(), resp.StatusCode)

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, true)
	}
	if len(resp.Body) > 0 {
		return r.writePlain("%s\n", resp.Body)
	}
	return nil
}
