package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/lyrx/internal/page"
	"github.com/desertthunder/lyrx/internal/routes"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI on the requested page.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	defer r.SetLogger(r.logger)

	model, logFile, err := r.newModel(ctx, cmd.String("page"), cmd.String("lang"))
	if err != nil {
		return err
	}
	defer logFile.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// newModel builds the TUI model, redirecting logs to the configured file so they don't interfere with rendering.
//
// The returned closer releases the log file once the program exits.
func (r *Runner) newModel(ctx context.Context, pageName, lang string) (*ui.Model, io.Closer, error) {
	fileLogger, logFile, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	if pageName == "" {
		pageName = r.config.UI.Page
	}
	if lang == "" {
		lang = r.config.UI.Language
	}

	p := page.New(r.lyrics, r.clipboard, r.logger, page.WithLanguage(lang))
	return ui.NewModel(ctx, p, r.config.Contact, routes.Resolve(pageName)), logFile, nil
}
