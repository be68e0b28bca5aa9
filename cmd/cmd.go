// submodule cmd contains command definitions
package main

import (
	"strings"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/urfave/cli/v3"
)

// globalFlags are accepted before any command and read by [Runner.Load].
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (default: $LYRX_CONFIG or config.toml)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
}

// fetchCommand fetches lyrics for a single URL and prints them
func fetchCommand(r *Runner) *cli.Command {
	formats := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		formats[i] = string(f)
	}

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"get"},
		Usage:   "Fetch lyrics for a video URL",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "url",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (" + strings.Join(formats, ", ") + ")",
				Value:   string(formatter.Text),
			},
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "Copy the lyrics to the clipboard",
			},
		},
		Action: r.Fetch,
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive terminal UI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "page",
				Usage: "Page to open on (home or contact)",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Translation language",
			},
		},
		Action: r.TUI,
	}
}

// serveCommand runs the web UI
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to listen on (default: server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (default: server.port)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the web UI in the default browser",
			},
		},
		Action: r.Serve,
	}
}

// statusCommand checks the lyrics API
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Check that the lyrics API is reachable",
		Action: r.Status,
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the file",
						Value: DefaultConfigPath,
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration as TOML",
				Action: r.ConfigShow,
			},
		},
	}
}
