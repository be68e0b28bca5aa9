package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/page"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/urfave/cli/v3"
)

// DefaultConfigPath is read when neither --config nor LYRX_CONFIG is set.
const DefaultConfigPath = "config.toml"

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	lyrics     *services.LyricsService
	httpClient *http.Client
	clipboard  page.Clipboard
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	HTTPClient *http.Client
	Clipboard  page.Clipboard
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Clipboard == nil {
		opts.Clipboard = page.SystemClipboard{}
	}

	r := &Runner{
		configPath: opts.ConfigPath,
		httpClient: opts.HTTPClient,
		clipboard:  opts.Clipboard,
		logger:     opts.Logger,
		output:     opts.Output,
	}
	r.SetConfig(opts.Config)
	return r
}

// SetConfig replaces the configuration and rebuilds the lyrics client from it.
func (r *Runner) SetConfig(config *shared.Config) {
	r.config = config
	r.lyrics = services.NewLyricsService(config.API.BaseURL, config.API.ExtractPath, r.httpClient)
}

// SetLogger replaces the logger used by subsequent commands.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Load resolves the config file and environment overrides before any command runs.
//
// The path comes from --config, then LYRX_CONFIG, then [DefaultConfigPath]. A missing default file is not an error;
// a missing file that was named explicitly is [shared.ErrMissingConfig].
func (r *Runner) Load(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := shared.LoadEnv(shared.EnvConfigPath, shared.EnvAPIBaseURL, shared.EnvLogLevel)

	path, explicit := cmd.String("config"), cmd.IsSet("config")
	if !explicit {
		if v, ok := env[shared.EnvConfigPath]; ok {
			path, explicit = v, true
		}
	}
	if path == "" {
		path = DefaultConfigPath
	}
	r.configPath = path

	config, err := shared.LoadConfig(path)
	switch {
	case err == nil:
		r.logger.Debug("loaded config", "path", path)
	case errors.Is(err, os.ErrNotExist) && !explicit:
		config = shared.DefaultConfig()
	case errors.Is(err, os.ErrNotExist):
		return ctx, fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
	default:
		return ctx, err
	}

	config.ApplyEnv(env)
	if err := config.Validate(); err != nil {
		return ctx, err
	}
	r.SetConfig(config)

	if cmd.Bool("debug") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	} else {
		shared.SetLogLevel(r.logger, shared.ParseLogLevel(config.Log.Level))
	}

	return ctx, nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		fetchCommand, tuiCommand, serveCommand, statusCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
