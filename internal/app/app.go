package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/orbitmap/internal/config"
	"github.com/specialistvlad/orbitmap/internal/ctxlog"
)

// App encapsulates the application's dependencies, resolved settings and
// lifecycle.
type App struct {
	outW     io.Writer
	stdin    io.Reader
	logger   *slog.Logger
	settings config.Model
}

// NewApp resolves the final settings from every configuration layer and
// returns an App ready to Run. Results are written to outW, logs to logW.
func NewApp(ctx context.Context, outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	bootLogger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, bootLogger)

	settings, err := resolveSettings(ctx, appConfig, loader)
	if err != nil {
		return nil, err
	}

	logger := newLogger(settings.LogLevel, settings.LogFormat, logW)
	logger.Debug("Settings resolved.",
		"input", settings.InputPath,
		"root", settings.Root,
		"source", settings.Source,
		"target", settings.Target,
	)

	return &App{
		outW:     outW,
		stdin:    os.Stdin,
		logger:   logger,
		settings: settings,
	}, nil
}

// resolveSettings layers defaults, environment, config file and flags, in
// that order.
func resolveSettings(ctx context.Context, appConfig *Config, loader config.Loader) (config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	env, err := config.Environment(appConfig.EnvFile)
	if err != nil {
		return config.Model{}, err
	}
	settings := config.Defaults().Merge(config.FromEnv(env))

	if appConfig.ConfigPath != "" {
		fileModel, err := loader.Load(ctx, appConfig.ConfigPath, env)
		if err != nil {
			return config.Model{}, fmt.Errorf("failed to load configuration: %w", err)
		}
		settings = settings.Merge(*fileModel)
		logger.Debug("Config file applied.", "path", appConfig.ConfigPath)
	}

	settings = settings.Merge(appConfig.overrides())

	if err := validateLogging(settings.LogLevel, settings.LogFormat); err != nil {
		return config.Model{}, err
	}
	if settings.InputPath == "" {
		return config.Model{}, ErrNoInput
	}
	return settings, nil
}

// WithStdin replaces the reader used when the input path is "-".
func (a *App) WithStdin(r io.Reader) *App {
	a.stdin = r
	return a
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() config.Model {
	return a.settings
}
