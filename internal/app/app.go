package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/specialistvlad/pkgopts/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	reader config.OverrideReader
}

// NewApp is the constructor for the main application. Rendered output goes
// to outW unless the configuration names a file; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, reader config.OverrideReader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		reader: reader,
	}
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandImport:
		err = a.runImport(ctx)
	case CommandCheck:
		err = a.runCheck(ctx)
	default:
		if a.config.Watch {
			err = a.runWatch(ctx)
		} else {
			err = a.runResolve(ctx)
		}
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}
