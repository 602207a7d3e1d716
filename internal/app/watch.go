package app

import (
	"context"
	"errors"

	"github.com/specialistvlad/pkgopts/internal/ctxlog"
	"github.com/specialistvlad/pkgopts/internal/watch"
)

// runWatch resolves once and again after every change to an input file,
// until ctx is cancelled. Resolution errors are logged and do not stop the
// loop; the next edit may fix them.
func (a *App) runWatch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	paths := a.inputPaths()
	if len(paths) == 0 {
		return errors.New("nothing to watch: the built-in schema is used and no override files were given")
	}

	w, err := watch.New(ctx, watch.DefaultDebounce, paths...)
	if err != nil {
		return err
	}
	defer w.Close()
	logger.Info("Watching inputs.", "paths", paths)

	a.resolveLogged(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped.")
			return nil
		case <-w.Changes():
			a.resolveLogged(ctx)
		}
	}
}

func (a *App) resolveLogged(ctx context.Context) {
	if err := a.runResolve(ctx); err != nil {
		ctxlog.FromContext(ctx).Error("Resolution failed.", "error", err)
	}
}

// inputPaths lists the files and directories a resolution reads.
func (a *App) inputPaths() []string {
	var paths []string
	if a.config.SchemaPath != "" {
		paths = append(paths, a.config.SchemaPath)
	}
	return append(paths, a.config.OverrideFiles...)
}
