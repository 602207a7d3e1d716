package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/pkgopts/internal/ctxlog"
)

// writeOutput writes data to the configured output. A file whose content
// is already data is left untouched, so its modification time only moves
// when the options really change.
func (a *App) writeOutput(ctx context.Context, data []byte) error {
	logger := ctxlog.FromContext(ctx)
	path := a.config.OutPath
	if path == "" || path == "-" {
		_, err := a.outW.Write(data)
		return err
	}

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		logger.Info("Output unchanged.", "path", path)
		return nil
	}

	// A replaced file keeps its permissions.
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("Output written.", "path", path, "bytes", len(data))
	return nil
}
