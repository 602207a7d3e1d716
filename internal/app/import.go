package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/pkgopts/internal/cppopts"
	"github.com/specialistvlad/pkgopts/internal/ctxlog"
	hclconfig "github.com/specialistvlad/pkgopts/internal/hcl"
)

// runImport turns an existing options header into a schema whose defaults
// are the header's current settings.
func (a *App) runImport(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(a.config.HeaderPath)
	if err != nil {
		return fmt.Errorf("failed to open header: %w", err)
	}
	defer f.Close()

	h, err := cppopts.ParseHeader(f, a.config.HeaderPath)
	if err != nil {
		return err
	}
	if h.Routine == "" {
		h.Routine = filepath.Base(a.config.HeaderPath)
	}
	pkg := h.Package(a.config.Package)
	logger.Info("Header imported.", "path", a.config.HeaderPath, "package", pkg.Name, "flags", len(pkg.Flags))

	var buf bytes.Buffer
	if err := hclconfig.WriteSchema(&buf, pkg); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return a.writeOutput(ctx, buf.Bytes())
}
