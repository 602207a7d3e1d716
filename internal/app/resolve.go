package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/specialistvlad/pkgopts/internal/ctxlog"
	"github.com/specialistvlad/pkgopts/internal/exf"
	"github.com/specialistvlad/pkgopts/internal/flagset"
	"github.com/specialistvlad/pkgopts/internal/overrides"
	"github.com/specialistvlad/pkgopts/internal/render"
)

// Result is the outcome of one resolution run.
type Result struct {
	Package   *config.Package
	Overrides *config.Overrides
	Resolved  *flagset.Resolved
}

// Resolve loads the schema, reads every override source and resolves the
// selected package. Each failure is returned as is: the caller decides
// whether it aborts the build.
func (a *App) Resolve(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	m, err := a.loadModel(ctx)
	if err != nil {
		return nil, err
	}
	pkg, err := m.Select(a.config.Package)
	if err != nil {
		return nil, err
	}
	logger.Debug("Package selected.", "package", pkg.Name, "flags", len(pkg.Flags), "source", pkg.SourceFile)

	schema, err := flagset.NewSchema(pkg.Declaration())
	if err != nil {
		return nil, fmt.Errorf("invalid schema for package %s: %w", pkg.Name, err)
	}

	ov, err := overrides.Collect(ctx, a.reader, a.config.OverrideFiles, a.config.Assignments)
	if err != nil {
		return nil, err
	}

	master := pkg.MasterDefault
	masterValue, masterSet, requested := ov.Split(pkg.Master)
	if masterSet {
		master = masterValue
		logger.Debug("Master switch overridden.", "master", pkg.Master, "value", masterValue, "origin", ov.Origin(pkg.Master))
	}
	if a.config.Disable {
		master = false
		logger.Debug("Master switch disabled from the command line.", "master", pkg.Master)
	}

	res, err := schema.Resolve(master, requested)
	if err != nil {
		return nil, fmt.Errorf("resolving package %s: %w", pkg.Name, err)
	}

	logger.Info("Package options resolved.",
		"package", pkg.Name,
		"master", master,
		"enabled", len(res.Enabled()),
		"flags", len(res.Names()),
	)
	return &Result{Package: pkg, Overrides: ov, Resolved: res}, nil
}

func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	if a.config.SchemaPath == "" {
		ctxlog.FromContext(ctx).Debug("No schema path given, using the built-in EXF schema.")
		return exf.Model(ctx)
	}
	m, err := a.loader.Load(ctx, a.config.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	return m, nil
}

func (a *App) runResolve(ctx context.Context) error {
	result, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, format, result.Package, result.Resolved); err != nil {
		return fmt.Errorf("failed to render %s output: %w", format, err)
	}
	return a.writeOutput(ctx, buf.Bytes())
}

func (a *App) runCheck(ctx context.Context) error {
	result, err := a.Resolve(ctx)
	if err != nil {
		return err
	}
	res := result.Resolved
	state := "on"
	if !res.Master() {
		state = "off"
	}
	_, err = fmt.Fprintf(a.outW, "ok: package %s, master %s %s, %d of %d flags enabled\n",
		result.Package.Name, result.Package.Master, state, len(res.Enabled()), len(res.Names()))
	return err
}
