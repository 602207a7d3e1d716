package hcl

import (
	"context"

	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/specialistvlad/pkgopts/internal/ctxlog"
	"github.com/specialistvlad/pkgopts/internal/model"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every schema file under paths and translates the packages
// into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading schemas.", "paths", paths)

	schemas, err := model.LoadPackagesRecursively(ctx, paths...)
	if err != nil {
		return nil, err
	}
	m := Translate(schemas)
	logger.Debug("Schemas translated into unified model.", "packages", m.PackageNames())
	return m, nil
}

// LoadSource parses schema text held in memory, such as an embedded
// built-in schema.
func (l *Loader) LoadSource(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	schemas, err := model.ParsePackageSource(ctx, src, filename)
	if err != nil {
		return nil, err
	}
	return Translate(schemas), nil
}

// Translate converts parsed package schemas into the agnostic model.
func Translate(schemas []*model.PackageSchema) *config.Model {
	m := &config.Model{Packages: make([]*config.Package, 0, len(schemas))}
	for _, s := range schemas {
		m.Packages = append(m.Packages, translatePackage(s))
	}
	return m
}
