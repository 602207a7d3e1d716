// Package exf carries the built-in schema of the EXternal Forcing package
// and the typed view of its resolved options that forcing setup code reads.
package exf

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/specialistvlad/pkgopts/internal/flagset"
	hclconfig "github.com/specialistvlad/pkgopts/internal/hcl"
)

// SchemaFile is the name the built-in schema is reported under.
const SchemaFile = "builtin:exf.hcl"

//go:embed exf.hcl
var schemaSource []byte

// Flag names of the EXF package.
const (
	Master                = "ALLOW_EXF"
	BulkFormulae          = "ALLOW_BULKFORMULAE"
	BulkLargeYeager04     = "ALLOW_BULK_LARGEYEAGER04"
	DragLargeYeager09     = "ALLOW_DRAG_LARGEYEAGER09"
	AtmWind               = "ALLOW_ATM_WIND"
	AtmTemp               = "ALLOW_ATM_TEMP"
	DownwardRadiation     = "ALLOW_DOWNWARD_RADIATION"
	Runoff                = "ALLOW_RUNOFF"
	ReadEvap              = "EXF_READ_EVAP"
	UseInterpolation      = "USE_EXF_INTERPOLATION"
	InterpUseDynamicAlloc = "EXF_INTERP_USE_DYNALLOC"
)

// Source returns the text of the built-in schema.
func Source() []byte {
	return append([]byte(nil), schemaSource...)
}

// Model parses the built-in schema.
func Model(ctx context.Context) (*config.Model, error) {
	m, err := hclconfig.NewLoader().LoadSource(ctx, schemaSource, SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("built-in exf schema: %w", err)
	}
	return m, nil
}

// Package returns the built-in EXF package declaration.
func Package(ctx context.Context) (*config.Package, error) {
	m, err := Model(ctx)
	if err != nil {
		return nil, err
	}
	return m.Select("exf")
}

// Schema returns the validated built-in schema.
func Schema(ctx context.Context) (*flagset.Schema, error) {
	pkg, err := Package(ctx)
	if err != nil {
		return nil, err
	}
	return flagset.NewSchema(pkg.Declaration())
}
