package exf

import (
	"fmt"

	"github.com/specialistvlad/pkgopts/internal/flagset"
)

// Options is the resolved EXF configuration as plain fields. It is read
// once after resolution; physics setup branches on its fields instead of
// looking flags up by name.
type Options struct {
	Enabled bool

	BulkFormulae      bool
	BulkLargeYeager04 bool
	DragLargeYeager09 bool

	AtmWind           bool
	AtmTemp           bool
	DownwardRadiation bool
	Runoff            bool
	ReadEvap          bool

	UseInterpolation      bool
	InterpUseDynamicAlloc bool
}

// FromResolved fills Options from a resolution of the EXF schema. It fails
// if res was resolved against a schema lacking any EXF flag.
func FromResolved(res *flagset.Resolved) (Options, error) {
	o := Options{Enabled: res.Master()}

	fields := []struct {
		name string
		dst  *bool
	}{
		{BulkFormulae, &o.BulkFormulae},
		{BulkLargeYeager04, &o.BulkLargeYeager04},
		{DragLargeYeager09, &o.DragLargeYeager09},
		{AtmWind, &o.AtmWind},
		{AtmTemp, &o.AtmTemp},
		{DownwardRadiation, &o.DownwardRadiation},
		{Runoff, &o.Runoff},
		{ReadEvap, &o.ReadEvap},
		{UseInterpolation, &o.UseInterpolation},
		{InterpUseDynamicAlloc, &o.InterpUseDynamicAlloc},
	}
	for _, f := range fields {
		v, err := res.IsEnabled(f.name)
		if err != nil {
			return Options{}, fmt.Errorf("not an exf resolution: %w", err)
		}
		*f.dst = v
	}
	return o, nil
}

// ComputesBulkFluxes reports whether turbulent fluxes come from the bulk
// formulae rather than being read from file.
func (o Options) ComputesBulkFluxes() bool {
	return o.Enabled && o.BulkFormulae
}
