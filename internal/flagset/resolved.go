package flagset

import (
	"maps"
	"slices"
)

// Source says where a resolved flag value came from.
type Source int

const (
	// SourceDefault marks a value taken from the declared default.
	SourceDefault Source = iota
	// SourceRequested marks a value supplied by the caller.
	SourceRequested
	// SourceImplied marks a flag switched on by a flag that requires it.
	SourceImplied
	// SourceMasterOff marks a flag disabled because the master switch is off.
	SourceMasterOff
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceRequested:
		return "requested"
	case SourceImplied:
		return "implied"
	case SourceMasterOff:
		return "master-off"
	default:
		return "unknown"
	}
}

// Provenance records how a flag reached its resolved value. By is set for
// SourceImplied and names the flag whose requirement switched it on.
type Provenance struct {
	Source Source
	By     string
}

// Resolved is the frozen result of a resolution run. It is safe for
// concurrent use; nothing hands out its internal maps.
type Resolved struct {
	schema *Schema
	master bool
	state  map[string]bool
	prov   map[string]Provenance
}

// IsEnabled reports the resolved state of a declared flag. Unknown names
// return an *UnknownFlagError.
func (r *Resolved) IsEnabled(name string) (bool, error) {
	v, ok := r.state[name]
	if !ok {
		return false, &UnknownFlagError{Name: name}
	}
	return v, nil
}

// Master reports whether the package master switch was on.
func (r *Resolved) Master() bool { return r.master }

// Schema returns the schema the configuration was resolved against.
func (r *Resolved) Schema() *Schema { return r.schema }

// Names returns every declared flag in declaration order.
func (r *Resolved) Names() []string {
	names := make([]string, 0, len(r.schema.decl.Flags))
	for _, f := range r.schema.decl.Flags {
		names = append(names, f.Name)
	}
	return names
}

// Enabled returns the enabled flags in declaration order.
func (r *Resolved) Enabled() []string {
	var names []string
	for _, f := range r.schema.decl.Flags {
		if r.state[f.Name] {
			names = append(names, f.Name)
		}
	}
	return names
}

// Map returns a copy of the flag state.
func (r *Resolved) Map() map[string]bool {
	return maps.Clone(r.state)
}

// Source returns the provenance of a declared flag's value.
func (r *Resolved) Source(name string) (Provenance, error) {
	p, ok := r.prov[name]
	if !ok {
		return Provenance{}, &UnknownFlagError{Name: name}
	}
	return p, nil
}

// Equal reports whether two resolutions hold the same master state and the
// same flags with the same values. Provenance is not compared.
func (r *Resolved) Equal(other *Resolved) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.master == other.master &&
		slices.Equal(r.Names(), other.Names()) &&
		maps.Equal(r.state, other.state)
}
