package config

import (
	"maps"
	"slices"
)

// Overrides accumulates named boolean values from several sources. A later
// Set of the same name replaces the value and its origin.
type Overrides struct {
	values map[string]bool
	origin map[string]string
}

// NewOverrides returns an empty accumulator.
func NewOverrides() *Overrides {
	return &Overrides{
		values: make(map[string]bool),
		origin: make(map[string]string),
	}
}

// Set records a value together with where it came from (a file path, "-set", ...).
func (o *Overrides) Set(name string, value bool, origin string) {
	o.values[name] = value
	o.origin[name] = origin
}

// Merge records every value of m with the same origin.
func (o *Overrides) Merge(m map[string]bool, origin string) {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		o.Set(name, m[name], origin)
	}
}

// Get returns the recorded value for name.
func (o *Overrides) Get(name string) (value bool, ok bool) {
	value, ok = o.values[name]
	return value, ok
}

// Origin returns where the current value of name came from.
func (o *Overrides) Origin(name string) string {
	return o.origin[name]
}

// Names returns the sorted names of every recorded value.
func (o *Overrides) Names() []string {
	return slices.Sorted(maps.Keys(o.values))
}

// Len returns the number of recorded names.
func (o *Overrides) Len() int { return len(o.values) }

// Split separates the master switch from the flag requests. The master
// value is reported only if some source set it.
func (o *Overrides) Split(master string) (masterValue bool, masterSet bool, requested map[string]bool) {
	requested = make(map[string]bool, len(o.values))
	for name, v := range o.values {
		if master != "" && name == master {
			masterValue, masterSet = v, true
			continue
		}
		requested[name] = v
	}
	return masterValue, masterSet, requested
}
