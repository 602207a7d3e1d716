// Package config defines the format-agnostic model of declared packages and
// their flags, the core interfaces (Loader, OverrideReader) for reading
// schemas and overrides from various sources, and the Overrides accumulator
// that merges those sources.
//
// The `config.Model` is what the app resolves against. Concrete
// implementations of the interfaces, such as for HCL, are provided in
// separate packages.
package config
