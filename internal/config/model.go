package config

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/pkgopts/internal/flagset"
)

// Model is the unified, format-agnostic representation of every package
// schema found on the configured paths.
type Model struct {
	Packages []*Package
}

// Package is the format-agnostic representation of a `package` block.
type Package struct {
	Name        string
	Description string

	// Master names the switch that gates the whole package. MasterDefault
	// is its value when no override mentions it.
	Master        string
	MasterDefault bool

	// Header is the file name of the generated options header, e.g.
	// "EXF_OPTIONS.h". Includes are emitted at its top.
	Header   string
	Includes []string

	Flags     []*Flag
	Conflicts []flagset.Conflict

	// SourceFile is the schema file the package was declared in.
	SourceFile string
}

// Flag is the format-agnostic representation of a `flag` block.
type Flag struct {
	Name        string
	Default     bool
	Description string
	Requires    []string
}

// Package looks up a package by name.
func (m *Model) Package(name string) (*Package, bool) {
	for _, p := range m.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// PackageNames returns the sorted names of all loaded packages.
func (m *Model) PackageNames() []string {
	names := make([]string, 0, len(m.Packages))
	for _, p := range m.Packages {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	return names
}

// Select returns the named package, or the only package when name is empty.
func (m *Model) Select(name string) (*Package, error) {
	if name == "" {
		switch len(m.Packages) {
		case 0:
			return nil, fmt.Errorf("no package declared")
		case 1:
			return m.Packages[0], nil
		default:
			return nil, fmt.Errorf("several packages declared (%v); choose one", m.PackageNames())
		}
	}
	p, ok := m.Package(name)
	if !ok {
		return nil, fmt.Errorf("package %q not declared; available: %v", name, m.PackageNames())
	}
	return p, nil
}

// Declaration converts the package into the resolver's declaration. Flag
// `requires` lists become dependency edges, in flag order.
func (p *Package) Declaration() flagset.Declaration {
	decl := flagset.Declaration{
		Package:     p.Name,
		Master:      p.Master,
		Description: p.Description,
		Flags:       make([]flagset.Flag, 0, len(p.Flags)),
		Conflicts:   slices.Clone(p.Conflicts),
	}
	for _, f := range p.Flags {
		decl.Flags = append(decl.Flags, flagset.Flag{
			Name:        f.Name,
			Default:     f.Default,
			Description: f.Description,
		})
		for _, req := range f.Requires {
			decl.Dependencies = append(decl.Dependencies, flagset.Dependency{From: f.Name, To: req})
		}
	}
	return decl
}
