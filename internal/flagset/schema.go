package flagset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/pkgopts/internal/dag"
)

// Schema is a validated Declaration. It is never mutated after NewSchema
// returns, so a single Schema may be resolved from many goroutines at once.
type Schema struct {
	decl     Declaration
	index    map[string]int
	requires map[string][]string
	// closureOrder lists every flag after all flags that require it.
	closureOrder []string
}

// NewSchema validates a declaration and freezes it. Structural problems
// (empty or duplicate names, edges or conflicts naming undeclared flags,
// self-conflicts) are all reported together; the dependency graph is only
// checked for cycles once the structure is sound.
func NewSchema(decl Declaration) (*Schema, error) {
	s := &Schema{
		decl:     cloneDeclaration(decl),
		index:    make(map[string]int, len(decl.Flags)),
		requires: make(map[string][]string, len(decl.Flags)),
	}

	var errs []error
	for i, f := range s.decl.Flags {
		switch {
		case f.Name == "":
			errs = append(errs, fmt.Errorf("%w: flag #%d has an empty name", ErrInvalidDeclaration, i+1))
		case f.Name == s.decl.Master:
			errs = append(errs, fmt.Errorf("%w: flag %q is also the master switch", ErrInvalidDeclaration, f.Name))
		default:
			if _, dup := s.index[f.Name]; dup {
				errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateFlag, f.Name))
				continue
			}
			s.index[f.Name] = i
		}
	}

	for _, d := range s.decl.Dependencies {
		for _, name := range []string{d.From, d.To} {
			if _, ok := s.index[name]; !ok {
				errs = append(errs, fmt.Errorf("dependency %s -> %s: %w", d.From, d.To, &UnknownFlagError{Name: name}))
			}
		}
	}

	for _, c := range s.decl.Conflicts {
		if c.A == c.B {
			errs = append(errs, fmt.Errorf("%w: flag %q conflicts with itself", ErrInvalidDeclaration, c.A))
			continue
		}
		for _, name := range []string{c.A, c.B} {
			if _, ok := s.index[name]; !ok {
				errs = append(errs, fmt.Errorf("conflict (%s, %s): %w", c.A, c.B, &UnknownFlagError{Name: name}))
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	graph := dag.New()
	for _, f := range s.decl.Flags {
		graph.AddNode(f.Name)
	}
	for _, d := range s.decl.Dependencies {
		// d.From depends on d.To.
		if err := graph.AddEdge(d.To, d.From); err != nil {
			return nil, toSchemaError(err)
		}
	}

	order, err := graph.TopologicalOrder()
	if err != nil {
		return nil, toSchemaError(err)
	}
	slices.Reverse(order)
	s.closureOrder = order

	for _, f := range s.decl.Flags {
		deps, err := graph.Dependencies(f.Name)
		if err != nil {
			return nil, err
		}
		if len(deps) > 0 {
			s.requires[f.Name] = deps
		}
	}

	return s, nil
}

func toSchemaError(err error) error {
	var cycleErr *dag.CycleError
	if errors.As(err, &cycleErr) {
		return &CyclicDependencyError{Cycle: slices.Clone(cycleErr.Path)}
	}
	return err
}

// Package returns the package name of the declaration.
func (s *Schema) Package() string { return s.decl.Package }

// Master returns the name of the package's master switch.
func (s *Schema) Master() string { return s.decl.Master }

// Description returns the package description.
func (s *Schema) Description() string { return s.decl.Description }

// Flags returns the declared flags in declaration order.
func (s *Schema) Flags() []Flag { return slices.Clone(s.decl.Flags) }

// Conflicts returns the declared conflict pairs.
func (s *Schema) Conflicts() []Conflict { return slices.Clone(s.decl.Conflicts) }

// Flag looks up a declared flag by name.
func (s *Schema) Flag(name string) (Flag, bool) {
	i, ok := s.index[name]
	if !ok {
		return Flag{}, false
	}
	return s.decl.Flags[i], true
}

// Has reports whether name is a declared flag.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Requires returns the sorted names of the flags that name directly depends on.
func (s *Schema) Requires(name string) ([]string, error) {
	if !s.Has(name) {
		return nil, &UnknownFlagError{Name: name}
	}
	return slices.Clone(s.requires[name]), nil
}

// Declaration returns a copy of the declaration the schema was built from.
func (s *Schema) Declaration() Declaration {
	return cloneDeclaration(s.decl)
}

func cloneDeclaration(d Declaration) Declaration {
	d.Flags = slices.Clone(d.Flags)
	d.Dependencies = slices.Clone(d.Dependencies)
	d.Conflicts = slices.Clone(d.Conflicts)
	return d
}
