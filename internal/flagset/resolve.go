package flagset

import (
	"errors"
	"slices"
)

// Resolve is the one-shot form of NewSchema followed by Schema.Resolve.
func Resolve(master bool, requested map[string]bool, decl Declaration) (*Resolved, error) {
	s, err := NewSchema(decl)
	if err != nil {
		return nil, err
	}
	return s.Resolve(master, requested)
}

// Resolve computes the frozen flag state for one configuration run.
//
// With the master switch off every flag is disabled and requested is not
// looked at. Otherwise requested values replace declared defaults, every
// enabled flag pulls in what it requires, and the conflict pairs are
// checked in declaration order against the closed set.
func (s *Schema) Resolve(master bool, requested map[string]bool) (*Resolved, error) {
	r := &Resolved{
		schema: s,
		master: master,
		state:  make(map[string]bool, len(s.decl.Flags)),
		prov:   make(map[string]Provenance, len(s.decl.Flags)),
	}

	if !master {
		for _, f := range s.decl.Flags {
			r.state[f.Name] = false
			r.prov[f.Name] = Provenance{Source: SourceMasterOff}
		}
		return r, nil
	}

	if err := s.checkRequested(requested); err != nil {
		return nil, err
	}

	for _, f := range s.decl.Flags {
		if v, ok := requested[f.Name]; ok {
			r.state[f.Name] = v
			r.prov[f.Name] = Provenance{Source: SourceRequested}
			continue
		}
		r.state[f.Name] = f.Default
		r.prov[f.Name] = Provenance{Source: SourceDefault}
	}

	// closureOrder visits a flag only after everything that can force it on,
	// so a single pass reaches the fixed point.
	for _, name := range s.closureOrder {
		if !r.state[name] {
			continue
		}
		for _, dep := range s.requires[name] {
			if r.state[dep] {
				continue
			}
			r.state[dep] = true
			r.prov[dep] = Provenance{Source: SourceImplied, By: name}
		}
	}

	for _, c := range s.decl.Conflicts {
		if r.state[c.A] && r.state[c.B] {
			return nil, &ConflictingFlagsError{A: c.A, B: c.B}
		}
	}

	return r, nil
}

func (s *Schema) checkRequested(requested map[string]bool) error {
	var unknown []string
	for name := range requested {
		if !s.Has(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	if len(unknown) == 1 {
		return &UnknownFlagError{Name: unknown[0]}
	}
	errs := make([]error, 0, len(unknown))
	for _, name := range unknown {
		errs = append(errs, &UnknownFlagError{Name: name})
	}
	return errors.Join(errs...)
}
