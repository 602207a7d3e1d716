package cppopts

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/pkgopts/internal/config"
)

// PackageName guesses a package name from a header file name, e.g.
// "code/EXF_OPTIONS.h" gives "exf".
func PackageName(header string) string {
	base := filepath.Base(header)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(strings.ToUpper(base), "_OPTIONS")
	return strings.ToLower(base)
}

// Package converts the header into a package declaration whose flag
// defaults are the header's current #define/#undef state. Dependencies and
// conflicts are not expressed in headers and come out empty.
func (h *Header) Package(name string) *config.Package {
	if name == "" {
		name = PackageName(h.Routine)
	}
	upper := strings.ToUpper(name)

	p := &config.Package{
		Name:          name,
		Description:   packageDescription(h.Description),
		Master:        h.Master,
		MasterDefault: true,
		Header:        h.Routine,
		Includes:      append([]string(nil), h.Includes...),
		Flags:         make([]*config.Flag, 0, len(h.Defines)),
	}
	if p.Master == "" {
		p.Master = "ALLOW_" + upper
	}
	if p.Header == "" {
		p.Header = upper + "_OPTIONS.h"
	}
	for _, d := range h.Defines {
		p.Flags = append(p.Flags, &config.Flag{
			Name:        d.Name,
			Default:     d.Enabled,
			Description: d.Description,
		})
	}
	return p
}

// packageDescription extracts "X" from the conventional prolog line
// "CPP options file for X package: ...".
func packageDescription(s string) string {
	rest, ok := strings.CutPrefix(s, "CPP options file for ")
	if !ok {
		return s
	}
	if desc, _, found := strings.Cut(rest, " package"); found {
		return desc
	}
	return s
}
