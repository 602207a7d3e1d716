package hcl

import (
	"slices"

	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/specialistvlad/pkgopts/internal/flagset"
	"github.com/specialistvlad/pkgopts/internal/model"
)

// translatePackage converts the HCL-specific package schema into the agnostic model.
func translatePackage(s *model.PackageSchema) *config.Package {
	p := &config.Package{
		Name:          s.Name,
		Description:   s.Description,
		Master:        s.Master,
		MasterDefault: s.MasterDefault,
		Header:        s.Header,
		Includes:      slices.Clone(s.Includes),
		Flags:         make([]*config.Flag, 0, len(s.Flags)),
		Conflicts:     make([]flagset.Conflict, 0, len(s.Conflicts)),
	}
	if s.FSInformation != nil {
		p.SourceFile = s.FSInformation.FilePath
	}
	for _, f := range s.Flags {
		p.Flags = append(p.Flags, &config.Flag{
			Name:        f.Name,
			Default:     f.Default,
			Description: f.Description,
			Requires:    slices.Clone(f.Requires),
		})
	}
	for _, c := range s.Conflicts {
		p.Conflicts = append(p.Conflicts, flagset.Conflict{A: c.A, B: c.B})
	}
	return p
}
