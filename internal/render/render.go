package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/specialistvlad/pkgopts/internal/cppopts"
	"github.com/specialistvlad/pkgopts/internal/flagset"
)

// Format names an output format.
type Format string

const (
	FormatHeader Format = "header"
	FormatHCL    Format = "hcl"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
)

var formats = []Format{FormatHeader, FormatHCL, FormatJSON, FormatText}

// Formats returns the names of all output formats.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(formats, f) {
		return "", fmt.Errorf("unknown output format %q; expected one of %s", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Write renders res for pkg in the given format.
func Write(w io.Writer, format Format, pkg *config.Package, res *flagset.Resolved) error {
	switch format {
	case FormatHeader:
		return cppopts.Render(w, pkg, res)
	case FormatHCL:
		return HCL(w, res)
	case FormatJSON:
		return JSON(w, res)
	case FormatText:
		return Text(w, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// provenance describes where a flag value came from, e.g. "implied by X".
func provenance(res *flagset.Resolved, name string) string {
	prov, err := res.Source(name)
	if err != nil {
		return ""
	}
	if prov.Source == flagset.SourceImplied {
		return fmt.Sprintf("%s by %s", prov.Source, prov.By)
	}
	return prov.Source.String()
}
