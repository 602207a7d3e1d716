package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/pkgopts/internal/model"
)

// ParseOverrides decodes override files made of top-level attributes:
//
//	ALLOW_EXF    = true
//	ALLOW_RUNOFF = false
//
// Blocks are not allowed; every attribute value must convert to a bool.
func ParseOverrides(src []byte, filename string) (map[string]bool, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse override file %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode override file %s: %w", filename, diags)
	}

	values := make(map[string]bool, len(attrs))
	var allDiags hcl.Diagnostics
	for name, attr := range attrs {
		v, valDiags := model.EvalBool(attr.Expr)
		allDiags = append(allDiags, valDiags...)
		values[name] = v
	}
	if allDiags.HasErrors() {
		return nil, fmt.Errorf("invalid override in %s: %w", filename, allDiags)
	}
	return values, nil
}
