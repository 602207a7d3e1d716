package hcl

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// WriteSchema writes packages as a schema file that Loader reads back into
// the same model.
func WriteSchema(w io.Writer, pkgs ...*config.Package) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, p := range pkgs {
		if i > 0 {
			root.AppendNewline()
		}
		body := root.AppendNewBlock("package", []string{p.Name}).Body()
		if p.Description != "" {
			body.SetAttributeValue("description", cty.StringVal(p.Description))
		}
		body.SetAttributeValue("master", cty.StringVal(p.Master))
		body.SetAttributeValue("master_default", cty.BoolVal(p.MasterDefault))
		body.SetAttributeValue("header", cty.StringVal(p.Header))
		if len(p.Includes) > 0 {
			body.SetAttributeValue("includes", stringList(p.Includes))
		}

		for _, fl := range p.Flags {
			body.AppendNewline()
			fb := body.AppendNewBlock("flag", []string{fl.Name}).Body()
			fb.SetAttributeValue("default", cty.BoolVal(fl.Default))
			if fl.Description != "" {
				fb.SetAttributeValue("description", cty.StringVal(fl.Description))
			}
			if len(fl.Requires) > 0 {
				fb.SetAttributeValue("requires", stringList(fl.Requires))
			}
		}

		for _, c := range p.Conflicts {
			body.AppendNewline()
			cb := body.AppendNewBlock("conflict", nil).Body()
			cb.SetAttributeValue("flags", stringList([]string{c.A, c.B}))
		}
	}

	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

func stringList(items []string) cty.Value {
	vals := make([]cty.Value, 0, len(items))
	for _, s := range items {
		vals = append(vals, cty.StringVal(s))
	}
	return cty.ListVal(vals)
}
