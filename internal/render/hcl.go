package render

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/pkgopts/internal/cppopts"
	"github.com/specialistvlad/pkgopts/internal/flagset"
	"github.com/zclconf/go-cty/cty"
)

// HCL writes the resolved values as an override file: the master switch
// followed by every flag in declaration order. Reading the file back as
// overrides reproduces the same resolution.
func HCL(w io.Writer, res *flagset.Resolved) error {
	schema := res.Schema()

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	appendComment(body, fmt.Sprintf("Resolved options of package %s.", schema.Package()))
	body.SetAttributeValue(schema.Master(), cty.BoolVal(res.Master()))

	for _, name := range res.Names() {
		enabled, err := res.IsEnabled(name)
		if err != nil {
			return err
		}
		body.AppendNewline()
		if flag, ok := schema.Flag(name); ok {
			for _, line := range cppopts.CommentLines(flag.Description) {
				appendComment(body, line)
			}
		}
		appendComment(body, provenance(res, name))
		body.SetAttributeValue(name, cty.BoolVal(enabled))
	}

	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

func appendComment(body *hclwrite.Body, text string) {
	body.AppendUnstructuredTokens(hclwrite.Tokens{{
		Type:  hclsyntax.TokenComment,
		Bytes: []byte("# " + text + "\n"),
	}})
}
