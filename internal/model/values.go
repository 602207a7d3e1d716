// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the small helpers that evaluate literal attribute values.
// Schema files have no variables or functions, so every expression is
// evaluated with a nil EvalContext and converted with cty's standard rules:
// `true`, `"true"` and `"1"`-style strings that cty accepts all become bools.
package model

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// identifierPattern matches names usable as preprocessor macros.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether name can be emitted as a #define.
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// EvalBool evaluates a literal expression and converts it to a Go bool.
func EvalBool(expr hcl.Expression) (bool, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return false, diags
	}
	return ValueToBool(val, expr.Range().Ptr())
}

// ValueToBool converts an already evaluated value to a Go bool.
func ValueToBool(val cty.Value, subject *hcl.Range) (bool, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if val.IsNull() || !val.IsKnown() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid boolean value",
			Detail:   "A known, non-null bool value is required.",
			Subject:  subject,
		})
		return false, diags
	}

	converted, err := convert.Convert(val, cty.Bool)
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid boolean value",
			Detail:   fmt.Sprintf("Cannot use a %s value here: %s.", val.Type().FriendlyName(), err),
			Subject:  subject,
		})
		return false, diags
	}

	var b bool
	if err := gocty.FromCtyValue(converted, &b); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid boolean value",
			Detail:   err.Error(),
			Subject:  subject,
		})
		return false, diags
	}
	return b, diags
}

// evalString decodes a literal string attribute.
func evalString(attr *hcl.Attribute) (string, hcl.Diagnostics) {
	var s string
	diags := gohcl.DecodeExpression(attr.Expr, nil, &s)
	return s, diags
}

// evalIdentifierList decodes a list of names and checks each is an identifier.
func evalIdentifierList(attr *hcl.Attribute) ([]string, hcl.Diagnostics) {
	var names []string
	diags := gohcl.DecodeExpression(attr.Expr, nil, &names)
	if diags.HasErrors() {
		return nil, diags
	}
	for _, name := range names {
		if !IsIdentifier(name) {
			diags = append(diags, invalidIdentifier(name, attr.Expr.Range().Ptr()))
		}
	}
	return names, diags
}

func invalidIdentifier(name string, subject *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid flag name",
		Detail:   fmt.Sprintf("%q is not a valid identifier: use letters, digits and underscores, not starting with a digit.", name),
		Subject:  subject,
	}
}
