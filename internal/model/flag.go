// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the `flag` and `conflict` blocks of a package schema.
package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// FlagDefinition is one declared option flag.
type FlagDefinition struct {
	// Name is the macro name, taken from the block label.
	Name string

	// Default is the flag's value when no override mentions it.
	Default bool

	// Description is a one-line explanation, emitted as a comment in
	// generated headers.
	Description string

	// Requires lists the flags that must be on whenever this one is.
	Requires []string

	DeclRange hcl.Range
}

// ConflictDefinition is a pair of flags that must not both be enabled.
type ConflictDefinition struct {
	A, B      string
	DeclRange hcl.Range
}

var flagBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "default"},
		{Name: "description"},
		{Name: "requires"},
	},
}

var conflictBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "flags", Required: true},
	},
}

// parseFlags decodes every `flag` block, keeping declaration order.
func parseFlags(blocks hcl.Blocks) ([]*FlagDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var flags []*FlagDefinition
	seen := make(map[string]*FlagDefinition)

	for _, block := range blocks.OfType("flag") {
		// The schema guarantees us one label for the flag name.
		name := block.Labels[0]

		if !IsIdentifier(name) {
			diags = append(diags, invalidIdentifier(name, block.LabelRanges[0].Ptr()))
			continue
		}
		if prev, exists := seen[name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate flag definition",
				Detail:   fmt.Sprintf("A flag named '%s' was already defined at %s.", name, prev.DeclRange),
				Subject:  &block.DefRange,
			})
			continue
		}

		content, contentDiags := block.Body.Content(flagBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		def := &FlagDefinition{Name: name, DeclRange: block.DefRange}

		if attr, ok := content.Attributes["default"]; ok {
			v, valDiags := EvalBool(attr.Expr)
			diags = append(diags, valDiags...)
			def.Default = v
		}
		if attr, ok := content.Attributes["description"]; ok {
			v, valDiags := evalString(attr)
			diags = append(diags, valDiags...)
			def.Description = v
		}
		if attr, ok := content.Attributes["requires"]; ok {
			v, valDiags := evalIdentifierList(attr)
			diags = append(diags, valDiags...)
			def.Requires = v
		}

		seen[name] = def
		flags = append(flags, def)
	}

	return flags, diags
}

// parseConflicts decodes every `conflict` block. Each must name exactly two flags.
func parseConflicts(blocks hcl.Blocks) ([]*ConflictDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var conflicts []*ConflictDefinition

	for _, block := range blocks.OfType("conflict") {
		content, contentDiags := block.Body.Content(conflictBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		attr := content.Attributes["flags"]
		names, valDiags := evalIdentifierList(attr)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		if len(names) != 2 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid conflict",
				Detail:   fmt.Sprintf("A conflict names exactly two flags, got %d.", len(names)),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}

		conflicts = append(conflicts, &ConflictDefinition{A: names[0], B: names[1], DeclRange: block.DefRange})
	}

	return conflicts, diags
}
