// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the `package` block, the root of a schema file.
//
// A package corresponds to one options header of the model: EXF has
// EXF_OPTIONS.h, KPP has KPP_OPTIONS.h, and so on. Its master switch is the
// macro the rest of the model defines when the package is compiled in at all.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/pkgopts/internal/ctxlog"
)

// PackageSchema is the fully parsed `package` block.
type PackageSchema struct {
	Name          string
	Description   string
	Master        string
	MasterDefault bool
	Header        string
	Includes      []string
	Flags         []*FlagDefinition
	Conflicts     []*ConflictDefinition
	FSInformation *FSInfo
}

type packageRootSchema struct {
	Packages []*hclPackage `hcl:"package,block"`
}

type hclPackage struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// packageBodySchema is the HCL schema for the body of a `package` block.
var packageBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "master"},
		{Name: "master_default"},
		{Name: "header"},
		{Name: "includes"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "flag", LabelNames: []string{"name"}},
		{Type: "conflict"},
	},
}

// DefaultHeaderName derives the options header name from a package name,
// e.g. "exf" becomes "EXF_OPTIONS.h".
func DefaultHeaderName(pkg string) string {
	return strings.ToUpper(pkg) + "_OPTIONS.h"
}

// DefaultMasterName derives the master switch from a package name, e.g.
// "exf" becomes "ALLOW_EXF".
func DefaultMasterName(pkg string) string {
	return "ALLOW_" + strings.ToUpper(pkg)
}

// ParsePackageFile decodes every `package` block of an already parsed file.
func ParsePackageFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*PackageSchema, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing package schemas from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	root := &packageRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, root)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	packages := make([]*PackageSchema, 0, len(root.Packages))
	for _, parsed := range root.Packages {
		pkg, pkgDiags := parsePackage(parsed, filePath)
		allDiags = append(allDiags, pkgDiags...)
		if pkg != nil {
			packages = append(packages, pkg)
		}
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed package schemas", "file_path", filePath, "count", len(packages))
	return packages, allDiags
}

func parsePackage(parsed *hclPackage, filePath string) (*PackageSchema, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	content, contentDiags := parsed.Body.Content(packageBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, diags
	}

	pkg := &PackageSchema{
		Name:          parsed.Name,
		Master:        DefaultMasterName(parsed.Name),
		MasterDefault: true,
		Header:        DefaultHeaderName(parsed.Name),
		FSInformation: NewFSInfo(filePath),
	}

	if attr, ok := content.Attributes["description"]; ok {
		v, valDiags := evalString(attr)
		diags = append(diags, valDiags...)
		pkg.Description = v
	}
	if attr, ok := content.Attributes["master"]; ok {
		v, valDiags := evalString(attr)
		diags = append(diags, valDiags...)
		if !valDiags.HasErrors() && !IsIdentifier(v) {
			diags = append(diags, invalidIdentifier(v, attr.Expr.Range().Ptr()))
		}
		pkg.Master = v
	}
	if attr, ok := content.Attributes["master_default"]; ok {
		v, valDiags := EvalBool(attr.Expr)
		diags = append(diags, valDiags...)
		pkg.MasterDefault = v
	}
	if attr, ok := content.Attributes["header"]; ok {
		v, valDiags := evalString(attr)
		diags = append(diags, valDiags...)
		pkg.Header = v
	}
	if attr, ok := content.Attributes["includes"]; ok {
		var includes []string
		valDiags := gohcl.DecodeExpression(attr.Expr, nil, &includes)
		diags = append(diags, valDiags...)
		pkg.Includes = includes
	}

	var flagDiags hcl.Diagnostics
	pkg.Flags, flagDiags = parseFlags(content.Blocks)
	diags = append(diags, flagDiags...)

	var conflictDiags hcl.Diagnostics
	pkg.Conflicts, conflictDiags = parseConflicts(content.Blocks)
	diags = append(diags, conflictDiags...)

	for _, f := range pkg.Flags {
		if f.Name == pkg.Master {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Flag shadows master switch",
				Detail:   fmt.Sprintf("Flag '%s' has the same name as the master switch of package '%s'.", f.Name, pkg.Name),
				Subject:  &f.DeclRange,
			})
		}
	}

	return pkg, diags
}
