// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file discovers schema files on disk and aggregates their packages.
//
// Users may keep one package per file or several packages in one file, and
// may point the tool at a single file or a whole directory of them. Loading
// consolidates everything into one list so a package name is unique across
// the workspace.
package model

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pkgopts/internal/ctxlog"
	"github.com/specialistvlad/pkgopts/internal/fsutil"
)

// SchemaFileExtension is the extension of schema files searched in directories.
const SchemaFileExtension = ".hcl"

// LoadPackagesRecursively finds and parses all schema files under the given
// paths. Each path may be a file or a directory.
func LoadPackagesRecursively(ctx context.Context, paths ...string) ([]*PackageSchema, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	var packages []*PackageSchema
	for _, path := range paths {
		logger.Debug("Loading package schemas from path", "path", path)

		files, err := fsutil.FindFilesByExtension(path, SchemaFileExtension)
		if err != nil {
			return nil, fmt.Errorf("failed to find schema files in %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No schema files found in path", "path", path)
			continue
		}

		for _, file := range files {
			hclFile, diags := parser.ParseHCLFile(file)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse schema file %s: %w", file, diags)
			}
			pkgs, diags := ParsePackageFile(ctx, hclFile, file)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode schema file %s: %w", file, diags)
			}
			packages = append(packages, pkgs...)
		}
	}

	if err := checkUniquePackages(packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// ParsePackageSource parses schema text that does not live on disk, such as
// an embedded built-in schema. filename is used in diagnostics only.
func ParsePackageSource(ctx context.Context, src []byte, filename string) ([]*PackageSchema, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema %s: %w", filename, diags)
	}
	pkgs, diags := ParsePackageFile(ctx, hclFile, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode schema %s: %w", filename, diags)
	}
	if err := checkUniquePackages(pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func checkUniquePackages(packages []*PackageSchema) error {
	var diags hcl.Diagnostics
	seen := make(map[string]*PackageSchema, len(packages))
	for _, p := range packages {
		if prev, ok := seen[p.Name]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate package definition",
				Detail: fmt.Sprintf("Package '%s' is declared in both %s and %s.",
					p.Name, prev.FSInformation.FilePath, p.FSInformation.FilePath),
			})
			continue
		}
		seen[p.Name] = p
	}
	if diags.HasErrors() {
		return diags
	}
	return nil
}
