// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of package option
// schemas written in HCL. Its purpose is to turn the user's `.hcl` schema
// files into a strongly-typed, in-memory description of every package, its
// master switch, and its flags, with source locations kept for diagnostics.
//
// # Core Concepts
//
//   - PackageSchema: one `package "<name>" { ... }` block. It names the
//     master switch (e.g. ALLOW_EXF), the generated header, and holds the
//     package's flags and conflicts.
//
//   - FlagDefinition: one `flag "<NAME>" { ... }` block with its default,
//     description and `requires` list.
//
//   - ConflictDefinition: one `conflict { flags = ["A", "B"] }` block.
//
//   - FSInfo: the file every package was read from.
//
// # What this package checks
//
// Only the shape of the files: block structure, attribute types, identifier
// syntax, duplicate flag blocks inside one package and the arity of
// conflicts. Whether `requires` targets exist or dependencies loop is left to
// the resolver's schema validation, which sees the complete package.
package model
