// Package render writes a resolved configuration in one of the output
// formats: the CPP options header consumed by the model build, an HCL
// override file that feeds back into resolution, JSON for tooling, and a
// plain text table for people.
package render
