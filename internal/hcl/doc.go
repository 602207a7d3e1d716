// Package hcl provides the concrete HCL implementation for the schema
// loading and override reading interfaces defined in the `config` package.
// It is responsible for file parsing, HCL-to-model translation, and
// cty-to-Go conversion of override values.
package hcl
