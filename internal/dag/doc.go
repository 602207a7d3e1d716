// Package dag holds the dependency graph between declared flags. It is built
// once while a schema is validated and is read-only afterwards: the resolver
// walks Dependencies to reach the closure, and DetectCycles rejects schemas
// whose "requires" edges loop back on themselves.
//
// Every query that returns a list of IDs returns it sorted, so anything
// derived from the graph (error messages, topological order) is identical
// from run to run.
package dag
