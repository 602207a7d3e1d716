// Package flagset resolves a package's declared option flags into the fixed
// set of enabled features that downstream setup code branches on.
//
// A Declaration lists the flags with their defaults, "requires" edges and
// conflict pairs. NewSchema validates it once (unknown names, duplicates,
// cycles) and Schema.Resolve turns a master switch plus caller overrides
// into a Resolved value:
//
//	schema, err := flagset.NewSchema(decl)
//	if err != nil {
//		return err // *CyclicDependencyError, *UnknownFlagError, ...
//	}
//	resolved, err := schema.Resolve(true, map[string]bool{"ALLOW_RUNOFF": true})
//	if err != nil {
//		return err // *ConflictingFlagsError, *UnknownFlagError
//	}
//	on, _ := resolved.IsEnabled("ALLOW_RUNOFF")
//
// Resolution is pure: no I/O, no logging, no shared mutable state. The same
// inputs always produce the same Resolved value or the same error.
package flagset
