package flagset

import (
	"errors"
	"fmt"
	"strings"
)

// Predefined errors for the flagset package.
var (
	// ErrCyclicDependency indicates that the declared "requires" edges form a cycle.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrConflictingFlags indicates that both members of a conflict pair ended up enabled.
	ErrConflictingFlags = errors.New("conflicting flags")

	// ErrUnknownFlag indicates a reference to a flag that the schema does not declare.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrDuplicateFlag indicates that a flag name was declared more than once.
	ErrDuplicateFlag = errors.New("duplicate flag")

	// ErrInvalidDeclaration indicates a structurally invalid declaration.
	ErrInvalidDeclaration = errors.New("invalid declaration")
)

// CyclicDependencyError is returned by NewSchema when dependency edges loop.
// Cycle starts and ends with the same flag.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicDependency, strings.Join(e.Cycle, " -> "))
}

func (e *CyclicDependencyError) Unwrap() error { return ErrCyclicDependency }

// ConflictingFlagsError names both members of the violated conflict pair,
// in the order they were declared.
type ConflictingFlagsError struct {
	A, B string
}

func (e *ConflictingFlagsError) Error() string {
	return fmt.Sprintf("%s: %s and %s cannot both be enabled", ErrConflictingFlags, e.A, e.B)
}

func (e *ConflictingFlagsError) Unwrap() error { return ErrConflictingFlags }

// UnknownFlagError names the identifier that is not part of the schema.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownFlag, e.Name)
}

func (e *UnknownFlagError) Unwrap() error { return ErrUnknownFlag }
