package flagset

// Flag is a named boolean switch with its declared default.
type Flag struct {
	Name        string
	Default     bool
	Description string
}

// Dependency says that enabling From forces To on.
type Dependency struct {
	From string
	To   string
}

// Conflict is an unordered pair of flags that must never both be enabled.
type Conflict struct {
	A string
	B string
}

// Declaration is the static description of one package's flags. Flag order
// is significant: it is the order flags are reported and rendered in.
type Declaration struct {
	// Package is the name of the package the flags belong to, e.g. "exf".
	Package string
	// Master is the name of the switch gating the whole package, e.g. "ALLOW_EXF".
	Master       string
	Description  string
	Flags        []Flag
	Dependencies []Dependency
	Conflicts    []Conflict
}
