package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/pkgopts/internal/render"
)

// Command selects what Run does.
type Command string

const (
	// CommandResolve resolves the package options and renders them.
	CommandResolve Command = "resolve"
	// CommandCheck resolves without rendering and reports a summary.
	CommandCheck Command = "check"
	// CommandImport converts an existing options header into a schema.
	CommandImport Command = "import"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command Command

	SchemaPath string // .hcl file or directory; empty means the built-in EXF schema
	Package    string // empty when the schema declares a single package

	OverrideFiles []string
	Assignments   []string // NAME=BOOL
	Disable       bool     // force the master switch off

	Format  string
	OutPath string // empty or "-" for standard output
	Watch   bool

	HeaderPath string // import only

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		cfg.Command = CommandResolve
	}

	switch cfg.Command {
	case CommandResolve, CommandCheck:
		if cfg.HeaderPath != "" {
			return nil, fmt.Errorf("a header path is only used by %s", CommandImport)
		}
	case CommandImport:
		if cfg.HeaderPath == "" {
			return nil, errors.New("import needs the path of an options header")
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.Watch && cfg.Command != CommandResolve {
		return nil, fmt.Errorf("watch mode is only available for %s", CommandResolve)
	}

	if cfg.Format == "" {
		cfg.Format = string(render.FormatHeader)
	}
	if _, err := render.ParseFormat(cfg.Format); err != nil {
		return nil, err
	}

	return &cfg, nil
}
