package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/pkgopts/internal/app"
	"github.com/specialistvlad/pkgopts/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Defaults are option defaults taken from the environment.
type Defaults struct {
	LogLevel  string `env:"PKGOPTS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PKGOPTS_LOG_FORMAT" envDefault:"text"`
	Schema    string `env:"PKGOPTS_SCHEMA"`
	Package   string `env:"PKGOPTS_PACKAGE"`
	Format    string `env:"PKGOPTS_FORMAT" envDefault:"header"`
}

// ParseDefaults reads Defaults from environ. A nil environ means the
// process environment.
func ParseDefaults(environ map[string]string) (Defaults, error) {
	var d Defaults
	if err := env.ParseWithOptions(&d, env.Options{Environment: environ}); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var commands = map[string]app.Command{
	string(app.CommandResolve): app.CommandResolve,
	string(app.CommandCheck):   app.CommandCheck,
	string(app.CommandImport):  app.CommandImport,
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// environ supplies option defaults; nil means the process environment.
func Parse(args []string, output io.Writer, environ map[string]string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := ParseDefaults(environ)
	if err != nil {
		return nil, false, usageError("invalid environment: %v", err)
	}

	command := app.CommandResolve
	if len(args) > 0 {
		if c, ok := commands[args[0]]; ok {
			command = c
			args = args[1:]
		}
	}

	flagSet := flag.NewFlagSet("pkgopts "+string(command), flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pkgopts - resolve package option flags into a CPP options header.

Usage:
  pkgopts [resolve] [options] [SCHEMA_PATH]
  pkgopts check [options] [SCHEMA_PATH]
  pkgopts import [options] HEADER

Arguments:
  SCHEMA_PATH
    A .hcl schema file or a directory of them. Without one the built-in
    EXF schema is used.
  HEADER
    An existing FOO_OPTIONS.h to convert into a schema.

Options:
`)
		flagSet.PrintDefaults()
	}

	var overrideFiles, assignments stringList
	schemaFlag := flagSet.String("schema", defaults.Schema, "Path to the schema file or directory. Env: PKGOPTS_SCHEMA.")
	packageFlag := flagSet.String("package", defaults.Package, "Package to resolve when the schema declares several. Env: PKGOPTS_PACKAGE.")
	flagSet.Var(&overrideFiles, "overrides", "Override file (.hcl, .yaml, .yml, .env or .h). Repeatable; later files win.")
	flagSet.Var(&assignments, "set", "Override one flag, NAME=BOOL. Repeatable; applied after override files.")
	disableFlag := flagSet.Bool("disable", false, "Force the package master switch off.")
	formatFlag := flagSet.String("format", defaults.Format, "Output format: "+strings.Join(render.Formats(), ", ")+". Env: PKGOPTS_FORMAT.")
	outFlag := flagSet.String("out", "", "Output file. Empty or '-' writes to standard output.")
	watchFlag := flagSet.Bool("watch", false, "Re-resolve whenever an input file changes.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.", "command", command)

	cfg := app.Config{
		Command:       command,
		SchemaPath:    *schemaFlag,
		Package:       *packageFlag,
		OverrideFiles: overrideFiles,
		Assignments:   assignments,
		Disable:       *disableFlag,
		Format:        *formatFlag,
		OutPath:       *outFlag,
		Watch:         *watchFlag,
	}

	if flagSet.NArg() > 1 {
		return nil, false, usageError("too many arguments: %v", flagSet.Args())
	}
	if flagSet.NArg() == 1 {
		if command == app.CommandImport {
			cfg.HeaderPath = flagSet.Arg(0)
		} else {
			cfg.SchemaPath = flagSet.Arg(0)
		}
	}
	slog.Debug("Input paths determined.", "schema", cfg.SchemaPath, "header", cfg.HeaderPath)

	cfg.LogFormat = strings.ToLower(*logFormatFlag)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(*logLevelFlag)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
