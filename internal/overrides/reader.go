package overrides

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/specialistvlad/pkgopts/internal/ctxlog"
)

// AssignmentOrigin is the origin recorded for command-line assignments.
const AssignmentOrigin = "-set"

// Reader reads override files with the first parser supporting their
// extension.
type Reader struct {
	parsers []Parser
}

var _ config.OverrideReader = (*Reader)(nil)

// NewReader returns a Reader for every built-in format. Extra parsers are
// consulted before the built-in ones.
func NewReader(extra ...Parser) *Reader {
	parsers := append([]Parser(nil), extra...)
	parsers = append(parsers, HCLParser{}, YAMLParser{}, EnvParser{}, HeaderParser{})
	return &Reader{parsers: parsers}
}

// ReadOverrides reads one override file. It implements config.OverrideReader.
func (r *Reader) ReadOverrides(ctx context.Context, path string) (map[string]bool, error) {
	parser, err := r.parserFor(path)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	values, err := parser.Parse(ctx, src, path)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Read override file.", "path", path, "count", len(values))
	return values, nil
}

func (r *Reader) parserFor(path string) (Parser, error) {
	ext := filepath.Ext(path)
	for _, p := range r.parsers {
		if p.SupportsFileExtension(ext) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Collect reads files with r in order and then applies the NAME=BOOL
// assignments. Later sources win.
func Collect(ctx context.Context, r config.OverrideReader, files []string, assignments []string) (*config.Overrides, error) {
	ov := config.NewOverrides()
	for _, path := range files {
		values, err := r.ReadOverrides(ctx, path)
		if err != nil {
			return nil, err
		}
		ov.Merge(values, path)
	}
	for _, a := range assignments {
		name, value, err := ParseAssignment(a)
		if err != nil {
			return nil, err
		}
		ov.Set(name, value, AssignmentOrigin)
	}
	ctxlog.FromContext(ctx).Debug("Collected overrides.", "files", len(files), "assignments", len(assignments), "names", ov.Len())
	return ov, nil
}
