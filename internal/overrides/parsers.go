package overrides

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/pkgopts/internal/cppopts"
	hclconfig "github.com/specialistvlad/pkgopts/internal/hcl"
	"gopkg.in/yaml.v3"
)

// HCLParser reads top-level HCL attributes.
type HCLParser struct{}

func (HCLParser) Parse(ctx context.Context, src []byte, filename string) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrReadingCancelled, err)
	}
	values, err := hclconfig.ParseOverrides(src, filename)
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return values, nil
}

func (HCLParser) SupportsFileExtension(ext string) bool { return supportsExt(ext, "hcl") }

// YAMLParser reads a flat YAML mapping of names to booleans. Quoted values
// are accepted when ParseBool understands them.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, src []byte, filename string) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrReadingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(src, &data); err != nil {
		return nil, errors.Join(ErrFailedToParse, fmt.Errorf("%s: %w", filename, err))
	}

	values := make(map[string]bool, len(data))
	for name, raw := range data {
		switch v := raw.(type) {
		case bool:
			values[name] = v
		case string:
			b, err := ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", filename, name, err)
			}
			values[name] = b
		default:
			return nil, fmt.Errorf("%s: %s: %w: got %T", filename, name, ErrInvalidValue, raw)
		}
	}
	return values, nil
}

func (YAMLParser) SupportsFileExtension(ext string) bool { return supportsExt(ext, "yaml", "yml") }

// EnvParser reads dotenv files.
type EnvParser struct{}

func (EnvParser) Parse(ctx context.Context, src []byte, filename string) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrReadingCancelled, err)
	}

	env, err := godotenv.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, fmt.Errorf("%s: %w", filename, err))
	}

	values := make(map[string]bool, len(env))
	for name, raw := range env {
		b, err := ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", filename, name, err)
		}
		values[name] = b
	}
	return values, nil
}

func (EnvParser) SupportsFileExtension(ext string) bool { return supportsExt(ext, "env") }

// HeaderParser takes values from an existing options header, so a
// hand-edited FOO_OPTIONS.h can drive resolution. The master #ifdef guard
// is not a value; the master switch is set in PACKAGES_CONFIG.h.
type HeaderParser struct{}

func (HeaderParser) Parse(ctx context.Context, src []byte, filename string) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrReadingCancelled, err)
	}
	h, err := cppopts.ParseHeader(bytes.NewReader(src), filename)
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return h.Values(), nil
}

func (HeaderParser) SupportsFileExtension(ext string) bool { return supportsExt(ext, "h") }
