package config

import (
	"context"
)

// Loader is the interface for a format-specific schema loader.
type Loader interface {
	// Load reads every schema file found on the given paths and translates
	// them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// OverrideReader reads named boolean overrides from a single file.
type OverrideReader interface {
	ReadOverrides(ctx context.Context, path string) (map[string]bool, error)
}
