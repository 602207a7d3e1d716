package overrides

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Parser decodes one override file format.
type Parser interface {
	// Parse decodes src. filename is used in error messages only.
	Parse(ctx context.Context, src []byte, filename string) (map[string]bool, error)

	// SupportsFileExtension reports whether the parser handles ext. The
	// extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParseBool accepts the spellings of true and false used in override files:
// everything strconv.ParseBool accepts plus on/off and yes/no, in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return b, nil
}

// ParseAssignment splits a NAME=BOOL command-line assignment. A bare NAME
// means NAME=true.
func ParseAssignment(s string) (string, bool, error) {
	name, raw, hasValue := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidAssignment, s)
	}
	if !hasValue {
		return name, true, nil
	}
	v, err := ParseBool(raw)
	if err != nil {
		return "", false, fmt.Errorf("%w: %q: %w", ErrInvalidAssignment, s, err)
	}
	return name, v, nil
}

func supportsExt(ext string, want ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, w := range want {
		if strings.EqualFold(ext, w) {
			return true
		}
	}
	return false
}
