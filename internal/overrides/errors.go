package overrides

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported override file format")
	ErrFailedToReadFile  = errors.New("failed to read override file")
	ErrFailedToParse     = errors.New("failed to parse override file")
	ErrInvalidAssignment = errors.New("invalid assignment, expected NAME=BOOL")
	ErrInvalidValue      = errors.New("invalid boolean value")
	ErrReadingCancelled  = errors.New("reading overrides cancelled")
)
