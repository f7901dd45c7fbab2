package types

import "errors"

// Theme loading errors. The lookup engine never returns errors; a failed
// lookup is reported as an absent path.
var (
	ErrThemeNotFound        = errors.New("theme not found")
	ErrInvalidTheme         = errors.New("invalid theme")
	ErrInvalidDirectoryType = errors.New("invalid directory type")
	ErrInheritanceCycle     = errors.New("theme inheritance cycle")
)

// Size and scale errors, from theme directories and lookup requests.
var (
	ErrInvalidSize  = errors.New("invalid size")
	ErrInvalidScale = errors.New("invalid scale")
)
