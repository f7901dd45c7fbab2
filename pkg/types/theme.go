package types

import (
	"fmt"
	"strings"
)

// Defaults applied when a directory omits the corresponding key.
const (
	DefaultScale     = 1
	DefaultThreshold = 2
)

// DefaultThemeName is the theme every lookup falls back to last.
const DefaultThemeName = "hicolor"

// DirectoryType is the size policy of a theme directory. The zero value is
// Threshold, which is the policy for directories that declare no Type key.
type DirectoryType int

const (
	Threshold DirectoryType = iota
	Fixed
	Scalable
)

var directoryTypeNames = map[DirectoryType]string{
	Threshold: "Threshold",
	Fixed:     "Fixed",
	Scalable:  "Scalable",
}

func (t DirectoryType) String() string {
	if name, ok := directoryTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DirectoryType(%d)", int(t))
}

// ParseDirectoryType maps an index.theme Type value to a DirectoryType.
// Values are case-sensitive; anything else returns ErrInvalidDirectoryType.
func ParseDirectoryType(s string) (DirectoryType, error) {
	for t, name := range directoryTypeNames {
		if name == s {
			return t, nil
		}
	}
	return Threshold, fmt.Errorf("%w: %q", ErrInvalidDirectoryType, s)
}

// MarshalText lets JSON and YAML output use the index.theme spelling.
func (t DirectoryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (t *DirectoryType) UnmarshalText(text []byte) error {
	parsed, err := ParseDirectoryType(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ThemeDirectory is one directory's size policy within a theme. Optional keys
// are pointers; use the Effective accessors to read them with defaults applied.
type ThemeDirectory struct {
	Name      string        `json:"name" yaml:"name"`
	Size      int           `json:"size" yaml:"size"`
	Scale     *int          `json:"scale,omitempty" yaml:"scale,omitempty"`
	Context   string        `json:"context,omitempty" yaml:"context,omitempty"`
	Type      DirectoryType `json:"type" yaml:"type"`
	MinSize   *int          `json:"min_size,omitempty" yaml:"min_size,omitempty"`
	MaxSize   *int          `json:"max_size,omitempty" yaml:"max_size,omitempty"`
	Threshold *int          `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// EffectiveScale returns Scale, or DefaultScale when unset.
func (d ThemeDirectory) EffectiveScale() int {
	if d.Scale != nil {
		return *d.Scale
	}
	return DefaultScale
}

// EffectiveMinSize returns MinSize, or Size when unset.
func (d ThemeDirectory) EffectiveMinSize() int {
	if d.MinSize != nil {
		return *d.MinSize
	}
	return d.Size
}

// EffectiveMaxSize returns MaxSize, or Size when unset.
func (d ThemeDirectory) EffectiveMaxSize() int {
	if d.MaxSize != nil {
		return *d.MaxSize
	}
	return d.Size
}

// EffectiveThreshold returns Threshold, or DefaultThreshold when unset.
func (d ThemeDirectory) EffectiveThreshold() int {
	if d.Threshold != nil {
		return *d.Threshold
	}
	return DefaultThreshold
}

// Validate rejects negative sizes and non-positive scales. It does not
// check that MinSize <= Size <= MaxSize.
func (d ThemeDirectory) Validate() error {
	if d.Size < 0 {
		return fmt.Errorf("%w: directory %q size %d", ErrInvalidSize, d.Name, d.Size)
	}
	if d.EffectiveScale() < 1 {
		return fmt.Errorf("%w: directory %q scale %d", ErrInvalidScale, d.Name, d.EffectiveScale())
	}
	optional := []struct {
		key string
		val *int
	}{
		{"MinSize", d.MinSize},
		{"MaxSize", d.MaxSize},
		{"Threshold", d.Threshold},
	}
	for _, o := range optional {
		if o.val != nil && *o.val < 0 {
			return fmt.Errorf("%w: directory %q %s %d", ErrInvalidSize, d.Name, o.key, *o.val)
		}
	}
	return nil
}

// Theme is a named, inheritable set of icon directories. Inherits is an
// ordered list of parents; together they form a tree rooted at this theme.
type Theme struct {
	Name        string           `json:"name" yaml:"name"`
	DisplayName string           `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Comment     string           `json:"comment,omitempty" yaml:"comment,omitempty"`
	Example     string           `json:"example,omitempty" yaml:"example,omitempty"`
	Hidden      bool             `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Inherits    []*Theme         `json:"inherits,omitempty" yaml:"inherits,omitempty"`
	Directories []ThemeDirectory `json:"directories" yaml:"directories"`
}

// NewDefaultTheme returns an in-memory hicolor theme with no directories and
// no parents.
func NewDefaultTheme() *Theme {
	return &Theme{
		Name:    DefaultThemeName,
		Comment: "Default icon theme",
	}
}

// Validate checks that the theme has a usable name. A name is used as a path
// segment, so it must not be empty or contain a path separator.
func (t *Theme) Validate() error {
	if t == nil || t.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTheme)
	}
	if strings.ContainsAny(t.Name, `/\`) || t.Name == "." || t.Name == ".." {
		return fmt.Errorf("%w: name %q is not a single path segment", ErrInvalidTheme, t.Name)
	}
	return nil
}

// Int returns a pointer to v, for filling optional ThemeDirectory fields.
func Int(v int) *int {
	return &v
}
