// Package iconlookup is the public API for resolving freedesktop.org icon
// names to image files. It exposes the lookup engine and the theme loader
// while keeping their implementations internal.
//
// Example:
//
//	theme, err := iconlookup.LoadTheme(iconlookup.UserSelectedTheme(""))
//	if err != nil {
//	    theme = nil // search hicolor only
//	}
//	path, ok := iconlookup.FindIcon("document-open", 24, 1, theme)
//
// Implements: freedesktop.org Icon Theme 0.13 (§ Icon Lookup).
package iconlookup

import (
	"sync"

	"github.com/spf13/afero"

	"github.com/mesh-intelligence/iconlookup/internal/lookup"
	"github.com/mesh-intelligence/iconlookup/internal/paths"
	"github.com/mesh-intelligence/iconlookup/internal/themeloader"
	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

// Version is the module release.
const Version = "0.1.0"

// Resolver answers icon lookups; see New.
type Resolver = lookup.Resolver

// Option configures a Resolver.
type Option = lookup.Option

// Resolver options.
var (
	WithBaseDirs     = lookup.WithBaseDirs
	WithExtensions   = lookup.WithExtensions
	WithFileChecker  = lookup.WithFileChecker
	WithDefaultTheme = lookup.WithDefaultTheme
	WithLogger       = lookup.WithLogger
	WithMaxDepth     = lookup.WithMaxDepth
)

// New returns a Resolver. Without options it searches the XDG icon base
// directories on the host filesystem.
func New(opts ...Option) *Resolver {
	return lookup.New(opts...)
}

// defaultResolver searches the default base directories with the installed
// hicolor theme, when there is one, as the default theme.
var defaultResolver = sync.OnceValue(func() *Resolver {
	dirs := paths.DefaultBaseDirectories()
	opts := []Option{WithBaseDirs(dirs...)}
	if hicolor, err := themeloader.New(afero.NewOsFs(), dirs).Load(types.DefaultThemeName); err == nil {
		opts = append(opts, WithDefaultTheme(hicolor))
	}
	return lookup.New(opts...)
})

// FindIcon looks icon up in theme, its parents, and hicolor using the
// default base directories. A nil theme searches hicolor only. The base
// directories and hicolor are read once, on first use. ok is false when
// nothing was found.
func FindIcon(icon string, size, scale int, theme *types.Theme) (string, bool) {
	return defaultResolver().FindIcon(icon, size, scale, theme)
}

// FindBestIcon returns the first of icons found, preferring any name in a
// theme over a parent theme, and falling back to unthemed icons.
func FindBestIcon(icons []string, size, scale int, theme *types.Theme) (string, bool) {
	return defaultResolver().FindBestIcon(icons, size, scale, theme)
}

// LoadTheme loads an installed theme and its parents from the default base
// directories. It returns an error wrapping types.ErrThemeNotFound when the
// theme is not installed.
func LoadTheme(name string) (*types.Theme, error) {
	return themeloader.New(afero.NewOsFs(), paths.DefaultBaseDirectories()).Load(name)
}

// UserSelectedTheme returns configured if set, else $ICON_THEME, else hicolor.
func UserSelectedTheme(configured string) string {
	return themeloader.UserSelectedTheme(configured)
}
