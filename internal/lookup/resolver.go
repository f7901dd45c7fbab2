// Package lookup resolves icon names to files following the freedesktop.org
// icon lookup algorithm: the selected theme, its parents, then hicolor, then
// (for ranked name lists) unthemed icons in the base directories.
// Implements: freedesktop.org Icon Theme 0.13 (§ Icon Lookup, § Implementation Notes).
package lookup

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/iconlookup/internal/paths"
	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

// DefaultExtensions lists the icon file extensions in preference order.
var DefaultExtensions = []string{"png", "svg", "xpm"}

// MaxInheritanceDepth bounds recursion through Inherits.
const MaxInheritanceDepth = 64

// Resolver answers icon lookups. It is immutable after New and safe for
// concurrent use as long as the themes passed to it are not mutated.
type Resolver struct {
	baseDirs     []string
	extensions   []string
	checker      types.FileChecker
	defaultTheme *types.Theme
	logger       *log.Logger
	maxDepth     int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseDirs sets the base directories, in search order.
func WithBaseDirs(dirs ...string) Option {
	return func(r *Resolver) {
		r.baseDirs = paths.Dedupe(dirs)
	}
}

// WithExtensions sets the file extensions tried, in order, without dots.
// An empty list keeps DefaultExtensions.
func WithExtensions(exts ...string) Option {
	return func(r *Resolver) {
		if len(exts) > 0 {
			r.extensions = slices.Clone(exts)
		}
	}
}

// WithFileChecker sets how candidate paths are tested for presence.
func WithFileChecker(c types.FileChecker) Option {
	return func(r *Resolver) {
		if c != nil {
			r.checker = c
		}
	}
}

// WithDefaultTheme replaces the empty in-memory hicolor theme that is
// searched after the user's theme chain, typically with the hicolor theme
// loaded from disk.
func WithDefaultTheme(theme *types.Theme) Option {
	return func(r *Resolver) {
		r.defaultTheme = theme
	}
}

// WithLogger sets the logger used for debug tracing of lookups.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMaxDepth overrides MaxInheritanceDepth.
func WithMaxDepth(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxDepth = n
		}
	}
}

// New returns a Resolver. Without options it searches
// paths.DefaultBaseDirectories on the host filesystem.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		extensions: slices.Clone(DefaultExtensions),
		maxDepth:   MaxInheritanceDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.baseDirs == nil {
		r.baseDirs = paths.DefaultBaseDirectories()
	}
	if r.checker == nil {
		r.checker = NewOSChecker()
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// BaseDirs returns a copy of the base directories searched.
func (r *Resolver) BaseDirs() []string {
	return slices.Clone(r.baseDirs)
}

// FindIcon returns the file for icon at size and scale. It searches theme
// and its ancestors, then the default theme. A nil theme searches the
// default theme only. ok is false when no file was found.
func (r *Resolver) FindIcon(icon string, size, scale int, theme *types.Theme) (string, bool) {
	if path, ok := r.findIconHelper(icon, size, scale, theme, r.newWalk(), 0); ok {
		return path, true
	}
	return r.findIconHelper(icon, size, scale, r.fallbackTheme(), r.newWalk(), 0)
}

// FindBestIcon returns the file for the first of icons available in the
// nearest theme. Every name is tried in a theme before its parents are, and
// after the default theme the base directories are searched for unthemed
// icons, name by name.
func (r *Resolver) FindBestIcon(icons []string, size, scale int, theme *types.Theme) (string, bool) {
	if path, ok := r.findBestIconHelper(icons, size, scale, theme, r.newWalk(), 0); ok {
		return path, true
	}
	if path, ok := r.findBestIconHelper(icons, size, scale, r.fallbackTheme(), r.newWalk(), 0); ok {
		return path, true
	}
	for _, icon := range icons {
		if path, ok := r.lookupFallbackIcon(icon); ok {
			return path, true
		}
	}
	return "", false
}

// fallbackTheme returns the configured default theme, or a fresh empty
// hicolor theme.
func (r *Resolver) fallbackTheme() *types.Theme {
	if r.defaultTheme != nil {
		return r.defaultTheme
	}
	return types.NewDefaultTheme()
}
