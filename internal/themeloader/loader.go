// Package themeloader loads icon themes from index.theme files under the
// base directories and resolves their inheritance.
// Implements: freedesktop.org Icon Theme 0.13 (§ File Formats, § Icon Lookup:
//
//	theme inheritance).
package themeloader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/mesh-intelligence/iconlookup/internal/paths"
	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

// Loader reads themes from a filesystem. Loaded themes are kept by name, so
// a parent shared by several themes is parsed once and the same *Theme is
// returned for every later Load of that name.
type Loader struct {
	fs       afero.Fs
	baseDirs []string
	logger   *log.Logger

	mu     sync.Mutex
	loaded map[string]*types.Theme
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger for skipped directories and missing parents.
func WithLogger(l *log.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// New returns a Loader that searches baseDirs, in order, on fs.
func New(fs afero.Fs, baseDirs []string, opts ...Option) *Loader {
	l := &Loader{
		fs:       fs,
		baseDirs: paths.Dedupe(baseDirs),
		logger:   log.New(io.Discard),
		loaded:   make(map[string]*types.Theme),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the theme called name with its parents attached. The first
// base directory holding {name}/index.theme wins. Parents that are not
// installed or whose index.theme is invalid are skipped; an inheritance
// cycle is an error.
func (l *Loader) Load(name string) (*types.Theme, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.load(name, nil)
}

func (l *Loader) load(name string, chain []string) (*types.Theme, error) {
	if slices.Contains(chain, name) {
		return nil, fmt.Errorf("%w: %s", types.ErrInheritanceCycle, strings.Join(append(chain, name), " -> "))
	}
	if theme, ok := l.loaded[name]; ok {
		return theme, nil
	}

	index, err := l.findIndex(name)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(l.fs, index)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", index, err)
	}

	theme, parents, err := Parse(name, data, l.logger)
	if err != nil {
		return nil, err
	}

	next := append(slices.Clone(chain), name)
	for _, p := range parents {
		parent, err := l.load(p, next)
		if errors.Is(err, types.ErrThemeNotFound) {
			l.logger.Debug("parent theme not installed", "theme", name, "parent", p)
			continue
		}
		if errors.Is(err, types.ErrInvalidTheme) {
			l.logger.Warn("skipping invalid parent theme", "theme", name, "parent", p, "err", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		theme.Inherits = append(theme.Inherits, parent)
	}

	l.loaded[name] = theme
	return theme, nil
}

// findIndex returns the path of the first {base}/{name}/index.theme.
func (l *Loader) findIndex(name string) (string, error) {
	if err := (&types.Theme{Name: name}).Validate(); err != nil {
		return "", err
	}
	for _, base := range l.baseDirs {
		p := filepath.Join(base, name, IndexFile)
		if ok, _ := afero.Exists(l.fs, p); ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", types.ErrThemeNotFound, name)
}

// List returns the names of installed themes: subdirectories of the base
// directories that hold an index.theme. Names appear once, in the order
// they are first found.
func (l *Loader) List() []string {
	var names []string
	seen := make(map[string]bool)
	for _, base := range l.baseDirs {
		entries, err := afero.ReadDir(l.fs, base)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if seen[e.Name()] {
				continue
			}
			if ok, _ := afero.Exists(l.fs, filepath.Join(base, e.Name(), IndexFile)); ok {
				seen[e.Name()] = true
				names = append(names, e.Name())
			}
		}
	}
	return names
}

// UserSelectedTheme returns the theme name to use: configured when set,
// otherwise $ICON_THEME, otherwise hicolor.
func UserSelectedTheme(configured string) string {
	if configured != "" {
		return configured
	}
	if e, err := paths.LoadEnv(); err == nil && e.IconTheme != "" {
		return e.IconTheme
	}
	return types.DefaultThemeName
}
