// Package dircache provides a types.FileChecker that answers from cached
// directory listings instead of a stat per candidate path.
//
// Listings are invalidated through the mtime of the base directory that
// contains them: installers touch the top-level icon directory after
// changing a theme. The mtime is checked at most once per window, so a
// change becomes visible within one window of the next lookup.
// Implements: freedesktop.org Icon Theme 0.13 (§ Implementation Notes).
package dircache

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/erni27/imcache"
	"github.com/spf13/afero"

	"github.com/mesh-intelligence/iconlookup/internal/paths"
)

// DefaultWindow is the minimum time between two mtime checks of a base
// directory.
const DefaultWindow = 5 * time.Second

// rootStamp is what is known about one base directory.
type rootStamp struct {
	mtime      time.Time
	checked    time.Time
	generation uint64
}

// listing is the set of file names in one directory, read while its base
// directory was at generation.
type listing struct {
	generation uint64
	names      map[string]struct{}
}

// Checker is safe for concurrent use.
type Checker struct {
	fs     afero.Fs
	roots  []string
	window time.Duration
	now    func() time.Time

	mu     sync.Mutex
	stamps map[string]rootStamp

	listings *imcache.Cache[string, listing]
}

// Option configures a Checker.
type Option func(*Checker)

// WithWindow sets how long a base directory mtime is trusted.
func WithWindow(d time.Duration) Option {
	return func(c *Checker) {
		if d >= 0 {
			c.window = d
		}
	}
}

// New returns a Checker over fs for paths under roots. Paths outside every
// root are stat'ed directly and not cached.
func New(fs afero.Fs, roots []string, opts ...Option) *Checker {
	c := &Checker{
		fs:       fs,
		roots:    paths.Dedupe(roots),
		window:   DefaultWindow,
		now:      time.Now,
		stamps:   make(map[string]rootStamp),
		listings: imcache.New[string, listing](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists implements types.FileChecker.
func (c *Checker) Exists(path string) bool {
	path = filepath.Clean(path)
	dir, name := filepath.Split(path)
	dir = filepath.Clean(dir)

	root := c.rootOf(dir)
	if root == "" {
		info, err := c.fs.Stat(path)
		return err == nil && !info.IsDir()
	}

	gen := c.refresh(root)
	l, ok := c.listings.Get(dir)
	if !ok || l.generation != gen {
		l = c.scan(dir, gen)
		c.listings.Set(dir, l, imcache.WithNoExpiration())
	}
	_, ok = l.names[name]
	return ok
}

// Invalidate drops every cached listing and mtime.
func (c *Checker) Invalidate() {
	c.mu.Lock()
	c.stamps = make(map[string]rootStamp)
	c.mu.Unlock()
	c.listings.RemoveAll()
}

// refresh returns the current generation of root, re-reading its mtime when
// the last check is older than the window. A changed mtime starts a new
// generation, which makes every listing under root stale.
func (c *Checker) refresh(root string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	st, ok := c.stamps[root]
	if ok && now.Sub(st.checked) < c.window {
		return st.generation
	}

	mtime := c.mtime(root)
	switch {
	case !ok:
		st = rootStamp{mtime: mtime, generation: 1}
	case !mtime.Equal(st.mtime):
		st.mtime = mtime
		st.generation++
	}
	st.checked = now
	c.stamps[root] = st
	return st.generation
}

// mtime returns the modification time of dir, or the zero time if it
// cannot be stat'ed.
func (c *Checker) mtime(dir string) time.Time {
	info, err := c.fs.Stat(dir)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// scan reads the file names in dir. A missing or unreadable directory is an
// empty listing.
func (c *Checker) scan(dir string, gen uint64) listing {
	l := listing{generation: gen, names: make(map[string]struct{})}
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return l
	}
	for _, e := range entries {
		if !e.IsDir() {
			l.names[e.Name()] = struct{}{}
		}
	}
	return l
}

// rootOf returns the longest root containing dir, or "" if none does.
func (c *Checker) rootOf(dir string) string {
	best := ""
	for _, r := range c.roots {
		prefix := r
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		if dir != r && !strings.HasPrefix(dir, prefix) {
			continue
		}
		if len(r) > len(best) {
			best = r
		}
	}
	return best
}
