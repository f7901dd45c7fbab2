package lookup

import "github.com/mesh-intelligence/iconlookup/pkg/types"

// walk guards one traversal of an inheritance tree. A theme reached twice
// (a shared ancestor, or a cycle left by a faulty loader) is searched once,
// and nothing deeper than max levels is searched at all.
type walk struct {
	seen map[*types.Theme]struct{}
	max  int
}

func (r *Resolver) newWalk() *walk {
	return &walk{seen: make(map[*types.Theme]struct{}), max: r.maxDepth}
}

func (r *Resolver) enter(w *walk, theme *types.Theme, depth int) bool {
	if theme == nil {
		return false
	}
	if depth > w.max {
		r.logger.Warn("inheritance too deep, skipping", "theme", theme.Name, "depth", depth)
		return false
	}
	if _, ok := w.seen[theme]; ok {
		return false
	}
	w.seen[theme] = struct{}{}
	return true
}

// findIconHelper searches theme, then each parent in declared order,
// depth first. It stops at the first theme that yields any file, exact or
// closest, and never compares results across themes.
func (r *Resolver) findIconHelper(icon string, size, scale int, theme *types.Theme, w *walk, depth int) (string, bool) {
	if !r.enter(w, theme, depth) {
		return "", false
	}

	if path, ok := r.lookupIcon(icon, size, scale, theme); ok {
		return path, true
	}

	for _, parent := range theme.Inherits {
		if path, ok := r.findIconHelper(icon, size, scale, parent, w, depth+1); ok {
			return path, true
		}
	}
	return "", false
}

// findBestIconHelper is findIconHelper for a ranked list of names: at each
// theme every name is tried before any parent is.
func (r *Resolver) findBestIconHelper(icons []string, size, scale int, theme *types.Theme, w *walk, depth int) (string, bool) {
	if !r.enter(w, theme, depth) {
		return "", false
	}

	for _, icon := range icons {
		if path, ok := r.lookupIcon(icon, size, scale, theme); ok {
			return path, true
		}
	}

	for _, parent := range theme.Inherits {
		if path, ok := r.findBestIconHelper(icons, size, scale, parent, w, depth+1); ok {
			return path, true
		}
	}
	return "", false
}
