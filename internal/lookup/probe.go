package lookup

import (
	"math"
	"path/filepath"

	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

// lookupIcon searches a single theme, ignoring its parents.
//
// Every directory that matches the requested size is tried first, in
// directory, base directory, extension order; the first existing file wins.
// Only when no matching directory holds the icon is the closest existing
// file returned, so an exact match always beats a numerically nearer inexact
// one. Ties go to the first candidate in the same iteration order.
func (r *Resolver) lookupIcon(icon string, size, scale int, theme *types.Theme) (string, bool) {
	for _, dir := range theme.Directories {
		if !DirectoryMatchesSize(dir, size, scale) {
			continue
		}
		if path, ok := r.firstExisting(theme.Name, dir.Name, icon); ok {
			r.logger.Debug("exact match", "theme", theme.Name, "dir", dir.Name, "path", path)
			return path, true
		}
	}

	minimal := math.MaxInt
	closest := ""
	for _, dir := range theme.Directories {
		distance := DirectorySizeDistance(dir, size, scale)
		for _, base := range r.baseDirs {
			for _, ext := range r.extensions {
				path := themedPath(base, theme.Name, dir.Name, icon, ext)
				if distance < minimal && r.checker.Exists(path) {
					closest = path
					minimal = distance
				}
			}
		}
	}

	if closest == "" {
		return "", false
	}
	r.logger.Debug("closest match", "theme", theme.Name, "distance", minimal, "path", closest)
	return closest, true
}

// lookupFallbackIcon searches the base directories themselves, outside any
// theme. Size and scale play no part.
func (r *Resolver) lookupFallbackIcon(icon string) (string, bool) {
	for _, base := range r.baseDirs {
		for _, ext := range r.extensions {
			path := filepath.Join(base, icon+"."+ext)
			if r.checker.Exists(path) {
				r.logger.Debug("fallback match", "path", path)
				return path, true
			}
		}
	}
	return "", false
}

// firstExisting returns the first {base}/{theme}/{dir}/{icon}.{ext} present.
func (r *Resolver) firstExisting(themeName, dirName, icon string) (string, bool) {
	for _, base := range r.baseDirs {
		for _, ext := range r.extensions {
			path := themedPath(base, themeName, dirName, icon, ext)
			if r.checker.Exists(path) {
				return path, true
			}
		}
	}
	return "", false
}

func themedPath(base, themeName, dirName, icon, ext string) string {
	return filepath.Join(base, themeName, dirName, icon+"."+ext)
}
