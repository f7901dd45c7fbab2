package lookup

import "github.com/mesh-intelligence/iconlookup/pkg/types"

// DirectoryMatchesSize reports whether dir accepts an icon of the given
// size and scale outright. A scale mismatch never matches.
func DirectoryMatchesSize(dir types.ThemeDirectory, size, scale int) bool {
	if scale != dir.EffectiveScale() {
		return false
	}

	switch dir.Type {
	case types.Fixed:
		return dir.Size == size
	case types.Scalable:
		return dir.EffectiveMinSize() <= size && size <= dir.EffectiveMaxSize()
	default:
		t := dir.EffectiveThreshold()
		return dir.Size-t <= size && size <= dir.Size+t
	}
}

// DirectorySizeDistance returns how far dir is from accepting size at scale,
// measured in device pixels so directories of different scales compare.
// Zero means dir would accept it.
//
// For Threshold directories the band [Size-Threshold, Size+Threshold] is a
// zero plateau, and outside it the distance is measured from Size itself,
// not from the band edge.
func DirectorySizeDistance(dir types.ThemeDirectory, size, scale int) int {
	dscale := dir.EffectiveScale()
	want := size * scale

	switch dir.Type {
	case types.Fixed:
		return abs(dir.Size*dscale - want)
	case types.Scalable:
		lo := dir.EffectiveMinSize() * dscale
		hi := dir.EffectiveMaxSize() * dscale
		if want < lo {
			return lo - want
		}
		if want > hi {
			return want - hi
		}
		return 0
	default:
		t := dir.EffectiveThreshold()
		if want < (dir.Size-t)*dscale || want > (dir.Size+t)*dscale {
			return abs(dir.Size*dscale - want)
		}
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
