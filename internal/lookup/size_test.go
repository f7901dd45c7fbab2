package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

func fixedDir(size int) types.ThemeDirectory {
	return types.ThemeDirectory{Name: "fixed", Size: size, Type: types.Fixed}
}

func TestDirectoryMatchesSize(t *testing.T) {
	scalable := types.ThemeDirectory{Name: "scalable", Size: 128, Type: types.Scalable, MinSize: types.Int(96), MaxSize: types.Int(160)}
	threshold4 := types.ThemeDirectory{Name: "48x48", Size: 48, Type: types.Threshold, Threshold: types.Int(4)}
	thresholdDefault := types.ThemeDirectory{Name: "48x48", Size: 48}
	hidpi := types.ThemeDirectory{Name: "24x24@2", Size: 24, Scale: types.Int(2), Type: types.Fixed}

	tests := []struct {
		name  string
		dir   types.ThemeDirectory
		size  int
		scale int
		want  bool
	}{
		{name: "fixed exact", dir: fixedDir(48), size: 48, scale: 1, want: true},
		{name: "fixed off by one", dir: fixedDir(48), size: 49, scale: 1, want: false},
		{name: "fixed scale mismatch", dir: fixedDir(48), size: 48, scale: 2, want: false},
		{name: "scalable inside", dir: scalable, size: 100, scale: 1, want: true},
		{name: "scalable lower bound", dir: scalable, size: 96, scale: 1, want: true},
		{name: "scalable upper bound", dir: scalable, size: 160, scale: 1, want: true},
		{name: "scalable below", dir: scalable, size: 32, scale: 1, want: false},
		{name: "scalable above", dir: scalable, size: 161, scale: 1, want: false},
		{name: "scalable without bounds is fixed at size", dir: types.ThemeDirectory{Size: 64, Type: types.Scalable}, size: 65, scale: 1, want: false},
		{name: "threshold inside band", dir: threshold4, size: 50, scale: 1, want: true},
		{name: "threshold lower edge", dir: threshold4, size: 44, scale: 1, want: true},
		{name: "threshold upper edge", dir: threshold4, size: 52, scale: 1, want: true},
		{name: "threshold outside", dir: threshold4, size: 43, scale: 1, want: false},
		{name: "default threshold of two", dir: thresholdDefault, size: 50, scale: 1, want: true},
		{name: "default threshold exceeded", dir: thresholdDefault, size: 51, scale: 1, want: false},
		{name: "scaled directory at its scale", dir: hidpi, size: 24, scale: 2, want: true},
		{name: "scaled directory at scale one", dir: hidpi, size: 48, scale: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectoryMatchesSize(tt.dir, tt.size, tt.scale))
		})
	}
}

func TestDirectorySizeDistance(t *testing.T) {
	scalable := types.ThemeDirectory{Name: "scalable", Size: 128, Type: types.Scalable, MinSize: types.Int(96), MaxSize: types.Int(160)}
	scalable2x := types.ThemeDirectory{Name: "scalable@2", Size: 128, Scale: types.Int(2), Type: types.Scalable, MinSize: types.Int(96), MaxSize: types.Int(160)}
	threshold4 := types.ThemeDirectory{Name: "48x48", Size: 48, Type: types.Threshold, Threshold: types.Int(4)}
	threshold2x := types.ThemeDirectory{Name: "24x24@2", Size: 24, Scale: types.Int(2), Type: types.Threshold}

	tests := []struct {
		name  string
		dir   types.ThemeDirectory
		size  int
		scale int
		want  int
	}{
		{name: "fixed equal", dir: fixedDir(48), size: 48, scale: 1, want: 0},
		{name: "fixed smaller request", dir: fixedDir(48), size: 32, scale: 1, want: 16},
		{name: "fixed larger request", dir: fixedDir(48), size: 50, scale: 1, want: 2},
		{name: "fixed compares device pixels", dir: fixedDir(48), size: 48, scale: 2, want: 48},
		{name: "scalable below range", dir: scalable, size: 32, scale: 1, want: 64},
		{name: "scalable above range", dir: scalable, size: 200, scale: 1, want: 40},
		{name: "scalable inside range", dir: scalable, size: 100, scale: 1, want: 0},
		{name: "scalable scaled bounds", dir: scalable2x, size: 64, scale: 2, want: 64},
		{name: "scalable scaled inside", dir: scalable2x, size: 100, scale: 2, want: 0},
		{name: "threshold inside band", dir: threshold4, size: 45, scale: 1, want: 0},
		{name: "threshold below band measured from size", dir: threshold4, size: 43, scale: 1, want: 5},
		{name: "threshold above band measured from size", dir: threshold4, size: 60, scale: 1, want: 12},
		{name: "threshold scaled band", dir: threshold2x, size: 48, scale: 1, want: 0},
		{name: "threshold scaled outside", dir: threshold2x, size: 16, scale: 2, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectorySizeDistance(tt.dir, tt.size, tt.scale))
		})
	}
}

func TestDirectorySizeDistance_ZeroWhenMatching(t *testing.T) {
	dirs := []types.ThemeDirectory{
		fixedDir(32),
		{Size: 64, Type: types.Scalable, MinSize: types.Int(16), MaxSize: types.Int(256)},
		{Size: 22, Type: types.Threshold, Threshold: types.Int(3)},
	}
	for _, d := range dirs {
		for size := 1; size <= 300; size++ {
			if DirectoryMatchesSize(d, size, 1) {
				assert.Zero(t, DirectorySizeDistance(d, size, 1), "%s dir size %d request %d", d.Type, d.Size, size)
			}
		}
	}
}
