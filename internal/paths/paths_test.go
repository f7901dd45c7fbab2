package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withHome overrides the platform home directory for the duration of a test.
func withHome(t *testing.T, home string, err error) {
	t.Helper()
	orig := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return home, err }
	t.Cleanup(func() { platformDir.homeDir = orig })
}

func TestBaseDirectories(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want []string
	}{
		{
			name: "defaults when XDG unset",
			env:  Env{Home: "/home/ada"},
			want: []string{
				"/home/ada/.icons",
				"/usr/share/icons",
				"/usr/local/share/icons",
				"/usr/share/pixmaps",
			},
		},
		{
			name: "XDG_DATA_HOME inserted after ~/.icons",
			env:  Env{Home: "/home/ada", XDGDataHome: "/home/ada/.local/share"},
			want: []string{
				"/home/ada/.icons",
				"/home/ada/.local/share/icons",
				"/usr/share/icons",
				"/usr/local/share/icons",
				"/usr/share/pixmaps",
			},
		},
		{
			name: "XDG_DATA_DIRS replaces system defaults",
			env:  Env{Home: "/home/ada", XDGDataDirs: []string{"/opt/share", "", "/usr/share"}},
			want: []string{
				"/home/ada/.icons",
				"/opt/share/icons",
				"/usr/share/icons",
				"/usr/share/pixmaps",
			},
		},
		{
			name: "duplicates keep first position",
			env:  Env{Home: "/home/ada", XDGDataDirs: []string{"/usr/share", "/usr/share/"}},
			want: []string{
				"/home/ada/.icons",
				"/usr/share/icons",
				"/usr/share/pixmaps",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseDirectories(tt.env))
		})
	}
}

func TestBaseDirectories_NoHome(t *testing.T) {
	withHome(t, "", errors.New("no home"))

	got := BaseDirectories(Env{})
	assert.Equal(t, []string{"/usr/share/icons", "/usr/local/share/icons", "/usr/share/pixmaps"}, got)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HOME", "/home/grace")
	t.Setenv("XDG_DATA_HOME", "/data/home")
	t.Setenv("XDG_DATA_DIRS", "/a:/b")
	t.Setenv("ICON_THEME", "Papirus")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/home/grace", e.Home)
	assert.Equal(t, "/data/home", e.XDGDataHome)
	assert.Equal(t, []string{"/a", "/b"}, e.XDGDataDirs)
	assert.Equal(t, "Papirus", e.IconTheme)
}

func TestDefaultBaseDirectories(t *testing.T) {
	t.Setenv("HOME", "/home/grace")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_DATA_DIRS", "/srv/share")

	assert.Equal(t, []string{
		"/home/grace/.icons",
		"/srv/share/icons",
		"/usr/share/pixmaps",
	}, DefaultBaseDirectories())
}

func TestExpandHome(t *testing.T) {
	withHome(t, "/home/ada", nil)

	tests := []struct {
		in   string
		want string
	}{
		{in: "~", want: "/home/ada"},
		{in: "~/.icons", want: "/home/ada/.icons"},
		{in: "/usr/share/icons/", want: "/usr/share/icons"},
		{in: "~other/icons", want: "~other/icons"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"/a", "", "/b/", "/a", "/b"})
	assert.Equal(t, []string{"/a", "/b"}, got)
}

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/iconlookup", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "iconlookup"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string
	}{
		{name: "flag wins over env", flag: "/explicit/config", envVal: "/env/config", wantSub: "/explicit/config"},
		{name: "env wins when flag empty", envVal: "/env/config", wantSub: "/env/config"},
		{name: "platform default when both empty", wantSub: "iconlookup"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveConfigDir_AbsolutePath(t *testing.T) {
	t.Run("relative flag becomes absolute", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		got, err := ResolveConfigDir("relative/path")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})

	t.Run("relative env becomes absolute", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "relative/env")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})
}
