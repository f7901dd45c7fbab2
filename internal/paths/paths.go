// Package paths resolves icon base directories and the CLI configuration
// directory.
// Implements: freedesktop.org Icon Theme 0.13 (§ Directory Layout);
//
//	XDG Base Directory 0.8 (XDG_DATA_HOME, XDG_DATA_DIRS, XDG_CONFIG_HOME).
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
)

const appName = "iconlookup"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "ICONLOOKUP_CONFIG_DIR"

// PixmapsDir is searched last, for unthemed icons only in practice.
const PixmapsDir = "/usr/share/pixmaps"

// DefaultDataDirs stands in for XDG_DATA_DIRS when it is unset, in the
// order the system-wide and local icon directories are searched.
var DefaultDataDirs = []string{"/usr/share", "/usr/local/share"}

// Env holds the environment variables that affect directory resolution.
type Env struct {
	Home          string   `env:"HOME"`
	XDGConfigHome string   `env:"XDG_CONFIG_HOME"`
	XDGDataHome   string   `env:"XDG_DATA_HOME"`
	XDGDataDirs   []string `env:"XDG_DATA_DIRS" envSeparator:":"`
	IconTheme     string   `env:"ICON_THEME"`
}

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// home returns e.Home, falling back to the platform home directory.
func (e Env) home() string {
	if e.Home != "" {
		return e.Home
	}
	h, err := platformDir.homeDir()
	if err != nil {
		return ""
	}
	return h
}

// BaseDirectories returns the icon base directories in search order:
//
//	$HOME/.icons
//	$XDG_DATA_HOME/icons          (only when set)
//	$XDG_DATA_DIRS[i]/icons       (DefaultDataDirs when unset)
//	/usr/share/pixmaps
//
// Duplicates keep their first position.
func BaseDirectories(e Env) []string {
	var dirs []string
	if h := e.home(); h != "" {
		dirs = append(dirs, filepath.Join(h, ".icons"))
	}
	if e.XDGDataHome != "" {
		dirs = append(dirs, filepath.Join(e.XDGDataHome, "icons"))
	}

	dataDirs := nonEmpty(e.XDGDataDirs)
	if len(dataDirs) == 0 {
		dataDirs = DefaultDataDirs
	}
	for _, d := range dataDirs {
		dirs = append(dirs, filepath.Join(d, "icons"))
	}
	dirs = append(dirs, PixmapsDir)

	return Dedupe(dirs)
}

// DefaultBaseDirectories returns BaseDirectories for the process environment.
// An unparseable environment is treated as empty.
func DefaultBaseDirectories() []string {
	e, err := LoadEnv()
	if err != nil {
		e = Env{}
	}
	return BaseDirectories(e)
}

// ExpandHome replaces a leading "~" with the home directory and cleans the
// result. Paths without "~" are only cleaned.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return filepath.Clean(p)
	}
	h, err := platformDir.homeDir()
	if err != nil {
		return filepath.Clean(p)
	}
	return filepath.Join(h, strings.TrimPrefix(p, "~"))
}

// Dedupe drops empty entries and repeats, keeping first occurrences in order.
func Dedupe(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/iconlookup (fallback ~/.config/iconlookup)
// macOS:   ~/Library/Application Support/iconlookup
// Windows: %APPDATA%/iconlookup
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		e, err := LoadEnv()
		if err != nil {
			return "", err
		}
		if e.XDGConfigHome != "" {
			return filepath.Join(e.XDGConfigHome, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ICONLOOKUP_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(ExpandHome(flag))
	}
	if v := os.Getenv(EnvConfigDir); v != "" {
		return filepath.Abs(ExpandHome(v))
	}
	return DefaultConfigDir()
}
