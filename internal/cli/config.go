// Config loading for the iconlookup CLI.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/iconlookup/internal/dircache"
	"github.com/mesh-intelligence/iconlookup/internal/lookup"
	"github.com/mesh-intelligence/iconlookup/internal/paths"
	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ICONLOOKUP"

	cfgKeyTheme       = "theme"
	cfgKeySize        = "size"
	cfgKeyScale       = "scale"
	cfgKeyBaseDirs    = "base_dirs"
	cfgKeyExtensions  = "extensions"
	cfgKeyCache       = "cache"
	cfgKeyCacheWindow = "cache_window"

	defaultSize  = 48
	defaultScale = types.DefaultScale
)

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	cfgKeyTheme:    "theme",
	cfgKeySize:     "size",
	cfgKeyScale:    "scale",
	cfgKeyBaseDirs: "base-dir",
}

// loadConfig reads config.yaml from configDir using Viper. Values come from,
// highest first: flags, ICONLOOKUP_* environment variables, config.yaml,
// defaults. A missing config.yaml is not an error.
func loadConfig(fs afero.Fs, configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetDefault(cfgKeySize, defaultSize)
	v.SetDefault(cfgKeyScale, defaultScale)
	v.SetDefault(cfgKeyExtensions, lookup.DefaultExtensions)
	v.SetDefault(cfgKeyCache, true)
	v.SetDefault(cfgKeyCacheWindow, dircache.DefaultWindow)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// settings are the effective lookup parameters after config resolution.
type settings struct {
	theme       string
	size        int
	scale       int
	baseDirs    []string
	extensions  []string
	cache       bool
	cacheWindow time.Duration
}

func readSettings(v *viper.Viper) (settings, error) {
	s := settings{
		theme:       v.GetString(cfgKeyTheme),
		size:        v.GetInt(cfgKeySize),
		scale:       v.GetInt(cfgKeyScale),
		extensions:  normalizeExtensions(v.GetStringSlice(cfgKeyExtensions)),
		cache:       v.GetBool(cfgKeyCache),
		cacheWindow: v.GetDuration(cfgKeyCacheWindow),
	}
	if s.size <= 0 {
		return settings{}, fmt.Errorf("%w: %d", types.ErrInvalidSize, s.size)
	}
	if s.scale < 1 {
		return settings{}, fmt.Errorf("%w: %d", types.ErrInvalidScale, s.scale)
	}

	for _, d := range v.GetStringSlice(cfgKeyBaseDirs) {
		s.baseDirs = append(s.baseDirs, paths.ExpandHome(d))
	}
	s.baseDirs = paths.Dedupe(s.baseDirs)
	if len(s.baseDirs) == 0 {
		s.baseDirs = paths.DefaultBaseDirectories()
	}
	return s, nil
}

// normalizeExtensions accepts "png" and ".png" alike.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		if e = strings.TrimPrefix(strings.TrimSpace(e), "."); e != "" {
			out = append(out, e)
		}
	}
	return out
}
