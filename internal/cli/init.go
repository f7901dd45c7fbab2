// Implements: config.yaml bootstrap for the iconlookup CLI;
//
//	XDG Base Directory 0.8 (XDG_CONFIG_HOME).
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/iconlookup/internal/dircache"
	"github.com/mesh-intelligence/iconlookup/internal/lookup"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Theme       string   `yaml:"theme"`
	Size        int      `yaml:"size"`
	Scale       int      `yaml:"scale"`
	BaseDirs    []string `yaml:"base_dirs,omitempty"`
	Extensions  []string `yaml:"extensions"`
	Cache       bool     `yaml:"cache"`
	CacheWindow string   `yaml:"cache_window"`
}

const configHeader = "# iconlookup configuration. Flags and ICONLOOKUP_* variables override these values.\n"

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with default values.\nAn existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	if err := a.fs.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	path := filepath.Join(a.configDir, configFileExt)
	written, err := writeConfigIfMissing(a.fs, path)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if !written {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists: %s\n", path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written: %s\n", path)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(fs afero.Fs, path string) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	cfg := configFile{
		Size:        defaultSize,
		Scale:       defaultScale,
		Extensions:  lookup.DefaultExtensions,
		Cache:       true,
		CacheWindow: dircache.DefaultWindow.String(),
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := afero.WriteFile(fs, path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
