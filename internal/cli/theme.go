// Implements: freedesktop.org Icon Theme 0.13 (§ File Formats: index.theme).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/iconlookup/internal/themeloader"
	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

// themeView is a theme as printed by "theme show". Parents are listed by
// name; their own directories are shown by "theme show <parent>".
type themeView struct {
	Name        string                 `json:"name" yaml:"name"`
	DisplayName string                 `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Comment     string                 `json:"comment,omitempty" yaml:"comment,omitempty"`
	Example     string                 `json:"example,omitempty" yaml:"example,omitempty"`
	Hidden      bool                   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Inherits    []string               `json:"inherits,omitempty" yaml:"inherits,omitempty"`
	Directories []types.ThemeDirectory `json:"directories" yaml:"directories"`
}

func newThemeView(t *types.Theme) themeView {
	v := themeView{
		Name:        t.Name,
		DisplayName: t.DisplayName,
		Comment:     t.Comment,
		Example:     t.Example,
		Hidden:      t.Hidden,
		Directories: t.Directories,
	}
	for _, p := range t.Inherits {
		if p != nil {
			v.Inherits = append(v.Inherits, p.Name)
		}
	}
	return v
}

func (a *app) newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect installed icon themes",
	}
	cmd.AddCommand(a.newThemeShowCmd())
	cmd.AddCommand(a.newThemeListCmd())
	return cmd
}

func (a *app) newThemeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a theme's metadata and directories",
		Long:  "Show a theme's metadata and directories. Without a name, the selected theme\n(--theme, config, $ICON_THEME, then hicolor) is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettings(a.cfg)
			if err != nil {
				return userError(err)
			}

			name := themeloader.UserSelectedTheme(s.theme)
			if len(args) == 1 {
				name = args[0]
			}

			loader := themeloader.New(a.fs, s.baseDirs, themeloader.WithLogger(a.logger))
			theme, err := loader.Load(name)
			if err != nil {
				return userError(err)
			}

			view := newThemeView(theme)
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			data, err := yaml.Marshal(&view)
			if err != nil {
				return sysError(fmt.Errorf("marshal yaml: %w", err))
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func (a *app) newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettings(a.cfg)
			if err != nil {
				return userError(err)
			}

			names := themeloader.New(a.fs, s.baseDirs).List()
			if a.flags.jsonMode {
				if names == nil {
					names = []string{}
				}
				return writeJSON(cmd.OutOrStdout(), names)
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
