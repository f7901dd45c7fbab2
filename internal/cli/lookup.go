// Implements: freedesktop.org Icon Theme 0.13 (§ Icon Lookup: FindIcon, FindBestIcon).
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/iconlookup/internal/dircache"
	"github.com/mesh-intelligence/iconlookup/internal/lookup"
	"github.com/mesh-intelligence/iconlookup/internal/themeloader"
	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

// lookupResult is the JSON shape of find and best output.
type lookupResult struct {
	Query []string `json:"query"`
	Theme string   `json:"theme"`
	Size  int      `json:"size"`
	Scale int      `json:"scale"`
	Path  string   `json:"path"`
}

// session bundles what one lookup command needs.
type session struct {
	settings settings
	loader   *themeloader.Loader
	resolver *lookup.Resolver
}

func (a *app) newSession() (*session, error) {
	s, err := readSettings(a.cfg)
	if err != nil {
		return nil, userError(err)
	}

	var checker types.FileChecker = lookup.NewFSChecker(a.fs)
	if s.cache {
		checker = dircache.New(a.fs, s.baseDirs, dircache.WithWindow(s.cacheWindow))
	}

	loader := themeloader.New(a.fs, s.baseDirs, themeloader.WithLogger(a.logger))
	opts := []lookup.Option{
		lookup.WithBaseDirs(s.baseDirs...),
		lookup.WithExtensions(s.extensions...),
		lookup.WithFileChecker(checker),
		lookup.WithLogger(a.logger),
	}

	hicolor, err := loader.Load(types.DefaultThemeName)
	switch {
	case err == nil:
		opts = append(opts, lookup.WithDefaultTheme(hicolor))
	case errors.Is(err, types.ErrThemeNotFound):
		a.logger.Debug("default theme not installed", "theme", types.DefaultThemeName)
	default:
		a.logger.Warn("cannot load default theme", "theme", types.DefaultThemeName, "err", err)
	}

	return &session{settings: s, loader: loader, resolver: lookup.New(opts...)}, nil
}

// userTheme loads the selected theme. A theme that is not installed is
// reported and replaced by nil so lookups go straight to the default theme.
func (a *app) userTheme(s *session) (*types.Theme, error) {
	name := themeloader.UserSelectedTheme(s.settings.theme)
	theme, err := s.loader.Load(name)
	if errors.Is(err, types.ErrThemeNotFound) {
		if name != types.DefaultThemeName {
			a.logger.Warn("theme not installed, using default", "theme", name, "default", types.DefaultThemeName)
		}
		return nil, nil
	}
	if err != nil {
		return nil, userError(err)
	}
	return theme, nil
}

func (a *app) newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Find the file for an icon name",
		Long:  "Find the file for an icon name in the selected theme, its parents, then hicolor.\nUnthemed icons are only considered by \"best\".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLookup(cmd, args, func(s *session, theme *types.Theme) (string, bool) {
				return s.resolver.FindIcon(args[0], s.settings.size, s.settings.scale, theme)
			})
		},
	}
}

func (a *app) newBestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best <name>...",
		Short: "Find the first available icon among several names",
		Long:  "Find the first of several icon names available in a theme, trying every\nname in each theme before moving on to its parents. After hicolor, each name\nis looked for directly in the base directories.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLookup(cmd, args, func(s *session, theme *types.Theme) (string, bool) {
				return s.resolver.FindBestIcon(args, s.settings.size, s.settings.scale, theme)
			})
		},
	}
}

func (a *app) runLookup(cmd *cobra.Command, query []string, find func(*session, *types.Theme) (string, bool)) error {
	s, err := a.newSession()
	if err != nil {
		return err
	}
	theme, err := a.userTheme(s)
	if err != nil {
		return err
	}

	path, ok := find(s, theme)
	if !ok {
		return userError(fmt.Errorf("%w: %q", errIconNotFound, query))
	}

	if a.flags.jsonMode {
		themeName := types.DefaultThemeName
		if theme != nil {
			themeName = theme.Name
		}
		return writeJSON(cmd.OutOrStdout(), lookupResult{
			Query: query,
			Theme: themeName,
			Size:  s.settings.size,
			Scale: s.settings.scale,
			Path:  path,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal json: %w", err))
	}
	fmt.Fprintln(w, string(data))
	return nil
}
