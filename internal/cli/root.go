// Package cli implements the iconlookup command-line interface.
// Implements: freedesktop.org Icon Theme 0.13 (§ Icon Lookup) as a CLI;
//
//	XDG Base Directory 0.8 (configuration directory).
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/iconlookup/internal/paths"
	"github.com/mesh-intelligence/iconlookup/pkg/iconlookup"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errIconNotFound is returned when a lookup yields no file.
var errIconNotFound = errors.New("icon not found")

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	baseDirs  []string
	theme     string
	size      int
	scale     int
	jsonMode  bool
	noCache   bool
	verbose   bool
}

// app is the state shared by the commands of one root command.
type app struct {
	flags     rootFlags
	cfg       *viper.Viper
	configDir string
	logger    *log.Logger
	fs        afero.Fs
}

// NewRootCmd creates the top-level "iconlookup" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:     "iconlookup",
		Short:   "Resolve freedesktop.org icon names to files",
		Long:    "iconlookup finds the image file for an icon name, size and scale\nby searching the selected icon theme, its parents, and hicolor.",
		Version: iconlookup.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/iconlookup)")
	pf.StringSliceVar(&a.flags.baseDirs, "base-dir", nil, "icon base directory, repeatable (default: XDG icon directories)")
	pf.StringVar(&a.flags.theme, "theme", "", "icon theme (default: $ICON_THEME, then hicolor)")
	pf.IntVar(&a.flags.size, "size", defaultSize, "icon size in pixels")
	pf.IntVar(&a.flags.scale, "scale", defaultScale, "display scale")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	pf.BoolVar(&a.flags.noCache, "no-cache", false, "stat every candidate instead of caching directory listings")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log lookup decisions to stderr")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "iconlookup"})
		if a.flags.verbose {
			a.logger.SetLevel(log.DebugLevel)
		}

		configDir, err := paths.ResolveConfigDir(a.flags.configDir)
		if err != nil {
			return sysError(fmt.Errorf("resolve config dir: %w", err))
		}
		cfg, err := loadConfig(a.fs, configDir)
		if err != nil {
			return userError(err)
		}
		if err := bindFlags(cfg, pf); err != nil {
			return sysError(err)
		}
		if a.flags.noCache {
			cfg.Set(cfgKeyCache, false)
		}
		a.cfg = cfg
		a.configDir = configDir
		return nil
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newFindCmd())
	root.AddCommand(a.newBestCmd())
	root.AddCommand(a.newThemeCmd())
	root.AddCommand(a.newDirsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
