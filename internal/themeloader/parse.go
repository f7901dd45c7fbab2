package themeloader

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/ini.v1"

	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

// IndexFile is the theme description file inside a theme directory.
const IndexFile = "index.theme"

const themeSection = "Icon Theme"

// Parse builds a Theme from the contents of an index.theme file. It returns
// the theme with Inherits unset and the parent names in declared order.
// Directories listed without a matching section, or with invalid keys, are
// skipped and logged.
func Parse(name string, data []byte, logger *log.Logger) (*types.Theme, []string, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", types.ErrInvalidTheme, name, err)
	}

	sec, err := cfg.GetSection(themeSection)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: missing [%s] section", types.ErrInvalidTheme, name, themeSection)
	}

	theme := &types.Theme{
		Name:        name,
		DisplayName: sec.Key("Name").String(),
		Comment:     sec.Key("Comment").String(),
		Example:     sec.Key("Example").String(),
		Hidden:      sec.Key("Hidden").MustBool(false),
	}
	if err := theme.Validate(); err != nil {
		return nil, nil, err
	}

	dirNames := append(sec.Key("Directories").Strings(","), sec.Key("ScaledDirectories").Strings(",")...)
	seen := make(map[string]bool, len(dirNames))
	for _, dn := range dirNames {
		if dn == "" || seen[dn] {
			continue
		}
		seen[dn] = true

		ds, err := cfg.GetSection(dn)
		if err != nil {
			logger.Debug("directory has no section", "theme", name, "dir", dn)
			continue
		}
		dir, err := parseDirectory(dn, ds)
		if err != nil {
			logger.Warn("skipping directory", "theme", name, "dir", dn, "err", err)
			continue
		}
		theme.Directories = append(theme.Directories, dir)
	}

	return theme, sec.Key("Inherits").Strings(","), nil
}

func parseDirectory(name string, sec *ini.Section) (types.ThemeDirectory, error) {
	dir := types.ThemeDirectory{
		Name:    name,
		Context: sec.Key("Context").String(),
	}

	if !sec.HasKey("Size") {
		return dir, fmt.Errorf("%w: missing Size", types.ErrInvalidSize)
	}
	size, err := sec.Key("Size").Int()
	if err != nil {
		return dir, fmt.Errorf("%w: Size: %v", types.ErrInvalidSize, err)
	}
	dir.Size = size

	if sec.HasKey("Type") {
		if dir.Type, err = types.ParseDirectoryType(sec.Key("Type").String()); err != nil {
			return dir, err
		}
	}

	for _, opt := range []struct {
		key string
		dst **int
	}{
		{"Scale", &dir.Scale},
		{"MinSize", &dir.MinSize},
		{"MaxSize", &dir.MaxSize},
		{"Threshold", &dir.Threshold},
	} {
		if !sec.HasKey(opt.key) {
			continue
		}
		v, err := sec.Key(opt.key).Int()
		if err != nil {
			return dir, fmt.Errorf("%w: %s: %v", types.ErrInvalidSize, opt.key, err)
		}
		*opt.dst = types.Int(v)
	}

	return dir, dir.Validate()
}
