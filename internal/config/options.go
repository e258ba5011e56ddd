// Package config loads the tiling layout engine's tunable Options from a
// TOML file and watches it for changes, the way the rest of this project
// resolves and hot-reloads its own configuration.
package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
)

// fileOptions mirrors layout.Options with TOML tags. Unknown keys in the
// file are silently dropped by go-toml's typed unmarshal; fields the file
// omits keep DefaultOptions' values.
type fileOptions struct {
	Gap                           int     `toml:"gap"`
	TabBarHeight                  int     `toml:"tab_bar_height"`
	TitleStripHeight              int     `toml:"title_strip_height"`
	TabIndicatorPlacement         string  `toml:"tab_indicator_placement"`
	DefaultSplitRatio             float64 `toml:"default_split_ratio"`
	PromoteOnIncompatibleAncestor bool    `toml:"promote_on_incompatible_ancestor"`
}

// ConfigFileName is the TOML file name resolved under the XDG config home.
const ConfigFileName = "tiri/options.toml"

// ResolveConfigPath returns the on-disk path Load/Watch use, creating any
// missing parent directories the way xdg.ConfigFile does.
func ResolveConfigPath() (string, error) {
	path, err := xdg.ConfigFile(ConfigFileName)
	if err != nil {
		return "", fmt.Errorf("config: resolving config path: %w", err)
	}
	return path, nil
}

// Load reads and parses the Options file at path. A missing file is not
// an error: it returns layout.DefaultOptions() unchanged.
func Load(path string) (*layout.Options, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return layout.DefaultOptions(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fo fileOptions
	opts := layout.DefaultOptions()
	fo.Gap = opts.Gap
	fo.TabBarHeight = opts.TabBarHeight
	fo.TitleStripHeight = opts.TitleStripHeight
	fo.TabIndicatorPlacement = opts.TabIndicatorPlacement.String()
	fo.DefaultSplitRatio = opts.DefaultSplitRatio
	fo.PromoteOnIncompatibleAncestor = opts.PromoteOnIncompatibleAncestor

	if err := toml.Unmarshal(data, &fo); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	opts.Gap = fo.Gap
	opts.TabBarHeight = fo.TabBarHeight
	opts.TitleStripHeight = fo.TitleStripHeight
	opts.DefaultSplitRatio = fo.DefaultSplitRatio
	opts.PromoteOnIncompatibleAncestor = fo.PromoteOnIncompatibleAncestor
	opts.TabIndicatorPlacement = parseTabIndicatorPlacement(fo.TabIndicatorPlacement)
	opts.Validate()
	return opts, nil
}

func parseTabIndicatorPlacement(s string) layout.TabIndicatorPlacement {
	if s == "within_column" {
		return layout.TabIndicatorWithinColumn
	}
	return layout.TabIndicatorOutside
}
