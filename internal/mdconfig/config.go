// Package mdconfig loads renderer defaults from an optional TOML/YAML file,
// layered with environment overrides and (by the CLI front-end, after Load
// returns) explicit flags, flags always winning. Grounded on the teacher's
// internal/config directory-walk-to-find-a-config-file pattern, generalized
// from a single YAML schema to either file format and from a single
// directory-scoped file name to both.
package mdconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/inkmd/mdctl/internal/mdtheme"
)

// configFileNames are tried in order, first match wins, at each directory
// level while walking up from the start path.
var configFileNames = []string{"mdctl.yaml", "mdctl.yml", "mdctl.toml"}

// Options holds the layout/theme defaults the console renderer's options
// are built from.
type Options struct {
	Width        int    `yaml:"width"          toml:"width"`
	Indent       int    `yaml:"indent"         toml:"indent"`
	MaxImageCols int    `yaml:"max_image_cols" toml:"max_image_cols"`
	CellPxWidth  int    `yaml:"cell_px_width"  toml:"cell_px_width"`
	CellPxHeight int    `yaml:"cell_px_height" toml:"cell_px_height"`
	Theme        string `yaml:"theme"          toml:"theme"`
}

// Defaults returns the built-in fallback used when no config file, env
// override, or flag supplies a value.
func Defaults() Options {
	return Options{
		Width:        80,
		Indent:       0,
		MaxImageCols: 40,
		CellPxWidth:  8,
		CellPxHeight: 16,
		Theme:        "default",
	}
}

// Load walks up from startPath looking for a config file, applies it over
// Defaults(), then applies environment overrides (MDCTL_WIDTH,
// MDCTL_INDENT, MDCTL_MAX_IMAGE_COLS, MDCTL_CELL_PX_WIDTH,
// MDCTL_CELL_PX_HEIGHT, MDCTL_THEME), and validates the resulting theme
// name. Returns Defaults() unmodified (plus env overrides) if no config
// file is found; that is not an error.
func Load(fs afero.Fs, startPath string) (Options, error) {
	opts := Defaults()

	path, ok, err := findConfigFile(fs, startPath)
	if err != nil {
		return Options{}, err
	}
	if ok {
		if err := mergeFile(fs, path, &opts); err != nil {
			return Options{}, fmt.Errorf("mdconfig: %s: %w", path, err)
		}
	}

	applyEnv(&opts)

	if _, err := mdtheme.Get(opts.Theme); err != nil {
		return Options{}, fmt.Errorf(
			"mdconfig: invalid theme %q, available: %s",
			opts.Theme, strings.Join(mdtheme.Available(), ", "),
		)
	}

	return opts, nil
}

func findConfigFile(fs afero.Fs, startPath string) (string, bool, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return "", false, fmt.Errorf("resolve start path: %w", err)
	}

	current := abs
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(current, name)
			if exists, _ := afero.Exists(fs, candidate); exists {
				return candidate, true, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false, nil
		}
		current = parent
	}
}

func mergeFile(fs afero.Fs, path string, opts *Options) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, opts); err != nil {
			return fmt.Errorf("parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, opts); err != nil {
			return fmt.Errorf("parse YAML: %w", err)
		}
	}

	return nil
}

func applyEnv(opts *Options) {
	if v, ok := envInt("MDCTL_WIDTH"); ok {
		opts.Width = v
	}
	if v, ok := envInt("MDCTL_INDENT"); ok {
		opts.Indent = v
	}
	if v, ok := envInt("MDCTL_MAX_IMAGE_COLS"); ok {
		opts.MaxImageCols = v
	}
	if v, ok := envInt("MDCTL_CELL_PX_WIDTH"); ok {
		opts.CellPxWidth = v
	}
	if v, ok := envInt("MDCTL_CELL_PX_HEIGHT"); ok {
		opts.CellPxHeight = v
	}
	if v, ok := os.LookupEnv("MDCTL_THEME"); ok && v != "" {
		opts.Theme = v
	}
}

func envInt(name string) (int, bool) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}

	return n, true
}
