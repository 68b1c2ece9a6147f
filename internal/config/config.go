// Package config resolves the grid configuration with an explicit
// priority order: CLI flags > environment > .huegrid.yaml > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/termtools/huegrid/pkg/grid"
)

// Default values, matching the CLI flag defaults.
const (
	DefaultHues        = 16
	DefaultValues      = 4
	DefaultSaturations = 4
	DefaultDark        = 50
	DefaultDarkFactor  = 5.0
	DefaultDisplay     = "rgb"

	configFileName = ".huegrid.yaml"
)

// CliFlags holds command-line flag values plus whether each was
// explicitly set by the user. Only explicitly set flags override the
// environment and file configuration.
type CliFlags struct {
	Hues        int
	Values      int
	Saturations int
	Resolution  int
	Offset      float64
	Display     string
	Dark        int
	DarkFactor  float64
	Legend      bool

	HuesSet        bool
	ValuesSet      bool
	SaturationsSet bool
	ResolutionSet  bool
	OffsetSet      bool
	DisplaySet     bool
	DarkSet        bool
	DarkFactorSet  bool
	LegendSet      bool
}

// FileConfig is the .huegrid.yaml schema. Pointer fields distinguish
// "absent" from zero values.
type FileConfig struct {
	Hues        *int     `yaml:"hues,omitempty"`
	Values      *int     `yaml:"values,omitempty"`
	Saturations *int     `yaml:"saturations,omitempty"`
	Offset      *float64 `yaml:"offset,omitempty"`
	Display     *string  `yaml:"display,omitempty"`
	Dark        *int     `yaml:"dark,omitempty"`
	DarkFactor  *float64 `yaml:"dark_factor,omitempty"`
	Legend      *bool    `yaml:"legend,omitempty"`
}

// Resolve builds a validated grid.Config from all configuration
// sources. The -r/--resolution flag, when set, overrides both the value
// and saturation counts regardless of how they were specified.
func Resolve(cli CliFlags) (grid.Config, error) {
	cfg := grid.Config{
		Hues:        DefaultHues,
		Values:      DefaultValues,
		Saturations: DefaultSaturations,
		Dark:        DefaultDark,
		DarkFactor:  DefaultDarkFactor,
	}
	display := DefaultDisplay

	if file, path := loadFile(); file != nil {
		debugf("loaded config file %s", path)
		applyFile(&cfg, &display, file)
	}

	if v := os.Getenv("HUEGRID_DISPLAY"); v != "" {
		display = v
	}
	if v := os.Getenv("HUEGRID_LEGEND"); v != "" {
		cfg.Legend = v != "0" && v != "false"
	}
	// NO_COLOR suppresses swatches entirely unless a display mode was
	// demanded on the command line.
	if os.Getenv("NO_COLOR") != "" && !cli.DisplaySet {
		display = "none"
	}

	applyCli(&cfg, &display, cli)

	mode, err := grid.ModeByName(display)
	if err != nil {
		return grid.Config{}, err
	}
	cfg.Mode = mode

	if err := cfg.Validate(); err != nil {
		return grid.Config{}, err
	}
	debugf("resolved config: %+v", cfg)
	return cfg, nil
}

func applyFile(cfg *grid.Config, display *string, file *FileConfig) {
	if file.Hues != nil {
		cfg.Hues = *file.Hues
	}
	if file.Values != nil {
		cfg.Values = *file.Values
	}
	if file.Saturations != nil {
		cfg.Saturations = *file.Saturations
	}
	if file.Offset != nil {
		cfg.Offset = *file.Offset
	}
	if file.Display != nil {
		*display = *file.Display
	}
	if file.Dark != nil {
		cfg.Dark = *file.Dark
	}
	if file.DarkFactor != nil {
		cfg.DarkFactor = *file.DarkFactor
	}
	if file.Legend != nil {
		cfg.Legend = *file.Legend
	}
}

func applyCli(cfg *grid.Config, display *string, cli CliFlags) {
	if cli.HuesSet {
		cfg.Hues = cli.Hues
	}
	if cli.ValuesSet {
		cfg.Values = cli.Values
	}
	if cli.SaturationsSet {
		cfg.Saturations = cli.Saturations
	}
	if cli.ResolutionSet {
		cfg.Values = cli.Resolution
		cfg.Saturations = cli.Resolution
	}
	if cli.OffsetSet {
		cfg.Offset = cli.Offset
	}
	if cli.DisplaySet {
		*display = cli.Display
	}
	if cli.DarkSet {
		cfg.Dark = cli.Dark
	}
	if cli.DarkFactorSet {
		cfg.DarkFactor = cli.DarkFactor
	}
	if cli.LegendSet {
		cfg.Legend = cli.Legend
	}
}

// loadFile reads the first config file found: ./.huegrid.yaml, then
// $XDG_CONFIG_HOME/huegrid/.huegrid.yaml. A missing file is not an
// error; an unreadable or malformed one is reported and skipped.
func loadFile() (*FileConfig, string) {
	path := findConfigPath()
	if path == "" {
		return nil, ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "huegrid: reading %s: %v\n", path, err)
		return nil, ""
	}
	var file FileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		fmt.Fprintf(os.Stderr, "huegrid: parsing %s: %v\n", path, err)
		return nil, ""
	}
	return &file, path
}

func findConfigPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	path := filepath.Join(configHome, "huegrid", configFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func debugf(format string, args ...any) {
	if os.Getenv("HUEGRID_DEBUG") == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG config] "+format+"\n", args...)
}
