// Package grid computes the color grid: every (hue, saturation, value)
// triple on a regular HSV lattice, mapped to a display cell for the
// selected mode. It is a pure function from configuration to grid; all
// I/O and styling live elsewhere.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/termtools/huegrid/pkg/hsv"
	"github.com/termtools/huegrid/pkg/palette"
)

// ErrInvalidArgument is the root of every validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// Mode selects how a cell is represented on screen.
type Mode int

const (
	ModeRGB  Mode = iota // 24-bit truecolor swatch
	ModeANSI             // nearest xterm-256 index swatch
	ModeLUM              // grayscale swatch from luminance
	ModeNONE             // label only, no color payload
)

// ModeByName maps the CLI spelling of a display mode to its Mode.
func ModeByName(name string) (Mode, error) {
	switch name {
	case "rgb":
		return ModeRGB, nil
	case "ansi":
		return ModeANSI, nil
	case "lum":
		return ModeLUM, nil
	case "none":
		return ModeNONE, nil
	default:
		return 0, fmt.Errorf("%w: unknown display mode %q (expected rgb, ansi, lum, none)", ErrInvalidArgument, name)
	}
}

// String returns the CLI spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeANSI:
		return "ansi"
	case ModeLUM:
		return "lum"
	case ModeNONE:
		return "none"
	default:
		return "rgb"
	}
}

// Config is the fully resolved resolution configuration. All fields are
// expected to be validated before Render runs.
type Config struct {
	Hues        int
	Values      int
	Saturations int
	Offset      float64 // hue offset in degrees
	Dark        int     // dark-cell threshold, percent of max brightness
	DarkFactor  float64 // brightness boost for cells below the threshold
	Mode        Mode
	Legend      bool
}

// Validate checks every numeric field and normalizes the hue offset
// into [0,360).
func (c *Config) Validate() error {
	if c.Hues < 1 {
		return fmt.Errorf("%w: hues must be at least 1, got %d", ErrInvalidArgument, c.Hues)
	}
	if c.Values < 1 {
		return fmt.Errorf("%w: values must be at least 1, got %d", ErrInvalidArgument, c.Values)
	}
	if c.Saturations < 1 {
		return fmt.Errorf("%w: saturations must be at least 1, got %d", ErrInvalidArgument, c.Saturations)
	}
	if c.Dark < 0 || c.Dark > 100 {
		return fmt.Errorf("%w: dark threshold must be in [0,100], got %d", ErrInvalidArgument, c.Dark)
	}
	if c.DarkFactor <= 0 {
		return fmt.Errorf("%w: dark factor must be positive, got %g", ErrInvalidArgument, c.DarkFactor)
	}
	c.Offset = math.Mod(c.Offset, 360)
	if c.Offset < 0 {
		c.Offset += 360
	}
	return nil
}

// Cell is the rendered form of one HSV sample. R, G, B carry the
// display channels after the dark-cell boost; Index and Lum are filled
// for the ANSI and LUM modes respectively. Cells are immutable output
// values.
type Cell struct {
	Sample  hsv.Sample
	R, G, B uint8
	Index   uint8
	Lum     uint8
	Boosted bool
	Mode    Mode
}

// Grid is the ordered cell matrix: one row per hue, each row the full
// saturation x value cross product.
type Grid struct {
	Rows   [][]Cell
	Config Config
}

// Render enumerates the HSV lattice and maps every sample to a Cell.
// Rows are ordered by hue; within a row saturation descends (most
// saturated first) and value ascends, so repeated invocations with the
// same configuration are byte-identical downstream.
func Render(cfg Config) (Grid, error) {
	// Upstream validation is expected to have run already, but a zero
	// count here would be a silent divide, so guard explicitly.
	if cfg.Hues < 1 || cfg.Values < 1 || cfg.Saturations < 1 {
		return Grid{}, fmt.Errorf("%w: resolution counts must be positive", ErrInvalidArgument)
	}

	rows := make([][]Cell, 0, cfg.Hues)
	for h := 0; h < cfg.Hues; h++ {
		hue := math.Mod(float64(h)*360/float64(cfg.Hues)+cfg.Offset, 360)
		row := make([]Cell, 0, cfg.Values*cfg.Saturations)
		for s := cfg.Saturations - 1; s >= 0; s-- {
			sat := float64(s+1) / float64(cfg.Saturations)
			for v := 0; v < cfg.Values; v++ {
				val := float64(v+1) / float64(cfg.Values)
				row = append(row, makeCell(hsv.New(hue, sat, val), cfg))
			}
		}
		rows = append(rows, row)
	}
	return Grid{Rows: rows, Config: cfg}, nil
}

func makeCell(sample hsv.Sample, cfg Config) Cell {
	r, g, b := sample.Bytes()
	cell := Cell{Sample: sample, R: r, G: g, B: b, Mode: cfg.Mode}

	// Cosmetic boost for dark cells; the sample itself stays untouched.
	if hsv.Luminance(r, g, b)*100 < float64(cfg.Dark) {
		cell.R, cell.G, cell.B = hsv.Boost(r, g, b, cfg.DarkFactor)
		cell.Boosted = true
	}

	switch cfg.Mode {
	case ModeANSI:
		cell.Index = palette.Nearest(cell.R, cell.G, cell.B)
	case ModeLUM:
		cell.Lum = hsv.LumByte(cell.R, cell.G, cell.B)
	}
	return cell
}
