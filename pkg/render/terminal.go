package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/termtools/huegrid/pkg/grid"
	"github.com/termtools/huegrid/pkg/hsv"
)

const (
	reset   = "\x1b[m"
	fgGrey  = "\x1b[38;5;250m"
	fgBlack = "\x1b[38;2;0;0;0m"

	cellWidth   = 9
	hueColWidth = 6
)

// Terminal renders a grid as ANSI-escaped swatch cells.
type Terminal struct {
	theme Theme
}

var _ Renderer = (*Terminal)(nil)

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme}
}

// Render formats the whole grid: optional legend header, one line per
// hue, and for ANSI mode the base palette and grayscale ramp blocks.
func (t *Terminal) Render(g grid.Grid) string {
	var sb strings.Builder

	// The ANSI swatch labels are palette indices already; a fraction
	// legend would mislabel them.
	legend := g.Config.Legend && g.Config.Mode != grid.ModeANSI

	if legend {
		t.writeHeader(&sb, g)
	}
	for _, row := range g.Rows {
		if legend {
			hue := int(math.Round(row[0].Sample.H))
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%4d° ", hue)))
		}
		for _, c := range row {
			sb.WriteString(renderCell(c, g.Config))
		}
		sb.WriteString("\n")
	}

	if g.Config.Mode == grid.ModeANSI {
		t.writeBasePalette(&sb)
		t.writeGrayRamp(&sb)
	}
	return sb.String()
}

// writeHeader emits the title line and the per-column saturation/value
// labels.
func (t *Terminal) writeHeader(sb *strings.Builder, g grid.Grid) {
	caser := cases.Title(language.English)
	title := fmt.Sprintf("%s · %d hues · %d values · %d saturations",
		caser.String(g.Config.Mode.String()),
		g.Config.Hues, g.Config.Values, g.Config.Saturations)
	sb.WriteString(t.theme.Header.Render(title))
	sb.WriteString("\n")

	sb.WriteString(t.theme.Muted.Render(padCenter("hue", hueColWidth)))
	for s := g.Config.Saturations - 1; s >= 0; s-- {
		satPct := int(math.Round(float64(s+1) / float64(g.Config.Saturations) * 100))
		for v := 0; v < g.Config.Values; v++ {
			valPct := int(math.Round(float64(v+1) / float64(g.Config.Values) * 100))
			label := fmt.Sprintf("s%d v%d", satPct, valPct)
			sb.WriteString(t.theme.Muted.Render(padCenter(label, cellWidth)))
		}
	}
	sb.WriteString("\n")
}

// renderCell emits one swatch: background escape, contrast foreground,
// centered label, reset. NONE cells carry no escapes at all.
func renderCell(c grid.Cell, cfg grid.Config) string {
	label := cellLabel(c)
	if c.Mode == grid.ModeNONE {
		return padCenter(label, cellWidth)
	}

	var bg string
	switch c.Mode {
	case grid.ModeANSI:
		bg = fmt.Sprintf("\x1b[48;5;%dm", c.Index)
	case grid.ModeLUM:
		bg = fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.Lum, c.Lum, c.Lum)
	default:
		bg = fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
	}
	fg := contrastFg(c, cfg)
	return bg + fg + padCenter(label, cellWidth) + reset
}

func cellLabel(c grid.Cell) string {
	switch c.Mode {
	case grid.ModeANSI:
		return strconv.Itoa(int(c.Index))
	case grid.ModeLUM:
		return fmt.Sprintf("%d%%", int(math.Round(float64(c.Lum)/255*100)))
	default:
		return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
	}
}

// contrastFg picks a grayscale foreground that stays readable on the
// swatch: dark text on bright cells, bright text on dark cells, eased
// toward the extremes by the dark factor.
func contrastFg(c grid.Cell, cfg grid.Config) string {
	lum := hsv.Luminance(c.R, c.G, c.B)
	threshold := float64(cfg.Dark) / 100
	var v float64
	if lum > threshold {
		v = math.Pow(1-lum, cfg.DarkFactor)
	} else {
		v = math.Pow(lum, 1/cfg.DarkFactor)
	}
	gray := uint8(math.Round(v * 255))
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", gray, gray, gray)
}

// writeBasePalette prints the 16 base colors as indexed swatches, two
// rows of eight. Their actual values are up to the emulator.
func (t *Terminal) writeBasePalette(sb *strings.Builder) {
	for i := 0; i < 16; i++ {
		if i%8 == 0 {
			sb.WriteString("\n")
		}
		fg := fgBlack
		if i == 0 {
			fg = fgGrey
		}
		fmt.Fprintf(sb, "\x1b[48;5;%dm%s%s%s", i, fg, padCenter(strconv.Itoa(i), cellWidth), reset)
	}
	sb.WriteString("\n")
}

// writeGrayRamp prints the grayscale ramp, indices 232-255.
func (t *Terminal) writeGrayRamp(sb *strings.Builder) {
	for i := 232; i <= 255; i++ {
		if (i-232)%8 == 0 {
			sb.WriteString("\n")
		}
		fg := fgBlack
		if i <= 237 {
			fg = fgGrey
		}
		fmt.Fprintf(sb, "\x1b[48;5;%dm%s%s%s", i, fg, padCenter(strconv.Itoa(i), cellWidth), reset)
	}
	sb.WriteString("\n")
}

// padCenter centers s in a field of the given display width, measured
// with go-runewidth so wide runes don't skew the columns.
func padCenter(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
