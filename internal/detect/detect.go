// Package detect probes the output terminal's color capability so the
// CLI can fall back from truecolor swatches on terminals that can't
// show them.
package detect

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/termtools/huegrid/pkg/grid"
)

// Profile is the color capability of an output.
type Profile int

const (
	Ascii     Profile = iota // no color support, or not a terminal
	ANSI16                   // 16 colors
	ANSI256                  // 256 indexed colors
	TrueColor                // 24-bit color
)

// String returns a human-readable profile name.
func (p Profile) String() string {
	switch p {
	case ANSI16:
		return "ansi16"
	case ANSI256:
		return "ansi256"
	case TrueColor:
		return "truecolor"
	default:
		return "ascii"
	}
}

// ProfileFor reports the color profile of w. Anything that is not a
// terminal is Ascii: piped output gets whatever mode was requested,
// unmodified, so redirection stays deterministic.
func ProfileFor(w io.Writer) Profile {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Ascii
	}
	switch termenv.NewOutput(f).Profile {
	case termenv.TrueColor:
		return TrueColor
	case termenv.ANSI256:
		return ANSI256
	case termenv.ANSI:
		return ANSI16
	default:
		return Ascii
	}
}

// Degrade adjusts the requested display mode to what the terminal can
// show. A mode forced on the command line is never changed, and
// non-terminal output (Ascii) is left alone.
func Degrade(requested grid.Mode, p Profile, forced bool) grid.Mode {
	if forced || p == Ascii || p == TrueColor {
		return requested
	}
	if requested == grid.ModeRGB || requested == grid.ModeLUM {
		return grid.ModeANSI
	}
	return requested
}
