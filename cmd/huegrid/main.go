// huegrid renders a grid of terminal colors sampled from the HSV color
// wheel, so you can see how a terminal or palette maps hue, saturation,
// and value to visible output.
//
// Usage:
//
//	huegrid                        # 16 hues x 4 values x 4 saturations, truecolor
//	huegrid -H 8 -r 2 -l           # coarser grid with a legend
//	huegrid -d ansi                # nearest xterm-256 indices plus base palette
//	huegrid fmt -s warn "look out" # format text with ANSI escapes
//
// Display modes:
//
//	rgb   — 24-bit swatches labeled with their hex value (default)
//	ansi  — nearest xterm-256 swatches labeled with the palette index
//	lum   — grayscale swatches labeled with luminance percent
//	none  — uncolored labels, for checking raw escape handling
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/termtools/huegrid/internal/config"
	"github.com/termtools/huegrid/internal/detect"
	"github.com/termtools/huegrid/internal/version"
	"github.com/termtools/huegrid/pkg/format"
	"github.com/termtools/huegrid/pkg/grid"
	"github.com/termtools/huegrid/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Subcommand dispatch happens before flag parsing.
	if len(args) > 0 && args[0] == "fmt" {
		return runFmt(args[1:], stdout, stderr)
	}

	fs := pflag.NewFlagSet("huegrid", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  huegrid [flags]\n  huegrid fmt [flags] [text...]\n\nFlags:\n%s", fs.FlagUsages())
	}

	var cli config.CliFlags
	var help, showVersion bool
	fs.IntVarP(&cli.Hues, "hues", "H", config.DefaultHues, "hue sample count")
	fs.IntVarP(&cli.Values, "values", "V", config.DefaultValues, "value sample count")
	fs.IntVarP(&cli.Saturations, "saturations", "S", config.DefaultSaturations, "saturation sample count")
	fs.IntVarP(&cli.Resolution, "resolution", "r", 0, "overrides both value and saturation counts")
	fs.Float64VarP(&cli.Offset, "offset", "o", 0, "hue offset in degrees")
	fs.StringVarP(&cli.Display, "display", "d", config.DefaultDisplay, "display mode: rgb, ansi, lum, none")
	fs.IntVar(&cli.Dark, "dark", config.DefaultDark, "dark color threshold (0-100)")
	fs.Float64VarP(&cli.DarkFactor, "dark-factor", "D", config.DefaultDarkFactor, "brightness boost factor for dark cells")
	fs.BoolVarP(&cli.Legend, "legend", "l", false, "show legend (hue, saturation, and value)")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if help {
		fmt.Fprintf(stdout, "Display terminal colors.\n\nUsage:\n  huegrid [flags]\n  huegrid fmt [flags] [text...]\n\nFlags:\n%s", fs.FlagUsages())
		return 0
	}
	if showVersion {
		fmt.Fprintf(stdout, "huegrid %s (%s, %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "huegrid: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cli.HuesSet = fs.Changed("hues")
	cli.ValuesSet = fs.Changed("values")
	cli.SaturationsSet = fs.Changed("saturations")
	cli.ResolutionSet = fs.Changed("resolution")
	cli.OffsetSet = fs.Changed("offset")
	cli.DisplaySet = fs.Changed("display")
	cli.DarkSet = fs.Changed("dark")
	cli.DarkFactorSet = fs.Changed("dark-factor")
	cli.LegendSet = fs.Changed("legend")

	cfg, err := config.Resolve(cli)
	if err != nil {
		fmt.Fprintf(stderr, "huegrid: %v\n", err)
		fs.Usage()
		return 2
	}

	profile := detect.ProfileFor(stdout)
	cfg.Mode = detect.Degrade(cfg.Mode, profile, cli.DisplaySet)

	g, err := grid.Render(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "huegrid: %v\n", err)
		return 2
	}

	theme := render.DefaultTheme()
	if os.Getenv("NO_COLOR") != "" || profile == detect.Ascii {
		theme = render.MonoTheme()
	}
	fmt.Fprint(stdout, render.NewTerminal(theme).Render(g))
	return 0
}

// --- huegrid fmt subcommand ---

func runFmt(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("huegrid fmt", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  huegrid fmt [flags] [text...]\n\nFlags:\n%s", fs.FlagUsages())
	}

	var a format.Args
	var help bool
	fs.StringVarP(&a.Style, "style", "s", "", "premade style: ok, notice, error, warn, info, debug")
	fs.StringVarP(&a.Foreground, "foreground", "f", "", "foreground color (uppercase for bright)")
	fs.StringVarP(&a.Background, "background", "b", "", "background color (uppercase for bright)")
	fs.StringSliceVarP(&a.Options, "options", "o", nil, "formatting options: bold, dim, underline, inverted, strikethrough")
	fs.BoolVarP(&a.Reset, "reset", "R", false, "reset formatting before text")
	fs.BoolVarP(&a.NoReset, "no-reset", "r", false, "do not reset formatting after text")
	fs.BoolVarP(&a.NoNewline, "no-newline", "n", false, "do not print newline")
	fs.BoolVarP(&help, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if help {
		fmt.Fprintf(stdout, "Format text for an ANSI terminal.\n\nUsage:\n  huegrid fmt [flags] [text...]\n\nFlags:\n%s", fs.FlagUsages())
		return 0
	}
	a.Text = fs.Args()

	out, err := format.Format(a)
	if err != nil {
		fmt.Fprintf(stderr, "huegrid fmt: %v\n", err)
		fs.Usage()
		return 2
	}
	fmt.Fprint(stdout, out)
	return 0
}
