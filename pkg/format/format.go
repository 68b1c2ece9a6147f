// Package format composes SGR escape sequences for the `huegrid fmt`
// subcommand: named foreground/background colors, text attributes, and
// a few preset styles.
package format

import (
	"fmt"
	"strings"
)

const (
	codeStart = "\x1b["
	codeEnd   = "m"
	reset     = "\x1b[m"
)

// Args holds the fully parsed formatting request.
type Args struct {
	Text       []string
	Style      string
	Foreground string
	Background string
	Options    []string
	Reset      bool // emit a reset before the text
	NoReset    bool // skip the reset after the text
	NoNewline  bool
}

// colorDigits maps color names (and their single-letter aliases) to the
// SGR digit added to 30 (foreground) or 40 (background). Bright
// variants sit at +60.
var colorDigits = map[string]int{
	"black": 0, "k": 0,
	"red": 1, "r": 1,
	"green": 2, "g": 2,
	"yellow": 3, "y": 3,
	"blue": 4, "b": 4,
	"magenta": 5, "m": 5,
	"cyan": 6, "c": 6,
	"white": 7, "w": 7,
	"bright-black": 60, "K": 60, "BLACK": 60,
	"bright-red": 61, "R": 61, "RED": 61,
	"bright-green": 62, "G": 62, "GREEN": 62,
	"bright-yellow": 63, "Y": 63, "YELLOW": 63,
	"bright-blue": 64, "B": 64, "BLUE": 64,
	"bright-magenta": 65, "M": 65, "MAGENTA": 65,
	"bright-cyan": 66, "C": 66, "CYAN": 66,
	"bright-white": 67, "W": 67, "WHITE": 67,
}

var optionCodes = map[string]int{
	"bold": 1, "b": 1,
	"dim": 2, "d": 2,
	"underline": 4, "u": 4,
	"inverted": 7, "i": 7,
	"strikethrough": 9, "s": 9,
}

// Format renders the text with the requested formatting. A preset style
// replaces any explicit colors and options.
func Format(args Args) (string, error) {
	if args.Style != "" {
		if args.Foreground != "" || args.Background != "" || len(args.Options) > 0 {
			return "", fmt.Errorf("style %q conflicts with explicit colors and options", args.Style)
		}
		var err error
		args, err = applyStyle(args)
		if err != nil {
			return "", err
		}
	}

	var codes []string
	if args.Foreground != "" {
		d, ok := colorDigits[args.Foreground]
		if !ok {
			return "", fmt.Errorf("unknown color %q", args.Foreground)
		}
		codes = append(codes, fmt.Sprintf("%d", 30+d))
	}
	if args.Background != "" {
		d, ok := colorDigits[args.Background]
		if !ok {
			return "", fmt.Errorf("unknown color %q", args.Background)
		}
		codes = append(codes, fmt.Sprintf("%d", 40+d))
	}
	for _, opt := range args.Options {
		code, ok := optionCodes[opt]
		if !ok {
			return "", fmt.Errorf("unknown formatting option %q", opt)
		}
		codes = append(codes, fmt.Sprintf("%d", code))
	}

	result := strings.Join(args.Text, " ")
	if len(codes) > 0 {
		result = codeStart + strings.Join(codes, ";") + codeEnd + result
	}
	if args.Reset {
		result = reset + result
	}
	if !args.NoReset {
		result += reset
	}
	if !args.NoNewline {
		result += "\n"
	}
	return result, nil
}

// applyStyle expands a preset style into colors and options.
func applyStyle(args Args) (Args, error) {
	switch args.Style {
	case "ok":
		args.Foreground = "green"
	case "notice":
		args.Foreground = "magenta"
	case "error":
		args.Foreground = "red"
	case "warn":
		args.Foreground = "yellow"
	case "info":
		args.Foreground = "cyan"
	case "debug":
		args.Background = "cyan"
		args.Foreground = "black"
		args.Options = []string{"dim"}
	default:
		return args, fmt.Errorf("unknown style %q (expected ok, notice, error, warn, info, debug)", args.Style)
	}
	return args, nil
}
