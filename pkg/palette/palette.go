// Package palette holds the fixed xterm 256-color palette and nearest-color
// quantization against it.
package palette

import "github.com/lucasb-eyer/go-colorful"

// Entries in the 6x6x6 color cube take their channel values from this
// ramp rather than an even spread.
var cubeRamp = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// The 16 base colors follow the VGA palette. Most emulators let users
// remap these, so Nearest never matches into them.
var base16 = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xaa, 0x00, 0x00}, // red
	{0x00, 0xaa, 0x00}, // green
	{0xaa, 0x55, 0x00}, // yellow
	{0x00, 0x00, 0xaa}, // blue
	{0xaa, 0x00, 0xaa}, // magenta
	{0x00, 0xaa, 0xaa}, // cyan
	{0xaa, 0xaa, 0xaa}, // white
	{0x55, 0x55, 0x55}, // bright black
	{0xff, 0x55, 0x55}, // bright red
	{0x55, 0xff, 0x55}, // bright green
	{0xff, 0xff, 0x55}, // bright yellow
	{0x55, 0x55, 0xff}, // bright blue
	{0xff, 0x55, 0xff}, // bright magenta
	{0x55, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

var table [256][3]uint8

func init() {
	for i, c := range base16 {
		table[i] = c
	}
	// 6x6x6 cube, indices 16-231.
	for i := 0; i < 216; i++ {
		table[16+i] = [3]uint8{
			cubeRamp[(i/36)%6],
			cubeRamp[(i/6)%6],
			cubeRamp[i%6],
		}
	}
	// Grayscale ramp, indices 232-255, components 0x08 to 0xee.
	for i := 0; i < 24; i++ {
		gray := uint8(8 + 10*i)
		table[232+i] = [3]uint8{gray, gray, gray}
	}
}

// RGB returns the RGB channels of a palette index.
func RGB(index uint8) (r, g, b uint8) {
	e := table[index]
	return e[0], e[1], e[2]
}

// Nearest returns the palette index closest to the given RGB triple by
// Euclidean distance in RGB space. Only indices 16-255 participate;
// the base 16 are user-configurable and unreliable as match targets.
func Nearest(r, g, b uint8) uint8 {
	target := rgbColor(r, g, b)
	best, bestDist := 16, target.DistanceRgb(rgbColor(RGB(16)))
	for i := 17; i < 256; i++ {
		d := target.DistanceRgb(rgbColor(RGB(uint8(i))))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func rgbColor(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}
