// Package hsv provides HSV color samples and their conversion to
// displayable RGB values.
package hsv

import "math"

// Sample is a single point in HSV space. Hue is in degrees [0,360);
// saturation and value are fractions in [0,1]. Samples are immutable
// once constructed.
type Sample struct {
	H float64
	S float64
	V float64
}

// New constructs a Sample with the hue normalized into [0,360).
func New(h, s, v float64) Sample {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return Sample{H: h, S: s, V: v}
}

// RGB converts the sample to RGB channels in [0,1] using the classical
// sector formula: the hue circle is split into six 60° sectors, chroma
// c = v*s spread across them. Saturation 0 yields gray; value 0 yields
// black regardless of hue.
func (c Sample) RGB() (r, g, b float64) {
	chroma := c.V * c.S
	x := chroma * (1 - math.Abs(math.Mod(c.H/60, 2)-1))
	m := c.V - chroma

	switch {
	case c.H < 60:
		r, g, b = chroma, x, 0
	case c.H < 120:
		r, g, b = x, chroma, 0
	case c.H < 180:
		r, g, b = 0, chroma, x
	case c.H < 240:
		r, g, b = 0, x, chroma
	case c.H < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return r + m, g + m, b + m
}

// Bytes converts the sample to rounded 8-bit RGB channels.
func (c Sample) Bytes() (r, g, b uint8) {
	fr, fg, fb := c.RGB()
	return toByte(fr), toByte(fg), toByte(fb)
}

// Luminance estimates perceptual brightness of an RGB triple as a
// fraction in [0,1], using the Rec.601 weights 0.299/0.587/0.114.
func Luminance(r, g, b uint8) float64 {
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// LumByte returns the luminance of an RGB triple as a single grayscale
// byte.
func LumByte(r, g, b uint8) uint8 {
	return uint8(math.Round(Luminance(r, g, b) * 255))
}

// Boost scales each channel by factor, clamping to 255. It is the
// display-side compensation for terminals that render dark colors
// poorly; the underlying sample is never modified.
func Boost(r, g, b uint8, factor float64) (uint8, uint8, uint8) {
	return scale(r, factor), scale(g, factor), scale(b, factor)
}

func scale(c uint8, factor float64) uint8 {
	v := math.Round(float64(c) * factor)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func toByte(f float64) uint8 {
	v := math.Round(f * 255)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
