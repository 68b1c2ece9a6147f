package hsv

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSample_QuarterHues_MatchSectorFormula(t *testing.T) {
	cases := []struct {
		hue     float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{90, 128, 255, 0},
		{180, 0, 255, 255},
		{270, 128, 0, 255},
	}
	for _, tc := range cases {
		r, g, b := New(tc.hue, 1, 1).Bytes()
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("hue %.0f: got (%d,%d,%d), want (%d,%d,%d)", tc.hue, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestSample_ZeroSaturation_YieldsGray(t *testing.T) {
	for _, hue := range []float64{0, 33, 120, 275, 359.9} {
		r, g, b := New(hue, 0, 0.6).Bytes()
		if r != g || g != b {
			t.Errorf("hue %.1f at s=0: got (%d,%d,%d), want gray", hue, r, g, b)
		}
	}
}

func TestSample_ZeroValue_YieldsBlack(t *testing.T) {
	for _, hue := range []float64{0, 90, 222} {
		r, g, b := New(hue, 1, 0).Bytes()
		if r != 0 || g != 0 || b != 0 {
			t.Errorf("hue %.0f at v=0: got (%d,%d,%d), want black", hue, r, g, b)
		}
	}
}

func TestNew_WrapsHue(t *testing.T) {
	r0, g0, b0 := New(0, 1, 1).Bytes()
	r1, g1, b1 := New(360, 1, 1).Bytes()
	if r0 != r1 || g0 != g1 || b0 != b1 {
		t.Errorf("hue 360 != hue 0: (%d,%d,%d) vs (%d,%d,%d)", r1, g1, b1, r0, g0, b0)
	}
	if h := New(-90, 1, 1).H; h != 270 {
		t.Errorf("hue -90: normalized to %.0f, want 270", h)
	}
}

// The sector implementation must agree with go-colorful's reference
// HSV conversion across the whole lattice.
func TestSample_RGB_AgreesWithColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 7.5 {
		for s := 0.0; s <= 1; s += 0.25 {
			for v := 0.0; v <= 1; v += 0.25 {
				r, g, b := New(h, s, v).RGB()
				want := colorful.Hsv(h, s, v)
				if math.Abs(r-want.R) > 1e-9 || math.Abs(g-want.G) > 1e-9 || math.Abs(b-want.B) > 1e-9 {
					t.Fatalf("hsv(%g,%g,%g): got (%g,%g,%g), want (%g,%g,%g)",
						h, s, v, r, g, b, want.R, want.G, want.B)
				}
			}
		}
	}
}

func TestLuminance_FullRed(t *testing.T) {
	if got := LumByte(255, 0, 0); got != 76 {
		t.Errorf("lum(red) = %d, want 76", got)
	}
}

func TestBoost_ScalesAndClamps(t *testing.T) {
	r, g, b := Boost(10, 20, 100, 5)
	if r != 50 || g != 100 {
		t.Errorf("boost x5: got (%d,%d), want (50,100)", r, g)
	}
	if b != 255 {
		t.Errorf("boost x5 should clamp 100 to 255, got %d", b)
	}
}
