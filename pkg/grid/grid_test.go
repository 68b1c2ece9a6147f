package grid

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termtools/huegrid/pkg/hsv"
	"github.com/termtools/huegrid/pkg/palette"
)

func validConfig() Config {
	return Config{
		Hues:        16,
		Values:      4,
		Saturations: 4,
		Dark:        50,
		DarkFactor:  5,
		Mode:        ModeRGB,
	}
}

func TestRender_DimensionInvariant(t *testing.T) {
	for _, counts := range [][3]int{{1, 1, 1}, {4, 1, 1}, {16, 4, 4}, {3, 5, 2}} {
		cfg := validConfig()
		cfg.Hues, cfg.Values, cfg.Saturations = counts[0], counts[1], counts[2]
		g, err := Render(cfg)
		require.NoError(t, err)
		require.Len(t, g.Rows, cfg.Hues)
		for _, row := range g.Rows {
			assert.Len(t, row, cfg.Values*cfg.Saturations)
		}
	}
}

func TestRender_QuarterHueScenario(t *testing.T) {
	// hues=4, values=1, saturations=1 samples the wheel at 0°, 90°,
	// 180°, 270°, fully saturated at full value.
	cfg := validConfig()
	cfg.Hues, cfg.Values, cfg.Saturations = 4, 1, 1
	cfg.Dark = 0 // no boost, raw sector output

	g, err := Render(cfg)
	require.NoError(t, err)
	require.Len(t, g.Rows, 4)

	want := [][3]uint8{{255, 0, 0}, {128, 255, 0}, {0, 255, 255}, {128, 0, 255}}
	for i, row := range g.Rows {
		c := row[0]
		assert.Equal(t, want[i], [3]uint8{c.R, c.G, c.B}, "hue row %d", i)
		assert.Equal(t, 1.0, c.Sample.S)
		assert.Equal(t, 1.0, c.Sample.V)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	cfg := validConfig()
	cfg.Offset = 12.5
	a, err := Render(cfg)
	require.NoError(t, err)
	b, err := Render(cfg)
	require.NoError(t, err)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical configs produced different grids")
	}
}

func TestRender_DarkCellsBoostedByExactFactor(t *testing.T) {
	cfg := validConfig()
	cfg.Hues, cfg.Values, cfg.Saturations = 1, 2, 1
	cfg.Offset = 240 // blue, well below a 50% threshold
	cfg.DarkFactor = 1.5

	g, err := Render(cfg)
	require.NoError(t, err)
	row := g.Rows[0]
	require.Len(t, row, 2)

	for _, c := range row {
		require.True(t, c.Boosted, "blue cells sit below the threshold")
		r, gg, b := c.Sample.Bytes()
		br, bg, bb := hsv.Boost(r, gg, b, cfg.DarkFactor)
		assert.Equal(t, [3]uint8{br, bg, bb}, [3]uint8{c.R, c.G, c.B})
	}
	// v=0.5 blue is (0,0,128); x1.5 is exactly (0,0,192), no clamping.
	assert.Equal(t, uint8(192), row[0].B)
}

func TestRender_BrightCellsUntouched(t *testing.T) {
	cfg := validConfig()
	cfg.Hues, cfg.Values, cfg.Saturations = 1, 1, 1
	cfg.Offset = 60 // yellow, luminance well above 50%

	g, err := Render(cfg)
	require.NoError(t, err)
	c := g.Rows[0][0]
	assert.False(t, c.Boosted)
	assert.Equal(t, [3]uint8{255, 255, 0}, [3]uint8{c.R, c.G, c.B})
}

func TestRender_ModeMapping(t *testing.T) {
	cfg := validConfig()
	cfg.Hues, cfg.Values, cfg.Saturations = 1, 1, 1
	cfg.Dark = 0

	cfg.Mode = ModeANSI
	g, err := Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, palette.Nearest(255, 0, 0), g.Rows[0][0].Index)

	cfg.Mode = ModeLUM
	g, err = Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, uint8(76), g.Rows[0][0].Lum)
}

func TestRender_GuardsZeroCounts(t *testing.T) {
	_, err := Render(Config{Hues: 1, Values: 0, Saturations: 1, DarkFactor: 1})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"zero hues", func(c *Config) { c.Hues = 0 }, false},
		{"negative values", func(c *Config) { c.Values = -1 }, false},
		{"zero saturations", func(c *Config) { c.Saturations = 0 }, false},
		{"threshold over 100", func(c *Config) { c.Dark = 101 }, false},
		{"negative threshold", func(c *Config) { c.Dark = -1 }, false},
		{"zero factor", func(c *Config) { c.DarkFactor = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			}
		})
	}
}

func TestConfig_Validate_NormalizesOffset(t *testing.T) {
	cfg := validConfig()
	cfg.Offset = -90
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 270.0, cfg.Offset)

	cfg.Offset = 720
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.0, cfg.Offset)
}

func TestModeByName(t *testing.T) {
	for name, want := range map[string]Mode{"rgb": ModeRGB, "ansi": ModeANSI, "lum": ModeLUM, "none": ModeNONE} {
		got, err := ModeByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}
	_, err := ModeByName("hsl")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
