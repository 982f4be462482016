package color

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestAlpha(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		opacity  float64
		expected string
	}{
		{"black opaque", "#000000", 1, "rgba(0, 0, 0, 1)"},
		{"white half", "#FFFFFF", 0.5, "rgba(255, 255, 255, 0.5)"},
		{"primary tint", "#4CAF50", 0.15, "rgba(76, 175, 80, 0.15)"},
		{"lowercase digits", "#e9ecef", 0.3, "rgba(233, 236, 239, 0.3)"},
		{"opacity passes through above one", "#010203", 2.5, "rgba(1, 2, 3, 2.5)"},
		{"negative opacity passes through", "#010203", -1, "rgba(1, 2, 3, -1)"},
		{"zero opacity", "#010203", 0, "rgba(1, 2, 3, 0)"},
		{"short hex yields NaN channel", "#FFF", 1, "rgba(255, 15, NaN, 1)"},
		{"non hex digits yield NaN", "#ZZ0000", 1, "rgba(NaN, 0, 0, 1)"},
		{"empty string", "", 1, "rgba(NaN, NaN, NaN, 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Alpha(tt.hex, tt.opacity))
		})
	}
}

func TestLighten(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		amount   float64
		expected string
	}{
		{"zero amount is identity", "#808080", 0, "#808080"},
		{"saturates to white", "#000000", 100, "#ffffff"},
		{"saturates to black", "#ffffff", -100, "#000000"},
		{"primary lighter", "#4CAF50", 10, "#66c96a"},
		{"half rounds up", "#000000", 10, "#1a1a1a"},
		{"negative half rounds toward zero", "#808080", -10, "#676767"},
		{"per channel clamp", "#F44336", 20, "#ff7669"},
		{"output is lowercase", "#ABCDEF", 0, "#abcdef"},
		{"exactly one is kept", "#1a1a1a", -10, "#010101"},
		{"below one clamps to zero", "#1a1a1a", -11, "#000000"},
		{"malformed is returned unchanged", "#FFF", 10, "#FFF"},
		{"named color is returned unchanged", "green", 10, "green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lighten(tt.hex, tt.amount))
		})
	}
}

func TestDarkenIsNegatedLighten(t *testing.T) {
	hexes := []string{"#000000", "#ffffff", "#4caf50", "#F44336", "#808080", "#03A9F4"}
	for _, hex := range hexes {
		for amount := -100.0; amount <= 100; amount += 2.5 {
			assert.Equal(t, Lighten(hex, -amount), Darken(hex, amount), "hex=%s amount=%v", hex, amount)
		}
	}
}

func TestLightenOutputShape(t *testing.T) {
	hexes := []string{"#000000", "#FFFFFF", "#4CAF50", "#9c27b0", "#010101", "#fefefe"}
	for _, hex := range hexes {
		for amount := -100.0; amount <= 100; amount += 0.5 {
			out := Lighten(hex, amount)
			assert.Regexp(t, hexPattern, out, "hex=%s amount=%v", hex, amount)
		}
	}
}

func TestLightenZeroIsIdempotent(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#4caf50", "#212529"} {
		assert.Equal(t, hex, Lighten(Lighten(hex, 0), 0))
	}
}

func TestLightenNonFinite(t *testing.T) {
	assert.Equal(t, "#ffffff", Lighten("#123456", math.Inf(1)))
	assert.Equal(t, "#000000", Lighten("#123456", math.Inf(-1)))
	assert.Equal(t, "#ffffff", Lighten("#123456", math.NaN()))
}

func TestDelta(t *testing.T) {
	tests := []struct {
		amount   float64
		expected float64
	}{
		{0, 0},
		{1, 3},
		{2, 5},
		{10, 26},
		{-10, -25},
		{50, 127},
		{-50, -127},
		{100, 255},
		{-100, -255},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Delta(tt.amount), "amount=%v", tt.amount)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#4CAF50")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 76, G: 175, B: 80}, c)
	assert.Equal(t, "#4caf50", c.Hex())

	for _, bad := range []string{"", "#", "#FFF", "#FFFFFFFF", "4CAF50", "#4CAF5G", "##4CAF5", "#+1+2+3"} {
		t.Run(bad, func(t *testing.T) {
			_, err := ParseHex(bad)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidHex))
			assert.False(t, Valid(bad))
		})
	}
}

func TestRGBShiftClamps(t *testing.T) {
	c := RGB{R: 250, G: 5, B: 128}
	assert.Equal(t, RGB{R: 255, G: 15, B: 138}, c.Shift(10))
	assert.Equal(t, RGB{R: 240, G: 0, B: 118}, c.Shift(-10))
	assert.Equal(t, "#ff0000", RGB{R: 300, G: -4, B: 0}.Hex())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{1, "1"},
		{0.5, "0.5"},
		{0.15, "0.15"},
		{-2, "-2"},
		{0, "0"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e21, "1.5e+21"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.in))
	}
}
