package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned (wrapped) by ParseHex for anything that is not
// a '#' followed by exactly six hexadecimal digits.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB holds the three color channels. Channels are expected in [0, 255].
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// ParseHex parses a "#RRGGBB" string. Both upper and lower case digits are
// accepted.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q: want #RRGGBB", ErrInvalidHex, s)
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Valid reports whether s is a well-formed "#RRGGBB" color.
func Valid(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// Hex formats the color as a lowercase, zero-padded "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		clampChannel(float64(c.R)), clampChannel(float64(c.G)), clampChannel(float64(c.B)))
}

// Shift adds delta to every channel and clamps the result.
func (c RGB) Shift(delta float64) RGB {
	return RGB{
		R: clampChannel(float64(c.R) + delta),
		G: clampChannel(float64(c.G) + delta),
		B: clampChannel(float64(c.B) + delta),
	}
}

// clampChannel maps v >= 255 to 255 and v < 1 to 0. NaN fails the upper
// comparison and saturates to 255.
func clampChannel(v float64) int {
	if !(v < 255) {
		return 255
	}
	if v < 1 {
		return 0
	}
	return int(v)
}

// Alpha renders hex as "rgba(R, G, B, opacity)". Opacity is written as given,
// without clamping. A channel that is not two hex digits renders as NaN.
func Alpha(hex string, opacity float64) string {
	return fmt.Sprintf("rgba(%s, %s, %s, %s)",
		alphaChannel(hex, 1), alphaChannel(hex, 3), alphaChannel(hex, 5),
		FormatNumber(opacity))
}

func alphaChannel(hex string, start int) string {
	end := start + 2
	if start > len(hex) {
		start = len(hex)
	}
	if end > len(hex) {
		end = len(hex)
	}
	v, err := strconv.ParseUint(hex[start:end], 16, 8)
	if err != nil {
		return "NaN"
	}
	return strconv.FormatUint(v, 10)
}

// Lighten shifts every channel of hex by round(2.55*amount). Negative amounts
// darken. Malformed input is returned unchanged.
func Lighten(hex string, amount float64) string {
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	return c.Shift(Delta(amount)).Hex()
}

// Darken is Lighten with the amount negated.
func Darken(hex string, amount float64) string {
	return Lighten(hex, -amount)
}

// Delta converts a percentage-like amount onto the 0-255 channel range.
// Halves round toward positive infinity.
func Delta(amount float64) float64 {
	return math.Floor(float64(2.55*amount) + 0.5)
}

// FormatNumber prints f as the shortest decimal that round-trips, switching
// to exponent notation outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + exp
}
