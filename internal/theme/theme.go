package theme

import (
	"fmt"
	"strings"

	"themectl/internal/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Scheme selects the light or dark navigation colors.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// ParseScheme accepts "light" or "dark" in any case. An empty string means
// light.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SchemeLight):
		return SchemeLight, nil
	case string(SchemeDark):
		return SchemeDark, nil
	default:
		return "", fmt.Errorf("unknown color scheme %q (want light or dark)", s)
	}
}

// Toggle returns the other scheme.
func (s Scheme) Toggle() Scheme {
	if s == SchemeDark {
		return SchemeLight
	}
	return SchemeDark
}

// NavigationColors are the colors handed to the navigation container.
type NavigationColors struct {
	Primary      string `json:"primary" yaml:"primary"`
	Background   string `json:"background" yaml:"background"`
	Card         string `json:"card" yaml:"card"`
	Text         string `json:"text" yaml:"text"`
	Border       string `json:"border" yaml:"border"`
	Notification string `json:"notification" yaml:"notification"`
}

// Navigation returns the navigation colors for s.
func Navigation(s Scheme) NavigationColors {
	if s == SchemeDark {
		return NavigationColors{
			Primary:      "#4CAF50",
			Background:   "#1a1a1a",
			Card:         "#2d2d2d",
			Text:         "#ffffff",
			Border:       "#404040",
			Notification: "#E91E63",
		}
	}
	return NavigationColors{
		Primary:      "#4CAF50",
		Background:   "#f8f9fa",
		Card:         "#ffffff",
		Text:         "#212529",
		Border:       "#e9ecef",
		Notification: "#E91E63",
	}
}

// AttendanceStatus is the kind of a day in the attendance history.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLeave   AttendanceStatus = "leave"
)

// UnknownStatusColor is used for any status without a palette role.
const UnknownStatusColor = "#6c757d"

// Theme bundles a validated palette with the active scheme. It replaces the
// app-wide palette singleton: build one and pass it to whoever renders.
type Theme struct {
	Palette Palette
	Scheme  Scheme
}

// New validates every color in p and returns a Theme.
func New(p Palette, s Scheme) (*Theme, error) {
	for _, e := range p.Entries() {
		if _, err := color.ParseHex(e.Hex); err != nil {
			return nil, fmt.Errorf("palette entry %s: %w", e.Path, err)
		}
	}
	if _, err := ParseScheme(string(s)); err != nil {
		return nil, err
	}
	if s == "" {
		s = SchemeLight
	}
	return &Theme{Palette: p, Scheme: s}, nil
}

// Default returns the shipped palette in the light scheme.
func Default() *Theme {
	return &Theme{Palette: DefaultPalette(), Scheme: SchemeLight}
}

func (t *Theme) Alpha(hex string, opacity float64) string {
	return color.Alpha(hex, opacity)
}

func (t *Theme) Lighten(hex string, amount float64) string {
	return color.Lighten(hex, amount)
}

func (t *Theme) Darken(hex string, amount float64) string {
	return color.Darken(hex, amount)
}

// Navigation returns the navigation colors for the theme's scheme.
func (t *Theme) Navigation() NavigationColors {
	return Navigation(t.Scheme)
}

// StatusColor maps an attendance status onto its palette color.
func (t *Theme) StatusColor(status AttendanceStatus) string {
	switch AttendanceStatus(strings.ToLower(string(status))) {
	case StatusPresent:
		return t.Palette.Success.Main
	case StatusAbsent:
		return t.Palette.Error.Main
	case StatusLeave:
		return t.Palette.Warning.Main
	default:
		return UnknownStatusColor
	}
}

// WithScheme returns a copy of t using s.
func (t *Theme) WithScheme(s Scheme) *Theme {
	c := *t
	c.Scheme = s
	return &c
}

const readableLightness = 0.7

// ReadableText picks black or white text for a background of the given hex,
// based on CIE L*. Malformed input gets white.
func ReadableText(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#FFFFFF"
	}
	l, _, _ := c.Lab()
	if l > readableLightness {
		return "#000000"
	}
	return "#FFFFFF"
}
