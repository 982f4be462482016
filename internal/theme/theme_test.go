package theme

import (
	"errors"
	"testing"

	"themectl/internal/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteIsValid(t *testing.T) {
	th, err := New(DefaultPalette(), SchemeLight)
	require.NoError(t, err)
	assert.Equal(t, SchemeLight, th.Scheme)

	for _, e := range th.Palette.Entries() {
		assert.True(t, color.Valid(e.Hex), "entry %s has invalid color %q", e.Path, e.Hex)
	}
}

func TestNewRejectsInvalidEntry(t *testing.T) {
	p := DefaultPalette()
	p.Warning.Light = "#FFB74"

	_, err := New(p, SchemeLight)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warning.light")
	assert.True(t, errors.Is(err, color.ErrInvalidHex))
}

func TestNewRejectsUnknownScheme(t *testing.T) {
	_, err := New(DefaultPalette(), Scheme("sepia"))
	require.Error(t, err)
}

func TestNewDefaultsScheme(t *testing.T) {
	th, err := New(DefaultPalette(), "")
	require.NoError(t, err)
	assert.Equal(t, SchemeLight, th.Scheme)
}

func TestEntriesOrderAndCount(t *testing.T) {
	entries := DefaultPalette().Entries()
	// 6 swatches x 4, 10 greys, 3 text, 3 background, divider
	assert.Len(t, entries, 41)
	assert.Equal(t, Entry{Path: "primary.main", Hex: "#4CAF50"}, entries[0])
	assert.Equal(t, Entry{Path: "divider", Hex: "#F1F3F5"}, entries[len(entries)-1])
}

func TestLookup(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		path     string
		expected string
		found    bool
	}{
		{"primary.main", "#4CAF50", true},
		{"Warning.ContrastText", "#000000", true},
		{"grey.500", "#9E9E9E", true},
		{"background.card", "#FFFFFF", true},
		{"divider", "#F1F3F5", true},
		{"primary", "", false},
		{"grey.550", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := p.Lookup(tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMerge(t *testing.T) {
	base := DefaultPalette()
	overlay := Palette{
		Primary: Swatch{Main: "#1976D2"},
		Grey:    Greys{G900: "#000000"},
		Divider: "#DDDDDD",
	}

	merged := base.Merge(overlay)

	assert.Equal(t, "#1976D2", merged.Primary.Main)
	assert.Equal(t, base.Primary.Light, merged.Primary.Light)
	assert.Equal(t, "#000000", merged.Grey.G900)
	assert.Equal(t, base.Grey.G800, merged.Grey.G800)
	assert.Equal(t, "#DDDDDD", merged.Divider)

	// base is untouched
	assert.Equal(t, "#4CAF50", base.Primary.Main)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Palette{}.IsZero())
	assert.False(t, Palette{Divider: "#000000"}.IsZero())
}

func TestStatusColor(t *testing.T) {
	th := Default()

	assert.Equal(t, "#4CAF50", th.StatusColor(StatusPresent))
	assert.Equal(t, "#F44336", th.StatusColor(StatusAbsent))
	assert.Equal(t, "#FF9800", th.StatusColor(StatusLeave))
	assert.Equal(t, "#FF9800", th.StatusColor("LEAVE"))
	assert.Equal(t, UnknownStatusColor, th.StatusColor("holiday"))
}

func TestThemeHelpersDelegate(t *testing.T) {
	th := Default()

	assert.Equal(t, "rgba(76, 175, 80, 0.15)", th.Alpha(th.Palette.Primary.Main, 0.15))
	assert.Equal(t, color.Lighten("#4CAF50", 10), th.Lighten("#4CAF50", 10))
	assert.Equal(t, th.Lighten("#4CAF50", -10), th.Darken("#4CAF50", 10))
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("DARK")
	require.NoError(t, err)
	assert.Equal(t, SchemeDark, s)

	s, err = ParseScheme("")
	require.NoError(t, err)
	assert.Equal(t, SchemeLight, s)

	_, err = ParseScheme("blue")
	assert.Error(t, err)

	assert.Equal(t, SchemeDark, SchemeLight.Toggle())
	assert.Equal(t, SchemeLight, SchemeDark.Toggle())
}

func TestNavigation(t *testing.T) {
	light := Navigation(SchemeLight)
	dark := Navigation(SchemeDark)

	assert.Equal(t, "#f8f9fa", light.Background)
	assert.Equal(t, "#1a1a1a", dark.Background)
	assert.Equal(t, light.Primary, dark.Primary)
	assert.Equal(t, dark, Default().WithScheme(SchemeDark).Navigation())
}

func TestReadableText(t *testing.T) {
	tests := []struct {
		bg       string
		expected string
	}{
		{"#FFFFFF", "#000000"},
		{"#FAFAFA", "#000000"},
		{"#FF9800", "#000000"},
		{"#000000", "#FFFFFF"},
		{"#212121", "#FFFFFF"},
		{"#4CAF50", "#FFFFFF"},
		{"#9C27B0", "#FFFFFF"},
		{"not-a-color", "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadableText(tt.bg))
		})
	}
}
