package theme

import (
	"strings"
)

// Swatch is one semantic color with its light, dark and text variants.
type Swatch struct {
	Main         string `yaml:"main,omitempty" json:"main"`
	Light        string `yaml:"light,omitempty" json:"light"`
	Dark         string `yaml:"dark,omitempty" json:"dark"`
	ContrastText string `yaml:"contrastText,omitempty" json:"contrastText"`
}

// Greys is the neutral scale, keyed like Material shades.
type Greys struct {
	G50  string `yaml:"50,omitempty" json:"50"`
	G100 string `yaml:"100,omitempty" json:"100"`
	G200 string `yaml:"200,omitempty" json:"200"`
	G300 string `yaml:"300,omitempty" json:"300"`
	G400 string `yaml:"400,omitempty" json:"400"`
	G500 string `yaml:"500,omitempty" json:"500"`
	G600 string `yaml:"600,omitempty" json:"600"`
	G700 string `yaml:"700,omitempty" json:"700"`
	G800 string `yaml:"800,omitempty" json:"800"`
	G900 string `yaml:"900,omitempty" json:"900"`
}

type TextColors struct {
	Primary   string `yaml:"primary,omitempty" json:"primary"`
	Secondary string `yaml:"secondary,omitempty" json:"secondary"`
	Disabled  string `yaml:"disabled,omitempty" json:"disabled"`
}

type BackgroundColors struct {
	Default string `yaml:"default,omitempty" json:"default"`
	Paper   string `yaml:"paper,omitempty" json:"paper"`
	Card    string `yaml:"card,omitempty" json:"card"`
}

// Palette is the full set of app colors. A zero field in an overlay palette
// means "keep the base value", see Merge.
type Palette struct {
	Primary    Swatch           `yaml:"primary,omitempty" json:"primary"`
	Secondary  Swatch           `yaml:"secondary,omitempty" json:"secondary"`
	Success    Swatch           `yaml:"success,omitempty" json:"success"`
	Warning    Swatch           `yaml:"warning,omitempty" json:"warning"`
	Error      Swatch           `yaml:"error,omitempty" json:"error"`
	Info       Swatch           `yaml:"info,omitempty" json:"info"`
	Grey       Greys            `yaml:"grey,omitempty" json:"grey"`
	Text       TextColors       `yaml:"text,omitempty" json:"text"`
	Background BackgroundColors `yaml:"background,omitempty" json:"background"`
	Divider    string           `yaml:"divider,omitempty" json:"divider"`
}

// Entry is a single palette color addressed by its dotted path.
type Entry struct {
	Path string `json:"path" yaml:"path"`
	Hex  string `json:"hex" yaml:"hex"`
}

// DefaultPalette returns the palette the app ships with.
func DefaultPalette() Palette {
	return Palette{
		Primary: Swatch{
			Main:         "#4CAF50",
			Light:        "#81C784",
			Dark:         "#388E3C",
			ContrastText: "#FFFFFF",
		},
		Secondary: Swatch{
			Main:         "#9C27B0",
			Light:        "#BA68C8",
			Dark:         "#7B1FA2",
			ContrastText: "#FFFFFF",
		},
		Success: Swatch{
			Main:         "#4CAF50",
			Light:        "#81C784",
			Dark:         "#388E3C",
			ContrastText: "#FFFFFF",
		},
		Warning: Swatch{
			Main:         "#FF9800",
			Light:        "#FFB74D",
			Dark:         "#F57C00",
			ContrastText: "#000000",
		},
		Error: Swatch{
			Main:         "#F44336",
			Light:        "#E57373",
			Dark:         "#D32F2F",
			ContrastText: "#FFFFFF",
		},
		Info: Swatch{
			Main:         "#03A9F4",
			Light:        "#4FC3F7",
			Dark:         "#0288D1",
			ContrastText: "#FFFFFF",
		},
		Grey: Greys{
			G50:  "#FAFAFA",
			G100: "#F5F5F5",
			G200: "#EEEEEE",
			G300: "#E0E0E0",
			G400: "#BDBDBD",
			G500: "#9E9E9E",
			G600: "#757575",
			G700: "#616161",
			G800: "#424242",
			G900: "#212121",
		},
		Text: TextColors{
			Primary:   "#212529",
			Secondary: "#666666",
			Disabled:  "#9E9E9E",
		},
		Background: BackgroundColors{
			Default: "#F8F9FA",
			Paper:   "#FFFFFF",
			Card:    "#FFFFFF",
		},
		Divider: "#F1F3F5",
	}
}

type field struct {
	path string
	ptr  *string
}

func swatchFields(prefix string, s *Swatch) []field {
	return []field{
		{prefix + ".main", &s.Main},
		{prefix + ".light", &s.Light},
		{prefix + ".dark", &s.Dark},
		{prefix + ".contrastText", &s.ContrastText},
	}
}

// fields lists every color slot of p in display order.
func (p *Palette) fields() []field {
	var fs []field
	fs = append(fs, swatchFields("primary", &p.Primary)...)
	fs = append(fs, swatchFields("secondary", &p.Secondary)...)
	fs = append(fs, swatchFields("success", &p.Success)...)
	fs = append(fs, swatchFields("warning", &p.Warning)...)
	fs = append(fs, swatchFields("error", &p.Error)...)
	fs = append(fs, swatchFields("info", &p.Info)...)
	fs = append(fs,
		field{"grey.50", &p.Grey.G50},
		field{"grey.100", &p.Grey.G100},
		field{"grey.200", &p.Grey.G200},
		field{"grey.300", &p.Grey.G300},
		field{"grey.400", &p.Grey.G400},
		field{"grey.500", &p.Grey.G500},
		field{"grey.600", &p.Grey.G600},
		field{"grey.700", &p.Grey.G700},
		field{"grey.800", &p.Grey.G800},
		field{"grey.900", &p.Grey.G900},
		field{"text.primary", &p.Text.Primary},
		field{"text.secondary", &p.Text.Secondary},
		field{"text.disabled", &p.Text.Disabled},
		field{"background.default", &p.Background.Default},
		field{"background.paper", &p.Background.Paper},
		field{"background.card", &p.Background.Card},
		field{"divider", &p.Divider},
	)
	return fs
}

// Entries returns every color in a stable order.
func (p Palette) Entries() []Entry {
	fs := p.fields()
	entries := make([]Entry, 0, len(fs))
	for _, f := range fs {
		entries = append(entries, Entry{Path: f.path, Hex: *f.ptr})
	}
	return entries
}

// Lookup resolves a dotted path such as "primary.main" or "grey.500".
// Matching is case-insensitive.
func (p Palette) Lookup(path string) (string, bool) {
	for _, f := range p.fields() {
		if strings.EqualFold(f.path, path) {
			return *f.ptr, true
		}
	}
	return "", false
}

// Merge returns p with every non-empty color of overlay applied on top.
func (p Palette) Merge(overlay Palette) Palette {
	merged := p
	dst := merged.fields()
	src := overlay.fields()
	for i := range dst {
		if v := *src[i].ptr; v != "" {
			*dst[i].ptr = v
		}
	}
	return merged
}

// IsZero reports whether no color is set. yaml.v3 uses it for omitempty.
func (p Palette) IsZero() bool {
	for _, f := range p.fields() {
		if *f.ptr != "" {
			return false
		}
	}
	return true
}
