package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thinkscotty/contentspark/internal/models"
)

// Accent defines one selectable accent colour loaded from palette.yaml.
type Accent struct {
	ID        models.AccentColor `yaml:"id" json:"id"`
	Name      string             `yaml:"name" json:"name"`
	Primary   string             `yaml:"primary" json:"primary"`       // buttons, active nav item
	Hover     string             `yaml:"hover" json:"hover"`           // button hover
	Soft      string             `yaml:"soft" json:"soft"`             // light-mode tinted background
	SoftText  string             `yaml:"soft_text" json:"soft_text"`   // text on the tinted background
	DarkText  string             `yaml:"dark_text" json:"dark_text"`   // accent text in dark mode
	BorderHex string             `yaml:"border" json:"border"`         // quote rule, focus ring
}

// Surface holds the neutral colours for one theme mode.
type Surface struct {
	Background string
	Card       string
	Text       string
	Muted      string
}

type paletteFile struct {
	Accents []Accent `yaml:"accents"`
}

// LoadPalette reads accent colours from a YAML file. Falls back to defaults if the
// file is missing or empty. Unknown accent ids are rejected.
func LoadPalette(path string) ([]Accent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPalette(), nil
		}
		return nil, fmt.Errorf("read palette file: %w", err)
	}

	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse palette file: %w", err)
	}

	if len(f.Accents) == 0 {
		return DefaultPalette(), nil
	}
	for _, a := range f.Accents {
		if !a.ID.Valid() {
			return nil, fmt.Errorf("palette file: unknown accent %q", a.ID)
		}
	}
	return f.Accents, nil
}

// DefaultPalette returns the built-in accent colours.
func DefaultPalette() []Accent {
	return []Accent{
		{
			ID: models.AccentIndigo, Name: "Xanh Chàm",
			Primary: "#4f46e5", Hover: "#4338ca", Soft: "#e0e7ff", SoftText: "#4338ca",
			DarkText: "#818cf8", BorderHex: "#6366f1",
		},
		{
			ID: models.AccentGreen, Name: "Xanh Lá",
			Primary: "#16a34a", Hover: "#15803d", Soft: "#dcfce7", SoftText: "#15803d",
			DarkText: "#4ade80", BorderHex: "#22c55e",
		},
		{
			ID: models.AccentPurple, Name: "Tím",
			Primary: "#9333ea", Hover: "#7e22ce", Soft: "#f3e8ff", SoftText: "#7e22ce",
			DarkText: "#c084fc", BorderHex: "#a855f7",
		},
	}
}

// SurfaceFor returns the neutral colours of a theme mode.
func SurfaceFor(mode models.ThemeMode) Surface {
	if mode == models.ModeDark {
		return Surface{Background: "#0f172a", Card: "#1e293b", Text: "#f1f5f9", Muted: "#94a3b8"}
	}
	return Surface{Background: "#f8fafc", Card: "#ffffff", Text: "#1e293b", Muted: "#64748b"}
}

// FindAccent looks up an accent by id, falling back to the first palette entry.
func FindAccent(palette []Accent, id models.AccentColor) Accent {
	for _, a := range palette {
		if a.ID == id {
			return a
		}
	}
	if len(palette) > 0 {
		return palette[0]
	}
	return DefaultPalette()[0]
}

// ResolveThemeCSS returns CSS custom property declarations for the given settings,
// suitable for injection inside :root { ... }.
func ResolveThemeCSS(settings models.ThemeSettings, palette []Accent) string {
	accent := FindAccent(palette, settings.Accent)
	surface := SurfaceFor(settings.Mode)

	card := parseHex(surface.Card)
	text := parseHex(surface.Text)

	accentText := accent.Primary
	softBg := accent.Soft
	if settings.Mode == models.ModeDark {
		accentText = accent.DarkText
		// tinted background at roughly 20% over the dark card
		softBg = hexString(blendColors(card, parseHex(accent.BorderHex), 0.20))
	}

	var cardHover rgb
	if settings.Mode == models.ModeDark {
		cardHover = lighten(card, 0.06)
	} else {
		cardHover = darken(card, 0.04)
	}
	border := blendColors(card, text, 0.15)

	var b strings.Builder
	writeProp := func(name, value string) {
		fmt.Fprintf(&b, "--%s: %s; ", name, value)
	}

	writeProp("bg", surface.Background)
	writeProp("bg-card", surface.Card)
	writeProp("bg-card-hover", hexString(cardHover))
	writeProp("border", hexString(border))
	writeProp("text", surface.Text)
	writeProp("text-muted", surface.Muted)
	writeProp("accent", accent.Primary)
	writeProp("accent-hover", accent.Hover)
	writeProp("accent-text", accentText)
	writeProp("accent-soft", softBg)
	writeProp("accent-border", accent.BorderHex)

	// Button label colour: white unless the accent is very light
	btnText := "#ffffff"
	if luminance(parseHex(accent.Primary)) > 0.6 {
		btnText = "#1e293b"
	}
	writeProp("accent-contrast", btnText)
	fmt.Fprintf(&b, "color-scheme: %s;", settings.Mode)

	return b.String()
}

type rgb struct {
	r, g, b uint8
}

func parseHex(hex string) rgb {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return rgb{r, g, b}
}

func hexString(c rgb) string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func blendColors(c1, c2 rgb, ratio float64) rgb {
	return rgb{
		r: uint8(float64(c1.r)*(1-ratio) + float64(c2.r)*ratio),
		g: uint8(float64(c1.g)*(1-ratio) + float64(c2.g)*ratio),
		b: uint8(float64(c1.b)*(1-ratio) + float64(c2.b)*ratio),
	}
}

func luminance(c rgb) float64 {
	return 0.2126*float64(c.r)/255.0 + 0.7152*float64(c.g)/255.0 + 0.0722*float64(c.b)/255.0
}

func darken(c rgb, amount float64) rgb {
	return rgb{
		r: uint8(math.Max(0, float64(c.r)*(1-amount))),
		g: uint8(math.Max(0, float64(c.g)*(1-amount))),
		b: uint8(math.Max(0, float64(c.b)*(1-amount))),
	}
}

func lighten(c rgb, amount float64) rgb {
	return rgb{
		r: uint8(math.Min(255, float64(c.r)+amount*255)),
		g: uint8(math.Min(255, float64(c.g)+amount*255)),
		b: uint8(math.Min(255, float64(c.b)+amount*255)),
	}
}
