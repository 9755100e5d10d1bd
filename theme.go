package mdtype

import (
	"sort"
	"strings"

	"pkt.systems/mdtype/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles used when rendering a document.
type Styles struct {
	Text          Style
	Bold          Style
	Italic        Style
	Strikethrough Style
	Status        Style
}

// Theme provides named styles for rich-text rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:          style(p.Text),
		Bold:          style(palette.Bold, p.Bold),
		Italic:        style(palette.Italic, p.Italic),
		Strikethrough: style(palette.Strikethrough, p.Strikethrough),
		Status:        style(p.Status),
	}
}

// Prefix returns the ANSI prefix for a character carrying attrs.
func (s Styles) Prefix(attrs Attributes) string {
	if attrs.IsPlain() {
		return s.Text.Prefix
	}
	var b strings.Builder
	if attrs.Weight == WeightBold {
		b.WriteString(s.Bold.Prefix)
	}
	if attrs.Slant == SlantItalic {
		b.WriteString(s.Italic.Prefix)
	}
	if attrs.Strikethrough {
		b.WriteString(s.Strikethrough.Prefix)
	}
	return b.String()
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"tokyo-night":     theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
