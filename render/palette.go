package render

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette is the set of legal fill color names for a chart. It is always
// an explicit value on the Config, never an ambient registry.
type Palette map[string]color.Color

// DefaultPalette returns a palette with the SVG 1.1 named colors.
func DefaultPalette() Palette {
	p := make(Palette, len(colornames.Map))
	for name, c := range colornames.Map {
		p[name] = c
	}
	return p
}

// Lookup resolves a color name, case-insensitively.
func (p Palette) Lookup(name string) (color.Color, bool) {
	c, ok := p[strings.ToLower(name)]
	return c, ok
}
