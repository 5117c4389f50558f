package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a color in #rgb or #rrggbb notation.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return rgba(c), nil
}

// Palette returns n fully saturated colors with evenly spaced hues, starting
// at red.
func Palette(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = rgba(colorful.Hsv(float64(i)*360/float64(n), 0.85, 0.85))
	}
	return out
}

// Colors parses hex. Entries that don't parse are replaced by the
// corresponding color of Palette(len(hex)).
func Colors(hex []string) []color.RGBA {
	var fallback []color.RGBA
	out := make([]color.RGBA, len(hex))
	for i, s := range hex {
		c, err := ParseColor(s)
		if err != nil {
			if fallback == nil {
				fallback = Palette(len(hex))
			}
			c = fallback[i]
		}
		out[i] = c
	}
	return out
}

// Hex formats c in #rrggbb notation, ignoring alpha. A nil color is
// formatted as "none".
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	cf, _ := colorful.MakeColor(opaque(c))
	return cf.Hex()
}

func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
