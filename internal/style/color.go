package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Color{}

	DefaultStroke = Black
	DefaultFill   = White
)

// Named is the built-in colour table. Lookups that miss fall back to the
// SVG 1.1 keyword set.
var Named = map[string]Color{
	"black":       Black,
	"white":       White,
	"red":         RGB(255, 0, 0),
	"green":       RGB(0, 255, 0),
	"blue":        RGB(0, 0, 255),
	"yellow":      RGB(255, 255, 0),
	"cyan":        RGB(0, 255, 255),
	"magenta":     RGB(255, 0, 255),
	"gray":        RGB(128, 128, 128),
	"lightgray":   RGB(211, 211, 211),
	"darkgray":    RGB(169, 169, 169),
	"orange":      RGB(255, 165, 0),
	"purple":      RGB(128, 0, 128),
	"brown":       RGB(165, 42, 42),
	"pink":        RGB(255, 192, 203),
	"transparent": Transparent,
}

// ParseHex accepts RRGGBB or RRGGBBAA, with or without a leading '#'.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("invalid hex color string: %s", s)
	}
	c, err := colorful.Hex("#" + h[:6])
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color string: %s", s)
	}
	r, g, b := c.RGB255()
	out := Color{R: r, G: g, B: b, A: 255}
	if len(h) == 8 {
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color string: %s", s)
		}
		out.A = uint8(a)
	}
	return out, nil
}

// ParseColor resolves a hex string or a colour name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	name := strings.ToLower(s)
	if c, ok := Named[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if c, err := ParseHex(s); err == nil {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// Hex formats as lowercase #rrggbb, or #rrggbbaa with includeAlpha.
func (c Color) Hex(includeAlpha bool) string {
	h := c.colorful().Hex()
	if includeAlpha {
		h += fmt.Sprintf("%02x", c.A)
	}
	return h
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA returns the channel tuple. Use Std for an image/color value.
func (c Color) RGBA() (r, g, b, a uint8) { return c.R, c.G, c.B, c.A }

// Std converts to a non-premultiplied standard library colour.
func (c Color) Std() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend mixes towards o in the Lab space; t=0 is c, t=1 is o. Alpha is
// interpolated linearly.
func (c Color) Blend(o Color, t float64) Color {
	m := c.colorful().BlendLab(o.colorful(), t).Clamped()
	r, g, b := m.RGB255()
	a := float64(c.A) + (float64(o.A)-float64(c.A))*t
	return Color{R: r, G: g, B: b, A: uint8(a + 0.5)}
}

func (c Color) String() string { return c.Hex(c.A != 255) }
