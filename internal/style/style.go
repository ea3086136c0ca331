// Package style describes how a shape is painted.
package style

import (
	"fmt"

	"caddraw/internal/dictval"
)

const (
	DefaultStrokeWidth   = 1.0
	DefaultFillOpacity   = 1.0
	DefaultStrokeOpacity = 1.0
)

// Style holds paint settings. Empty colour strings mean "not painted";
// non-empty ones are kept verbatim for SVG output.
type Style struct {
	FillColor     string
	StrokeColor   string
	StrokeWidth   float64
	FillOpacity   float64
	StrokeOpacity float64
}

func Default() Style {
	return Style{
		StrokeWidth:   DefaultStrokeWidth,
		FillOpacity:   DefaultFillOpacity,
		StrokeOpacity: DefaultStrokeOpacity,
	}
}

// Filled returns a copy with the fill colour set.
func (s Style) Filled(c string) Style {
	s.FillColor = c
	return s
}

// Stroked returns a copy with the stroke colour and width set.
func (s Style) Stroked(c string, width float64) Style {
	s.StrokeColor = c
	s.StrokeWidth = width
	return s
}

func (s Style) Validate() error {
	if s.StrokeWidth < 0 {
		return fmt.Errorf("stroke_width must be non-negative, got %g", s.StrokeWidth)
	}
	if s.FillOpacity < 0 || s.FillOpacity > 1 {
		return fmt.Errorf("fill_opacity must be within [0, 1], got %g", s.FillOpacity)
	}
	if s.StrokeOpacity < 0 || s.StrokeOpacity > 1 {
		return fmt.Errorf("stroke_opacity must be within [0, 1], got %g", s.StrokeOpacity)
	}
	return nil
}

// Stroke resolves the stroke colour, falling back to def when unset or
// unparseable.
func (s Style) Stroke(def Color) Color {
	if s.StrokeColor == "" {
		return def
	}
	c, err := ParseColor(s.StrokeColor)
	if err != nil {
		return def
	}
	return c
}

// Fill resolves the fill colour; ok is false when there is none.
func (s Style) Fill() (c Color, ok bool) {
	if s.FillColor == "" {
		return Color{}, false
	}
	c, err := ParseColor(s.FillColor)
	return c, err == nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (s Style) ToDict() map[string]any {
	return map[string]any{
		"fill_color":     nullable(s.FillColor),
		"stroke_color":   nullable(s.StrokeColor),
		"stroke_width":   s.StrokeWidth,
		"fill_opacity":   s.FillOpacity,
		"stroke_opacity": s.StrokeOpacity,
	}
}

// FromDict reads a style object; missing keys take their defaults.
func FromDict(m map[string]any) (Style, error) {
	s := Default()
	var err error
	if s.FillColor, err = dictval.String(m, "fill_color"); err != nil {
		return s, err
	}
	if s.StrokeColor, err = dictval.String(m, "stroke_color"); err != nil {
		return s, err
	}
	if s.StrokeWidth, err = dictval.FloatOr(m, "stroke_width", DefaultStrokeWidth); err != nil {
		return s, err
	}
	if s.FillOpacity, err = dictval.FloatOr(m, "fill_opacity", DefaultFillOpacity); err != nil {
		return s, err
	}
	if s.StrokeOpacity, err = dictval.FloatOr(m, "stroke_opacity", DefaultStrokeOpacity); err != nil {
		return s, err
	}
	return s, s.Validate()
}
