// Package document holds an ordered collection of shapes on a canvas.
package document

import (
	"fmt"
	"slices"
	"strings"

	"caddraw/internal/caderr"
	"caddraw/internal/geom"
	"caddraw/internal/shape"
)

const (
	DefaultCanvasWidth  = 800.0
	DefaultCanvasHeight = 600.0
	MinCanvasSize       = 1.0
	MaxCanvasSize       = 100000.0
)

// Units names the measurement unit of canvas coordinates.
type Units string

const (
	Pixels      Units = "px"
	Millimeters Units = "mm"
	Centimeters Units = "cm"
	Inches      Units = "in"
	Points      Units = "pt"
)

func ParseUnits(s string) (Units, error) {
	switch u := Units(strings.ToLower(strings.TrimSpace(s))); u {
	case "":
		return Pixels, nil
	case Pixels, Millimeters, Centimeters, Inches, Points:
		return u, nil
	}
	return "", fmt.Errorf("unknown units %q", s)
}

// Document owns its shapes. It is not safe for concurrent mutation.
type Document struct {
	CanvasWidth  float64
	CanvasHeight float64
	Units        Units

	shapes []shape.Shape
}

// New returns an empty 800x600 pixel document.
func New() *Document {
	return &Document{CanvasWidth: DefaultCanvasWidth, CanvasHeight: DefaultCanvasHeight, Units: Pixels}
}

// NewWithCanvas validates the canvas size against [MinCanvasSize, MaxCanvasSize].
func NewWithCanvas(width, height float64, units Units) (*Document, error) {
	if err := checkCanvas(width, height); err != nil {
		return nil, err
	}
	if units == "" {
		units = Pixels
	}
	return &Document{CanvasWidth: width, CanvasHeight: height, Units: units}, nil
}

func checkCanvas(w, h float64) error {
	for _, v := range []float64{w, h} {
		if !(v >= MinCanvasSize && v <= MaxCanvasSize) {
			return &caderr.DocumentError{Op: "canvas", Reason: fmt.Sprintf("canvas size %gx%g outside [%g, %g]", w, h, MinCanvasSize, MaxCanvasSize)}
		}
	}
	return nil
}

func (d *Document) index(id string) int {
	return slices.IndexFunc(d.shapes, func(s shape.Shape) bool { return s.ID() == id })
}

// AddShape appends s. Ids must be unique within the document.
func (d *Document) AddShape(s shape.Shape) error {
	if s.IsZero() {
		return &caderr.DocumentError{Op: "add", Reason: "shape is not initialised"}
	}
	if d.index(s.ID()) >= 0 {
		return &caderr.DocumentError{Op: "add", Reason: fmt.Sprintf("duplicate shape id %s", s.ID())}
	}
	d.shapes = append(d.shapes, s)
	return nil
}

// Shapes returns a copy of the shape list in insertion order.
func (d *Document) Shapes() []shape.Shape { return slices.Clone(d.shapes) }

func (d *Document) Len() int { return len(d.shapes) }

func (d *Document) Shape(id string) (shape.Shape, bool) {
	if i := d.index(id); i >= 0 {
		return d.shapes[i], true
	}
	return shape.Shape{}, false
}

// ReplaceShape swaps the shape having s's id for s, keeping its position.
func (d *Document) ReplaceShape(s shape.Shape) error {
	i := d.index(s.ID())
	if i < 0 {
		return &caderr.DocumentError{Op: "replace", Reason: fmt.Sprintf("shape %s not found", s.ID())}
	}
	d.shapes[i] = s
	return nil
}

func (d *Document) RemoveShape(id string) error {
	i := d.index(id)
	if i < 0 {
		return &caderr.DocumentError{Op: "remove", Reason: fmt.Sprintf("shape %s not found", id)}
	}
	d.shapes = slices.Delete(d.shapes, i, i+1)
	return nil
}

// Layers lists distinct layer ids in first-seen order.
func (d *Document) Layers() []string {
	var out []string
	for _, s := range d.shapes {
		if !slices.Contains(out, s.LayerID()) {
			out = append(out, s.LayerID())
		}
	}
	return out
}

func (d *Document) ShapesOnLayer(layer string) []shape.Shape {
	var out []shape.Shape
	for _, s := range d.shapes {
		if s.LayerID() == layer {
			out = append(out, s)
		}
	}
	return out
}

// CountByKind tallies shapes per kind.
func (d *Document) CountByKind() map[shape.Kind]int {
	out := map[shape.Kind]int{}
	for _, s := range d.shapes {
		out[s.Kind()]++
	}
	return out
}

// Bounds is the union of every visible shape's bounds; ok is false when
// nothing is visible.
func (d *Document) Bounds() (geom.Bounds, bool) { return d.BoundsWith(shape.BoundsExact) }

func (d *Document) BoundsWith(mode shape.BoundsMode) (b geom.Bounds, ok bool) {
	for _, s := range d.shapes {
		if !s.Visible() {
			continue
		}
		sb := s.BoundsWith(mode)
		if !ok {
			b, ok = sb, true
			continue
		}
		b = b.Union(sb)
	}
	return b, ok
}

// Canvas returns the canvas rectangle anchored at the origin.
func (d *Document) Canvas() geom.Bounds {
	return geom.Bounds{Max: geom.Pt(d.CanvasWidth, d.CanvasHeight)}
}

// TransformShape applies t to one shape through WithTransform.
func (d *Document) TransformShape(id string, t geom.Transform) error {
	i := d.index(id)
	if i < 0 {
		return &caderr.DocumentError{Op: "transform", Reason: fmt.Sprintf("shape %s not found", id)}
	}
	if d.shapes[i].Locked() {
		return &caderr.DocumentError{Op: "transform", Reason: fmt.Sprintf("shape %s is locked", id)}
	}
	d.shapes[i] = d.shapes[i].WithTransform(t)
	return nil
}

// TransformAll applies t to every unlocked shape and reports how many moved.
func (d *Document) TransformAll(t geom.Transform) int {
	n := 0
	for i, s := range d.shapes {
		if s.Locked() {
			continue
		}
		d.shapes[i] = s.WithTransform(t)
		n++
	}
	return n
}
