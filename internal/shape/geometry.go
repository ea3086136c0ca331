package shape

import (
	"fmt"
	"math"

	"caddraw/internal/caderr"
	"caddraw/internal/geom"
)

// Geometry is the kind-specific payload of a Shape. The set of
// implementations is closed: Rect and Circle.
type Geometry interface {
	Kind() Kind
	sealed()
}

// Rect is an axis-aligned rectangle in local coordinates, optionally with
// rounded corners.
type Rect struct {
	X, Y          float64
	Width, Height float64
	CornerRadius  float64
}

// Circle is given by its centre and radius in local coordinates.
type Circle struct {
	CX, CY float64
	Radius float64
}

func (Rect) Kind() Kind   { return KindRectangle }
func (Circle) Kind() Kind { return KindCircle }
func (Rect) sealed()      {}
func (Circle) sealed()    {}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (r Rect) validate(id string) error {
	kind := KindRectangle.String()
	for _, f := range []struct {
		name string
		v    float64
	}{{"x", r.X}, {"y", r.Y}, {"width", r.Width}, {"height", r.Height}, {"corner_radius", r.CornerRadius}} {
		if !finite(f.v) {
			return caderr.Invalid(kind, f.name, id, "%s must be finite, got %g", f.name, f.v)
		}
	}
	if r.Width <= 0 {
		return caderr.Invalid(kind, "width", id, "width must be positive, got %g", r.Width)
	}
	if r.Height <= 0 {
		return caderr.Invalid(kind, "height", id, "height must be positive, got %g", r.Height)
	}
	if r.CornerRadius < 0 {
		return caderr.Invalid(kind, "corner_radius", id, "corner radius must be non-negative, got %g", r.CornerRadius)
	}
	if limit := math.Min(r.Width, r.Height) / 2; r.CornerRadius > limit {
		return caderr.Invalid(kind, "corner_radius", id, "corner radius %g exceeds maximum allowed %g", r.CornerRadius, limit)
	}
	return nil
}

func (c Circle) validate(id string) error {
	kind := KindCircle.String()
	for _, f := range []struct {
		name string
		v    float64
	}{{"cx", c.CX}, {"cy", c.CY}, {"radius", c.Radius}} {
		if !finite(f.v) {
			return caderr.Invalid(kind, f.name, id, "%s must be finite, got %g", f.name, f.v)
		}
	}
	if c.Radius <= 0 {
		return caderr.Invalid(kind, "radius", id, "radius must be positive, got %g", c.Radius)
	}
	return nil
}

func (r Rect) corners() []geom.Point {
	return []geom.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

func (c Circle) Center() geom.Point { return geom.Pt(c.CX, c.CY) }

// cardinal returns the points at 0, 90, 180 and 270 degrees plus the centre.
func (c Circle) cardinal() []geom.Point {
	pts := make([]geom.Point, 0, 5)
	for i := 0; i < 4; i++ {
		s, co := math.Sincos(float64(i) * math.Pi / 2)
		pts = append(pts, geom.Pt(c.CX+c.Radius*co, c.CY+c.Radius*s))
	}
	return append(pts, c.Center())
}

func geometryBounds(g Geometry, t geom.Transform, mode BoundsMode) geom.Bounds {
	switch g := g.(type) {
	case Rect:
		return geom.BoundsOf(t.ApplyAll(g.corners())...)
	case Circle:
		if mode == BoundsCardinal {
			return geom.BoundsOf(t.ApplyAll(g.cardinal())...)
		}
		m := t.Matrix()
		c := t.Apply(g.Center())
		ex := g.Radius * math.Hypot(m[0][0], m[0][1])
		ey := g.Radius * math.Hypot(m[1][0], m[1][1])
		return geom.Bounds{
			Min: geom.Pt(c.X-ex, c.Y-ey),
			Max: geom.Pt(c.X+ex, c.Y+ey),
		}
	}
	panic(fmt.Sprintf("shape: unhandled geometry %T", g))
}

// containsLocal tests a point already mapped into local coordinates.
func containsLocal(g Geometry, p geom.Point) bool {
	switch g := g.(type) {
	case Rect:
		if p.X < g.X || p.X > g.X+g.Width || p.Y < g.Y || p.Y > g.Y+g.Height {
			return false
		}
		if g.CornerRadius == 0 {
			return true
		}
		r := g.CornerRadius
		dx := p.X - clamp(p.X, g.X+r, g.X+g.Width-r)
		dy := p.Y - clamp(p.Y, g.Y+r, g.Y+g.Height-r)
		return math.Hypot(dx, dy) <= r
	case Circle:
		return math.Hypot(p.X-g.CX, p.Y-g.CY) <= g.Radius
	}
	panic(fmt.Sprintf("shape: unhandled geometry %T", g))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// outlineLocal approximates the boundary with a closed ring of points.
func outlineLocal(g Geometry, segments int) []geom.Point {
	if segments < 4 {
		segments = 4
	}
	switch g := g.(type) {
	case Rect:
		if g.CornerRadius == 0 {
			pts := g.corners()
			return append(pts, pts[0])
		}
		r := g.CornerRadius
		per := segments / 4
		// arc centres in drawing order, each sweeping a quarter turn
		centres := []geom.Point{
			{X: g.X + g.Width - r, Y: g.Y + r},
			{X: g.X + g.Width - r, Y: g.Y + g.Height - r},
			{X: g.X + r, Y: g.Y + g.Height - r},
			{X: g.X + r, Y: g.Y + r},
		}
		start := []float64{-math.Pi / 2, 0, math.Pi / 2, math.Pi}
		pts := make([]geom.Point, 0, 4*(per+1)+1)
		for i, c := range centres {
			for k := 0; k <= per; k++ {
				a := start[i] + float64(k)/float64(per)*math.Pi/2
				s, co := math.Sincos(a)
				pts = append(pts, geom.Pt(c.X+r*co, c.Y+r*s))
			}
		}
		return append(pts, pts[0])
	case Circle:
		pts := make([]geom.Point, 0, segments+1)
		for k := 0; k < segments; k++ {
			s, co := math.Sincos(2 * math.Pi * float64(k) / float64(segments))
			pts = append(pts, geom.Pt(g.CX+g.Radius*co, g.CY+g.Radius*s))
		}
		return append(pts, pts[0])
	}
	panic(fmt.Sprintf("shape: unhandled geometry %T", g))
}

func validateGeometry(g Geometry, id string) error {
	switch g := g.(type) {
	case Rect:
		return g.validate(id)
	case Circle:
		return g.validate(id)
	case nil:
		return caderr.Invalid("UNKNOWN", "", id, "geometry is required")
	}
	panic(fmt.Sprintf("shape: unhandled geometry %T", g))
}
