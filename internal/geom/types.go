package geom

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. Equality is exact.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Finite reports whether both coordinates are finite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Bounds is an axis-aligned box. Min must not exceed Max on either axis;
// the values are stored as given.
type Bounds struct {
	Min Point
	Max Point
}

func (b Bounds) Width() float64  { return b.Max.X - b.Min.X }
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the arithmetic mean of the extrema.
func (b Bounds) Center() Point {
	return Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// ContainsPoint tests p against the closed box.
func (b Bounds) ContainsPoint(p Point) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Intersects reports closed-interval overlap; touching edges intersect.
func (b Bounds) Intersects(o Bounds) bool {
	return !(b.Max.X < o.Min.X ||
		b.Min.X > o.Max.X ||
		b.Max.Y < o.Min.Y ||
		b.Min.Y > o.Max.Y)
}

// Union returns the smallest box containing both.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: Point{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

func (b Bounds) String() string { return fmt.Sprintf("[%v - %v]", b.Min, b.Max) }

// BoundsOf reduces pts to their componentwise min/max. It returns the zero
// Bounds for no points.
func BoundsOf(pts ...Point) Bounds {
	var b Bounds
	for i, p := range pts {
		if i == 0 {
			b = Bounds{Min: p, Max: p}
			continue
		}
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}
