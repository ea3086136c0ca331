package geom

import (
	"strconv"
	"testing"
)

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func TestBounds(t *testing.T) {
	b := Bounds{Min: Pt(0, 0), Max: Pt(10, 4)}
	if b.Width() != 10 || b.Height() != 4 {
		t.Errorf("size = %g x %g", b.Width(), b.Height())
	}
	if c := b.Center(); c != Pt(5, 2) {
		t.Errorf("Center = %v", c)
	}

	contains := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(10, 4), true},
		{Pt(5, 2), true},
		{Pt(10.0001, 2), false},
		{Pt(-1, 2), false},
	}
	for _, tt := range contains {
		if got := b.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBoundsIntersects(t *testing.T) {
	a := Bounds{Min: Pt(0, 0), Max: Pt(10, 10)}
	tests := []struct {
		name string
		b    Bounds
		want bool
	}{
		{"overlap", Bounds{Min: Pt(5, 5), Max: Pt(15, 15)}, true},
		{"touching edge", Bounds{Min: Pt(10, 0), Max: Pt(20, 10)}, true},
		{"touching corner", Bounds{Min: Pt(10, 10), Max: Pt(11, 11)}, true},
		{"inside", Bounds{Min: Pt(2, 2), Max: Pt(3, 3)}, true},
		{"apart x", Bounds{Min: Pt(11, 0), Max: Pt(12, 10)}, false},
		{"apart y", Bounds{Min: Pt(0, -5), Max: Pt(10, -0.1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("symmetric Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsOfAndUnion(t *testing.T) {
	b := BoundsOf(Pt(3, -1), Pt(-2, 5), Pt(0, 0))
	want := Bounds{Min: Pt(-2, -1), Max: Pt(3, 5)}
	if b != want {
		t.Errorf("BoundsOf = %v, want %v", b, want)
	}
	if z := BoundsOf(); z != (Bounds{}) {
		t.Errorf("BoundsOf() = %v", z)
	}
	u := b.Union(Bounds{Min: Pt(1, 1), Max: Pt(9, 2)})
	if u != (Bounds{Min: Pt(-2, -1), Max: Pt(9, 5)}) {
		t.Errorf("Union = %v", u)
	}
}
