package geom

import (
	"errors"
	"math"
	"testing"

	"caddraw/internal/caderr"
)

const tol = 1e-10

func near(a, b float64) bool { return math.Abs(a-b) <= tol }

func nearPt(a, b Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestZeroValueIsIdentity(t *testing.T) {
	var z Transform
	if !z.IsIdentity() {
		t.Fatalf("zero Transform should be identity, got %v", z)
	}
	if got := z.Apply(Pt(3, 4)); got != Pt(3, 4) {
		t.Errorf("Apply = %v", got)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(5, 7), Pt(5, 7)},
		{"translate", Translation(10, -3), Pt(1, 1), Pt(11, -2)},
		{"rotate90", Rotation(90), Pt(100, 0), Pt(0, 100)},
		{"rotate180", Rotation(180), Pt(1, 2), Pt(-1, -2)},
		{"scale", Scale(2), Pt(3, 4), Pt(6, 8)},
		{"scaleXY", ScaleXY(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate about centre keeps centre", RotationAbout(37, Pt(5, 5)), Pt(5, 5), Pt(5, 5)},
		{"rotate about", RotationAbout(90, Pt(10, 10)), Pt(20, 10), Pt(10, 20)},
		{"scale about centre keeps centre", ScaleAbout(3, 0.5, Pt(4, 8)), Pt(4, 8), Pt(4, 8)},
		{"scale about", ScaleAbout(2, 2, Pt(1, 1)), Pt(2, 2), Pt(3, 3)},
		{"skewX", SkewX(45), Pt(0, 1), Pt(1, 1)},
		{"skewY", SkewY(45), Pt(1, 0), Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Apply(tt.in); !nearPt(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComposeOrder(t *testing.T) {
	// other is applied first
	c := Scale(2).Compose(Translation(50, 50))
	if got := c.Apply(Pt(10, 20)); !nearPt(got, Pt(120, 140)) {
		t.Errorf("Scale.Compose(Translation) = %v, want (120, 140)", got)
	}
	c = Translation(50, 50).Compose(Scale(2))
	if got := c.Apply(Pt(10, 20)); !nearPt(got, Pt(70, 90)) {
		t.Errorf("Translation.Compose(Scale) = %v, want (70, 90)", got)
	}
}

func TestComposeAssociative(t *testing.T) {
	a, b, c := Rotation(30), Translation(4, -2), ScaleXY(2, 0.5)
	left := a.Compose(b).Compose(c)
	right := a.Compose(b.Compose(c))
	if !left.Equal(right) {
		t.Errorf("(ab)c = %v, a(bc) = %v", left, right)
	}
}

func TestRotationAccumulates(t *testing.T) {
	r := Identity()
	for i := 0; i < 4; i++ {
		r = r.Compose(Rotation(90))
	}
	if !r.IsIdentity() {
		t.Errorf("four quarter turns = %v, want identity", r)
	}
}

func TestInverse(t *testing.T) {
	tests := []Transform{
		Translation(3, 4),
		Rotation(33),
		ScaleXY(2, 5),
		RotationAbout(70, Pt(-3, 9)).Compose(ScaleAbout(0.5, 4, Pt(1, 1))),
	}
	for _, tr := range tests {
		inv, err := tr.Inverse()
		if err != nil {
			t.Fatalf("Inverse(%v): %v", tr, err)
		}
		if !tr.Compose(inv).IsIdentity() {
			t.Errorf("%v * inverse = %v", tr, tr.Compose(inv))
		}
		p := Pt(12.5, -7)
		if got := inv.Apply(tr.Apply(p)); !nearPt(got, p) {
			t.Errorf("round trip %v -> %v", p, got)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	for _, tr := range []Transform{Scale(0), ScaleXY(1, 0), ScaleXY(1e-6, 1e-6)} {
		_, err := tr.Inverse()
		var te *caderr.TransformError
		if !errors.As(err, &te) {
			t.Fatalf("Inverse(%v) err = %v, want TransformError", tr, err)
		}
		if te.Op != "inverse" {
			t.Errorf("Op = %q", te.Op)
		}
	}
}

func TestInverseIllConditioned(t *testing.T) {
	// det is 10, far from singular, but the condition number is about 1e17
	tr := ScaleXY(1e9, 1e-8)
	inv, err := tr.Inverse()
	if err != nil {
		t.Fatalf("Inverse(%v): %v", tr, err)
	}
	m := inv.Matrix()
	if math.Abs(m[0][0]-1e-9) > 1e-20 || math.Abs(m[1][1]-1e8)/1e8 > 1e-12 {
		t.Errorf("inverse = %v", inv)
	}
	p := Pt(3, 4)
	got := inv.Apply(tr.Apply(p))
	if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
		t.Errorf("round trip %v -> %v", p, got)
	}
}

func TestFromRows(t *testing.T) {
	tr, err := FromRows([][]float64{{1, 0, 5}, {0, 1, 6}, {0, 0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Equal(Translation(5, 6)) {
		t.Errorf("FromRows = %v", tr)
	}

	bad := [][][]float64{
		{{1, 0}, {0, 1}},
		{{1, 0, 0}, {0, 1}, {0, 0, 1}},
		nil,
	}
	for _, rows := range bad {
		var te *caderr.TransformError
		if _, err := FromRows(rows); !errors.As(err, &te) {
			t.Errorf("FromRows(%v) err = %v, want TransformError", rows, err)
		}
	}
}

func TestMatrixIsCopy(t *testing.T) {
	tr := Translation(1, 2)
	m := tr.Matrix()
	m[0][2] = 99
	rows := tr.Rows()
	rows[1][2] = 99
	if !tr.Equal(Translation(1, 2)) {
		t.Errorf("transform mutated through accessor: %v", tr)
	}
}

func TestEqualTolerance(t *testing.T) {
	a := Translation(1, 1)
	if !a.Equal(Translation(1+1e-12, 1)) {
		t.Error("tiny difference should compare equal")
	}
	if a.Equal(Translation(1.01, 1)) {
		t.Error("visible difference should not compare equal")
	}
}

func TestSVGMatrix(t *testing.T) {
	tr := FromMatrix([3][3]float64{{1, 2, 3}, {4, 5, 6}, {0, 0, 1}})
	want := [6]float64{1, 4, 2, 5, 3, 6}
	if got := tr.SVGMatrix(); got != want {
		t.Errorf("SVGMatrix = %v, want %v", got, want)
	}
}

func TestDeterminant(t *testing.T) {
	if d := ScaleXY(2, 3).Determinant(); !near(d, 6) {
		t.Errorf("det = %g", d)
	}
	if d := Rotation(41).Determinant(); !near(d, 1) {
		t.Errorf("det = %g", d)
	}
}
