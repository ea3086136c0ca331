package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"caddraw/internal/caderr"
)

const (
	// SingularEpsilon is the determinant magnitude below which Inverse fails.
	SingularEpsilon = 1e-10

	equalAbsTol = 1e-8
	equalRelTol = 1e-5
)

// Transform is an immutable 3x3 homogeneous affine matrix. The zero value is
// the identity.
type Transform struct {
	m   [3][3]float64
	set bool
}

var identity = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func Identity() Transform { return Transform{m: identity, set: true} }

// FromMatrix wraps m as-is; the bottom row is not checked.
func FromMatrix(m [3][3]float64) Transform { return Transform{m: m, set: true} }

// FromRows builds a Transform from row-major nested slices.
func FromRows(rows [][]float64) (Transform, error) {
	if len(rows) != 3 {
		return Transform{}, &caderr.TransformError{Op: "from_rows", Reason: fmt.Sprintf("matrix must be 3x3, got %d rows", len(rows))}
	}
	var m [3][3]float64
	for i, r := range rows {
		if len(r) != 3 {
			return Transform{}, &caderr.TransformError{Op: "from_rows", Reason: fmt.Sprintf("matrix must be 3x3, row %d has %d columns", i, len(r))}
		}
		copy(m[i][:], r)
	}
	return FromMatrix(m), nil
}

func Translation(dx, dy float64) Transform {
	return FromMatrix([3][3]float64{{1, 0, dx}, {0, 1, dy}, {0, 0, 1}})
}

// Rotation turns counter-clockwise by deg degrees about the origin.
func Rotation(deg float64) Transform {
	return RotationAbout(deg, Point{})
}

func RotationAbout(deg float64, c Point) Transform {
	s, co := math.Sincos(deg * math.Pi / 180)
	return FromMatrix([3][3]float64{
		{co, -s, c.X - c.X*co + c.Y*s},
		{s, co, c.Y - c.X*s - c.Y*co},
		{0, 0, 1},
	})
}

func Scale(s float64) Transform { return ScaleXY(s, s) }

func ScaleXY(sx, sy float64) Transform {
	return FromMatrix([3][3]float64{{sx, 0, 0}, {0, sy, 0}, {0, 0, 1}})
}

// ScaleAbout scales with c as the fixed point.
func ScaleAbout(sx, sy float64, c Point) Transform {
	return FromMatrix([3][3]float64{
		{sx, 0, c.X * (1 - sx)},
		{0, sy, c.Y * (1 - sy)},
		{0, 0, 1},
	})
}

func SkewX(deg float64) Transform {
	return FromMatrix([3][3]float64{{1, math.Tan(deg * math.Pi / 180), 0}, {0, 1, 0}, {0, 0, 1}})
}

func SkewY(deg float64) Transform {
	return FromMatrix([3][3]float64{{1, 0, 0}, {math.Tan(deg * math.Pi / 180), 1, 0}, {0, 0, 1}})
}

// Matrix returns a copy of the underlying matrix.
func (t Transform) Matrix() [3][3]float64 {
	if !t.set {
		return identity
	}
	return t.m
}

// Rows returns the matrix as row-major nested slices.
func (t Transform) Rows() [][]float64 {
	m := t.Matrix()
	return [][]float64{m[0][:], m[1][:], m[2][:]}
}

func (t Transform) dense() *mat.Dense {
	m := t.Matrix()
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

func fromDense(d *mat.Dense) Transform {
	var m [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = d.At(i, j)
		}
	}
	return FromMatrix(m)
}

// Compose returns t·o: o is applied first, then t.
func (t Transform) Compose(o Transform) Transform {
	var out mat.Dense
	out.Mul(t.dense(), o.dense())
	return fromDense(&out)
}

// Apply maps p through the transform.
func (t Transform) Apply(p Point) Point {
	m := t.Matrix()
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// ApplyAll maps every point; the input slice is left untouched.
func (t Transform) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

func (t Transform) Determinant() float64 { return mat.Det(t.dense()) }

// Inverse fails with a *caderr.TransformError when the matrix is singular.
func (t Transform) Inverse() (Transform, error) {
	d := t.dense()
	if det := mat.Det(d); math.Abs(det) < SingularEpsilon || math.IsNaN(det) {
		return Transform{}, &caderr.TransformError{Op: "inverse", Reason: fmt.Sprintf("matrix is singular (determinant %g)", det)}
	}
	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		// a Condition error still carries the computed inverse
		if !errors.As(err, new(mat.Condition)) {
			return Transform{}, &caderr.TransformError{Op: "inverse", Reason: err.Error()}
		}
	}
	return fromDense(&inv), nil
}

// Equal compares element-wise with a small absolute or relative tolerance.
func (t Transform) Equal(o Transform) bool {
	a, b := t.Matrix(), o.Matrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbsOrRel(a[i][j], b[i][j], equalAbsTol, equalRelTol) {
				return false
			}
		}
	}
	return true
}

func (t Transform) IsIdentity() bool { return t.Equal(Identity()) }

// SVGMatrix returns the (a, b, c, d, e, f) parameters of an SVG matrix().
func (t Transform) SVGMatrix() [6]float64 {
	m := t.Matrix()
	return [6]float64{m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2]}
}

func (t Transform) String() string {
	m := t.Matrix()
	var sb strings.Builder
	sb.WriteString("Transform[")
	for i, r := range m {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%g %g %g", r[0], r[1], r[2])
	}
	sb.WriteString("]")
	return sb.String()
}
