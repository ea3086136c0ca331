package geom

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"caddraw/internal/caderr"
)

// SVG transform-list grammar, e.g. "translate(10 20) rotate(45, 5, 5)".
var (
	transformLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z]+`},
		{Name: "Punct", Pattern: `[(),]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	transformParser = participle.MustBuild[transformList](
		participle.Lexer(transformLexer),
		participle.Elide("Whitespace"),
	)
)

type transformList struct {
	Ops []*transformOp `@@*`
}

type transformOp struct {
	Pos  lexer.Position
	Name string    `@Ident "("`
	Args []float64 `( @Number ( ","? @Number )* )? ")" ","?`
}

// ParseTransform parses an SVG transform list into a single Transform.
// Operations compose left to right, so the leftmost is applied last.
func ParseTransform(expr string) (Transform, error) {
	list, err := transformParser.ParseString("", expr)
	if err != nil {
		return Transform{}, &caderr.TransformError{Op: "parse", Reason: err.Error()}
	}
	out := Identity()
	for _, op := range list.Ops {
		t, err := op.transform()
		if err != nil {
			return Transform{}, err
		}
		out = out.Compose(t)
	}
	return out, nil
}

func (op *transformOp) transform() (Transform, error) {
	a := op.Args
	switch op.Name {
	case "translate":
		switch len(a) {
		case 1:
			return Translation(a[0], 0), nil
		case 2:
			return Translation(a[0], a[1]), nil
		}
	case "scale":
		switch len(a) {
		case 1:
			return Scale(a[0]), nil
		case 2:
			return ScaleXY(a[0], a[1]), nil
		}
	case "rotate":
		switch len(a) {
		case 1:
			return Rotation(a[0]), nil
		case 3:
			return RotationAbout(a[0], Pt(a[1], a[2])), nil
		}
	case "skewX":
		if len(a) == 1 {
			return SkewX(a[0]), nil
		}
	case "skewY":
		if len(a) == 1 {
			return SkewY(a[0]), nil
		}
	case "matrix":
		if len(a) == 6 {
			return FromMatrix([3][3]float64{
				{a[0], a[2], a[4]},
				{a[1], a[3], a[5]},
				{0, 0, 1},
			}), nil
		}
	default:
		return Transform{}, &caderr.TransformError{Op: "parse", Reason: fmt.Sprintf("%s: unknown operation %q", op.Pos, op.Name)}
	}
	return Transform{}, &caderr.TransformError{Op: "parse", Reason: fmt.Sprintf("%s: %s does not take %d arguments", op.Pos, op.Name, len(a))}
}
