package shape

import (
	"fmt"
	"strings"
)

// Kind tags a shape variant. Only rectangles and circles have geometry; the
// rest are reserved names rejected by the factory.
type Kind int

const (
	KindRectangle Kind = iota + 1
	KindCircle
	KindLine
	KindPolygon
	KindPolyline
	KindGroup
)

var kindNames = map[Kind]string{
	KindRectangle: "RECTANGLE",
	KindCircle:    "CIRCLE",
	KindLine:      "LINE",
	KindPolygon:   "POLYGON",
	KindPolyline:  "POLYLINE",
	KindGroup:     "GROUP",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind matches a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == up {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shape type %q", s)
}

// BoundsMode selects the circle bounding-box algorithm.
type BoundsMode int

const (
	// BoundsExact is the tight box of the transformed ellipse.
	BoundsExact BoundsMode = iota
	// BoundsCardinal maps the four axis points and the centre only. It
	// underestimates under rotation combined with non-uniform scale or shear.
	BoundsCardinal
)

func (m BoundsMode) String() string {
	if m == BoundsCardinal {
		return "cardinal"
	}
	return "exact"
}

func ParseBoundsMode(s string) (BoundsMode, error) {
	switch strings.ToLower(s) {
	case "", "exact":
		return BoundsExact, nil
	case "cardinal":
		return BoundsCardinal, nil
	}
	return 0, fmt.Errorf("unknown bounds mode %q (want exact or cardinal)", s)
}
