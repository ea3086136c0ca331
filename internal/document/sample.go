package document

import (
	"caddraw/internal/shape"
	"caddraw/internal/style"
)

const (
	wallColor    = "#f4e4c1"
	roofColor    = "#8b4513"
	doorColor    = "#654321"
	windowColor  = "#87ceeb"
	brickColor   = "#b22222"
	trunkColor   = "#654321"
	foliageColor = "#228b22"
	grassColor   = "#90ee90"
	bushColor    = "#32cd32"
)

func fill(c string) style.Style { return style.Default().Filled(c) }

func outlined(fillColor, stroke string, width float64) style.Style {
	return style.Default().Filled(fillColor).Stroked(stroke, width)
}

type part struct {
	layer string
	geom  shape.Geometry
	style style.Style
}

// House builds the sample drawing used by the demo command: a house with a
// brick band, two trees, bushes and a sun on a 1000x800 canvas.
func House() (*Document, error) {
	doc, err := NewWithCanvas(1000, 800, Pixels)
	if err != nil {
		return nil, err
	}

	parts := []part{
		{"ground", shape.Rect{X: 0, Y: 600, Width: 1000, Height: 200}, fill(grassColor)},
		{"house", shape.Rect{X: 300, Y: 300, Width: 400, Height: 300}, outlined(wallColor, "#000000", 2)},
		{"house", shape.Rect{X: 250, Y: 250, Width: 500, Height: 80}, outlined(roofColor, "#000000", 2)},
		{"house", shape.Rect{X: 450, Y: 450, Width: 100, Height: 150}, outlined(doorColor, "#000000", 2)},
		{"house", shape.Circle{CX: 535, CY: 525, Radius: 5}, fill("#ffd700")},
	}
	// windows with a cross frame
	for _, x := range []float64{340, 580} {
		parts = append(parts,
			part{"house", shape.Rect{X: x, Y: 350, Width: 80, Height: 80}, outlined(windowColor, "#000000", 2)},
			part{"house", shape.Rect{X: x, Y: 388, Width: 80, Height: 4}, fill("#000000")},
			part{"house", shape.Rect{X: x + 38, Y: 350, Width: 4, Height: 80}, fill("#000000")},
		)
	}
	parts = append(parts, bricks()...)
	parts = append(parts,
		part{"nature", shape.Rect{X: 100, Y: 450, Width: 40, Height: 150}, outlined(trunkColor, "#000000", 1)},
		part{"nature", shape.Rect{X: 60, Y: 300, Width: 120, Height: 180, CornerRadius: 60}, outlined(foliageColor, "#006400", 2)},
		part{"nature", shape.Rect{X: 80, Y: 250, Width: 80, Height: 100, CornerRadius: 40}, fill(foliageColor)},
		part{"nature", shape.Rect{X: 820, Y: 480, Width: 30, Height: 120}, outlined(trunkColor, "#000000", 1)},
		part{"nature", shape.Rect{X: 790, Y: 350, Width: 90, Height: 150, CornerRadius: 45}, outlined(foliageColor, "#006400", 2)},
		part{"nature", shape.Rect{X: 800, Y: 320, Width: 70, Height: 80, CornerRadius: 35}, fill(foliageColor)},
		part{"nature", shape.Rect{X: 200, Y: 560, Width: 60, Height: 40, CornerRadius: 20}, outlined(bushColor, foliageColor, 1)},
		part{"nature", shape.Rect{X: 740, Y: 570, Width: 50, Height: 30, CornerRadius: 15}, outlined(bushColor, foliageColor, 1)},
		part{"house", shape.Rect{X: 600, Y: 200, Width: 60, Height: 100}, outlined(brickColor, "#000000", 2)},
		part{"sky", shape.Circle{CX: 890, CY: 90, Radius: 40}, outlined("#ffff00", "#ffa500", 3)},
	)

	for _, p := range parts {
		s, err := shape.New(p.geom, p.layer, shape.WithStyle(p.style))
		if err != nil {
			return nil, err
		}
		if err := doc.AddShape(s); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// bricks lays five staggered courses along the bottom of the walls, leaving
// the door clear and clipping at the right wall.
func bricks() []part {
	const (
		w, h, gap    = 40.0, 20.0, 2.0
		left, right  = 300.0, 700.0
		doorL, doorR = 450.0, 550.0
	)
	var out []part
	for row := 0; row < 5; row++ {
		y := 580 - float64(row)*(h+gap)
		offset := 0.0
		if row%2 == 1 {
			offset = w / 2
		}
		for col := 0; col < 11; col++ {
			x := left + offset + float64(col)*(w+gap)
			if x+w > doorL && x < doorR && y > 450 {
				continue
			}
			if x >= right {
				continue
			}
			width := w
			if x+w > right {
				width = right - x
			}
			out = append(out, part{"house", shape.Rect{X: x, Y: y, Width: width, Height: h}, outlined(brickColor, "#8b0000", 1)})
		}
	}
	return out
}
