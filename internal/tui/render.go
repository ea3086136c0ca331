package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"caddraw/internal/geom"
	"caddraw/internal/shape"
	"caddraw/internal/style"
)

// scale is micro-pixels per drawing unit. Micro-pixels are close to square
// on a typical terminal font, so one factor serves both axes.
func (m Model) scale(w, h int) (float64, bool) {
	ew, eh := m.extent.Width(), m.extent.Height()
	if !(ew > 0 && eh > 0) || w <= 1 || h <= 1 {
		return 0, false
	}
	s := math.Min(float64(w*2-1)/ew, float64(h*4-1)/eh)
	return s * m.zoom, true
}

// screenXYMicro maps drawing coordinates onto the 2x4-per-cell braille
// microgrid. Drawing y grows downward like the terminal, so no flip.
func (m Model) screenXYMicro(p geom.Point, w, h int) (int, int, bool) {
	s, ok := m.scale(w, h)
	if !ok {
		return 0, 0, false
	}
	c := m.extent.Center()
	sx := int(math.Round(float64(w*2-1)/2+(p.X-c.X)*s)) + m.offsetX*2
	sy := int(math.Round(float64(h*4-1)/2+(p.Y-c.Y)*s)) + m.offsetY*4
	return sx, sy, true
}

// microToPoint is the inverse of screenXYMicro.
func (m Model) microToPoint(mx, my, w, h int) (geom.Point, bool) {
	s, ok := m.scale(w, h)
	if !ok {
		return geom.Point{}, false
	}
	c := m.extent.Center()
	x := c.X + (float64(mx-m.offsetX*2)-float64(w*2-1)/2)/s
	y := c.Y + (float64(my-m.offsetY*4)-float64(h*4-1)/2)/s
	return geom.Pt(x, y), true
}

// cellToPoint converts a map cell back to drawing coordinates.
func (m Model) cellToPoint(cx, cy, w, h int) (geom.Point, bool) {
	return m.microToPoint(cx*2, cy*4, w, h)
}

// strokeHex picks the terminal colour for a shape's edges: its stroke, or its
// fill when unstroked, or the base foreground when it has neither.
func strokeHex(st style.Style) string {
	def, ok := st.Fill()
	if !ok {
		def = baseColor
	}
	if st.StrokeWidth <= 0 {
		return def.Hex(false)
	}
	return st.Stroke(def).Hex(false)
}

// fillHex shades a fill towards the backdrop so strokes stay visible over
// it. Translucent fills are shaded further.
func fillHex(c style.Color, opacity float64) string {
	t := 1 - opacity*(1-fillShade)
	return c.Blend(backdrop, t).Hex(false)
}

// visibleShapes lists what the canvas draws, in paint order.
func (m Model) visibleShapes() []shape.Shape {
	if m.doc == nil {
		return nil
	}
	var out []shape.Shape
	for _, s := range m.doc.Shapes() {
		if s.Visible() && m.layerVisible(s.LayerID()) {
			out = append(out, s)
		}
	}
	return out
}

func (m Model) projectRing(pts []geom.Point, w, h int) [][2]int {
	ring := make([][2]int, 0, len(pts))
	for _, p := range pts {
		mx, my, ok := m.screenXYMicro(p, w, h)
		if !ok {
			return nil
		}
		ring = append(ring, [2]int{mx, my})
	}
	return ring
}

func strokeRing(br *brailleBuf, ring [][2]int) {
	for i := range ring {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		br.drawLineMicro(a[0], a[1], b[0], b[1])
	}
}

func (m Model) renderCanvas(w, h int) string {
	if m.doc == nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render("no drawing loaded"))
	}
	br := newBrailleBuf(w, h)

	cv := m.doc.Canvas()
	br.pen = canvasFrameColor
	strokeRing(br, m.projectRing([]geom.Point{
		cv.Min, geom.Pt(cv.Max.X, cv.Min.Y), cv.Max, geom.Pt(cv.Min.X, cv.Max.Y),
	}, w, h))

	for _, s := range m.visibleShapes() {
		ring := m.projectRing(s.Outline(m.viewer.CurveSegment), w, h)
		if len(ring) < 3 {
			continue
		}
		st := s.Style()
		if c, ok := st.Fill(); ok && m.fill {
			br.pen = fillHex(c, st.FillOpacity)
			br.fillRing(ring)
		}
		br.pen = strokeHex(st)
		strokeRing(br, ring)
	}

	if m.hovering {
		br.mark(m.hoverMicX/2, m.hoverMicY/4, '◯', "#FFA500")
	}
	return strings.Join(br.toStyledLines(), "\n")
}

// nearestVertex returns the outline vertex closest to the hovered cell, in
// micro coordinates.
func (m Model) nearestVertex(cx, cy, w, h int) (int, int) {
	hx, hy := cx*2, cy*4
	best := math.MaxInt
	bx, by := hx, hy
	for _, s := range m.visibleShapes() {
		for _, p := range s.Outline(m.viewer.CurveSegment) {
			mx, my, ok := m.screenXYMicro(p, w, h)
			if !ok {
				continue
			}
			dx, dy := mx-hx, my-hy
			if d := dx*dx + dy*dy; d < best {
				best = d
				bx, by = mx, my
			}
		}
	}
	return bx, by
}

// inspectNearest picks the topmost shape under the viewport centre, or
// failing that the one whose bounds centre is closest to it.
func (m Model) inspectNearest() (shape.Shape, geom.Point, bool) {
	return m.nearestOf(m.visibleShapes())
}

func (m Model) nearestOf(shapes []shape.Shape) (shape.Shape, geom.Point, bool) {
	_, _, w, h := m.layout()
	c, ok := m.cellToPoint(w/2, h/2, w, h)
	if !ok {
		return shape.Shape{}, geom.Point{}, false
	}
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i].ContainsPoint(c) {
			return shapes[i], c, true
		}
	}
	bestD := math.Inf(1)
	var best shape.Shape
	for _, s := range shapes {
		bc := s.BoundsWith(m.boundsMode).Center()
		if d := math.Hypot(bc.X-c.X, bc.Y-c.Y); d < bestD {
			bestD = d
			best = s
		}
	}
	return best, c, !best.IsZero()
}

// toggleNearest flips the visible flag of the shape under the viewport
// centre. Hidden shapes on shown layers are candidates too, so a second
// press brings the shape back.
func (m *Model) toggleNearest() {
	if m.doc == nil {
		m.status = "no drawing loaded"
		return
	}
	var candidates []shape.Shape
	for _, s := range m.doc.Shapes() {
		if m.layerVisible(s.LayerID()) {
			candidates = append(candidates, s)
		}
	}
	s, _, ok := m.nearestOf(candidates)
	if !ok {
		m.status = "no shape nearby"
		return
	}
	if err := m.doc.ReplaceShape(s.WithVisibility(!s.Visible())); err != nil {
		m.status = "visibility error: " + err.Error()
		return
	}
	m.dirty = true
	m.inspectPopup = ""
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
	m.status = fmt.Sprintf("shape %s visible: %v", shortID(s.ID()), !s.Visible())
}
