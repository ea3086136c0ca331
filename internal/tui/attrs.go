package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"caddraw/internal/shape"
)

var shapeColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "id", Width: 10},
	{Title: "type", Width: 10},
	{Title: "layer", Width: 12},
	{Title: "flags", Width: 6},
	{Title: "bounds", Width: 36},
}

// refreshAttrsFromCurrent rebuilds the shape table from the current document.
func (m *Model) refreshAttrsFromCurrent() {
	if m.doc == nil || m.doc.Len() == 0 {
		m.showAttrs = false
		m.status = "no shapes in current drawing"
		return
	}
	shapes := m.doc.Shapes()
	rows := make([]table.Row, 0, len(shapes))
	for i, s := range shapes {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			shortID(s.ID()),
			s.Kind().String(),
			s.LayerID(),
			flags(s),
			fmtBounds(s, m.boundsMode),
		})
	}
	// clear rows first so the table never sees rows wider than its columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(shapeColumns)
	m.tbl.SetRows(rows)
}

func flags(s shape.Shape) string {
	var b strings.Builder
	if !s.Visible() {
		b.WriteByte('H')
	}
	if s.Locked() {
		b.WriteByte('L')
	}
	if s.GroupID() != "" {
		b.WriteByte('G')
	}
	return b.String()
}

func fmtBounds(s shape.Shape, mode shape.BoundsMode) string {
	b := s.BoundsWith(mode)
	return fmt.Sprintf("%.1f,%.1f %.1fx%.1f", b.Min.X, b.Min.Y, b.Width(), b.Height())
}

// describe is the inspect popup body for s.
func describe(s shape.Shape, mode shape.BoundsMode) string {
	st := s.Style()
	lines := []string{
		titleStyle.Render(s.Kind().String()),
		fmt.Sprintf("id: %s", s.ID()),
		fmt.Sprintf("layer: %s", s.LayerID()),
	}
	if s.GroupID() != "" {
		lines = append(lines, fmt.Sprintf("group: %s", s.GroupID()))
	}
	switch g := s.Geometry().(type) {
	case shape.Rect:
		lines = append(lines, fmt.Sprintf("rect: x=%g y=%g w=%g h=%g r=%g", g.X, g.Y, g.Width, g.Height, g.CornerRadius))
	case shape.Circle:
		lines = append(lines, fmt.Sprintf("circle: c=(%g, %g) r=%g", g.CX, g.CY, g.Radius))
	}
	lines = append(lines,
		fmt.Sprintf("bounds (%s): %v", mode, s.BoundsWith(mode)),
		fmt.Sprintf("transform: %v", s.Transform()),
		fmt.Sprintf("fill: %s  stroke: %s %g", orNone(st.FillColor), orNone(st.StrokeColor), st.StrokeWidth),
	)
	if f := flags(s); f != "" {
		lines = append(lines, "flags: "+f)
	}
	return strings.Join(lines, "\n")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
