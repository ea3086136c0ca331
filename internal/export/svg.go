// Package export renders documents to SVG and PNG.
package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"caddraw/internal/document"
	"caddraw/internal/geom"
	"caddraw/internal/shape"
	"caddraw/internal/style"
)

// DefaultDecimals is the number precision of emitted SVG.
const DefaultDecimals = 3

type SVGOptions struct {
	Title        string
	GroupByLayer bool
	Decimals     int // places after the point; negative means DefaultDecimals
}

// DefaultSVGOptions rounds to DefaultDecimals and does not group.
func DefaultSVGOptions() SVGOptions { return SVGOptions{Decimals: DefaultDecimals} }

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}

type svgWriter struct {
	canvas   *svg.SVG
	w        io.Writer
	decimals int
}

// SVG writes doc as a standalone SVG 1.1 document. Invisible shapes are
// omitted; shapes keep document order.
func SVG(w io.Writer, doc *document.Document, opts SVGOptions) error {
	dec := opts.Decimals
	if dec < 0 {
		dec = DefaultDecimals
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = dec
	sw := &svgWriter{canvas: canvas, w: ew, decimals: dec}

	canvas.Start(doc.CanvasWidth, doc.CanvasHeight,
		fmt.Sprintf(`viewBox="0 0 %s %s"`, sw.num(doc.CanvasWidth), sw.num(doc.CanvasHeight)),
		`version="1.1"`)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	shapes := doc.Shapes()
	if opts.GroupByLayer {
		for _, layer := range doc.Layers() {
			fmt.Fprintf(ew, "<g id=\"%s\">\n", escapeAttr(layer))
			for _, s := range shapes {
				if s.LayerID() == layer {
					sw.shape(s)
				}
			}
			canvas.Gend()
		}
	} else {
		for _, s := range shapes {
			sw.shape(s)
		}
	}
	canvas.End()
	return ew.err
}

// SVGString is SVG into a string.
func SVGString(doc *document.Document, opts SVGOptions) (string, error) {
	var buf bytes.Buffer
	if err := SVG(&buf, doc, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (sw *svgWriter) shape(s shape.Shape) {
	if !s.Visible() {
		return
	}
	var name string
	var attrs []string
	switch g := s.Geometry().(type) {
	case shape.Rect:
		name = "rect"
		attrs = append(attrs,
			sw.attr("x", g.X), sw.attr("y", g.Y),
			sw.attr("width", g.Width), sw.attr("height", g.Height))
		if g.CornerRadius > 0 {
			attrs = append(attrs, sw.attr("rx", g.CornerRadius), sw.attr("ry", g.CornerRadius))
		}
	case shape.Circle:
		name = "circle"
		attrs = append(attrs, sw.attr("cx", g.CX), sw.attr("cy", g.CY), sw.attr("r", g.Radius))
	default:
		// no SVG mapping for this kind
		return
	}
	attrs = append(attrs, `style="`+escapeAttr(StyleString(s.Style(), sw.decimals))+`"`)
	if t := s.Transform(); !t.IsIdentity() {
		attrs = append(attrs, sw.transformAttr(t))
	}
	fmt.Fprintf(sw.w, "<%s %s />\n", name, strings.Join(attrs, " "))
}

func (sw *svgWriter) attr(name string, v float64) string {
	return name + `="` + sw.num(v) + `"`
}

func (sw *svgWriter) transformAttr(t geom.Transform) string {
	m := t.SVGMatrix()
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = sw.num(v)
	}
	return `transform="matrix(` + strings.Join(parts, ",") + `)"`
}

func (sw *svgWriter) num(v float64) string { return formatNumber(v, sw.decimals) }

// formatNumber rounds to dec places and drops trailing zeros and negative zero.
func formatNumber(v float64, dec int) string {
	p := math.Pow(10, float64(dec))
	r := math.Round(v*p) / p
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// escapeAttr makes s safe inside a double-quoted attribute.
func escapeAttr(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

// StyleString renders a style as an SVG style attribute value.
func StyleString(st style.Style, dec int) string {
	var parts []string
	if st.FillColor != "" {
		parts = append(parts, "fill:"+st.FillColor)
		if st.FillOpacity < 1 {
			parts = append(parts, "fill-opacity:"+formatNumber(st.FillOpacity, dec))
		}
	} else {
		parts = append(parts, "fill:none")
	}
	if st.StrokeColor != "" {
		parts = append(parts,
			"stroke:"+st.StrokeColor,
			"stroke-width:"+formatNumber(st.StrokeWidth, dec))
		if st.StrokeOpacity < 1 {
			parts = append(parts, "stroke-opacity:"+formatNumber(st.StrokeOpacity, dec))
		}
	}
	return strings.Join(parts, ";")
}
