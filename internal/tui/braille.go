package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a canvas of braille cells, each holding a 2x4 micro-pixel
// grid and the colour of the last pen that touched it.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	c    [][]string
	pen  string

	marks map[[2]int]rune
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// dot bits indexed by [column][row] within a cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	if b.pen != "" {
		b.c[cy][cx] = b.pen
	}
}

// mark replaces a whole cell with r drawn in col.
func (b *brailleBuf) mark(cx, cy int, r rune, col string) {
	if cx < 0 || cy < 0 || cx >= b.w || cy >= b.h {
		return
	}
	if b.marks == nil {
		b.marks = map[[2]int]rune{}
	}
	b.marks[[2]int{cx, cy}] = r
	b.c[cy][cx] = col
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillRing paints the interior of a closed micro-grid ring, even-odd rule.
func (b *brailleBuf) fillRing(ring [][2]int) {
	if len(ring) < 3 {
		return
	}
	lo, hi := ring[0][1], ring[0][1]
	for _, p := range ring {
		lo, hi = min(lo, p[1]), max(hi, p[1])
	}
	lo, hi = max(lo, 0), min(hi, b.h*4-1)
	for yMic := lo; yMic <= hi; yMic++ {
		var xs []int
		for i := range ring {
			a := ring[i]
			c := ring[(i+1)%len(ring)]
			if a[1] == c[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], c[1]
			x0, x1 := a[0], c[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		sortInts(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= min(xs[i+1], b.w*2-1); xMic++ {
				b.setPixel(xMic, yMic)
			}
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if r, ok := b.marks[[2]int{x, y}]; ok {
				row[x] = r
			} else if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// toStyledLines is toLines with each run of same-coloured cells wrapped in a
// lipgloss foreground style.
func (b *brailleBuf) toStyledLines() []string {
	plain := b.toLines()
	out := make([]string, b.h)
	for y, line := range plain {
		runes := []rune(line)
		var sb strings.Builder
		start := 0
		for x := 1; x <= len(runes); x++ {
			if x < len(runes) && b.c[y][x] == b.c[y][start] {
				continue
			}
			seg := string(runes[start:x])
			if col := b.c[y][start]; col != "" && strings.TrimSpace(seg) != "" {
				seg = lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(seg)
			}
			sb.WriteString(seg)
			start = x
		}
		out[y] = sb.String()
	}
	return out
}
