package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"caddraw/internal/caderr"
	"caddraw/internal/geom"
	"caddraw/internal/shape"
	"caddraw/internal/style"
)

func rect(t *testing.T, layer string, r shape.Rect, opts ...shape.Option) shape.Shape {
	t.Helper()
	s, err := shape.NewRectangle(r, layer, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func circle(t *testing.T, layer string, c shape.Circle, opts ...shape.Option) shape.Shape {
	t.Helper()
	s, err := shape.NewCircle(c, layer, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func sampleDoc(t *testing.T) *Document {
	t.Helper()
	d := New()
	for _, s := range []shape.Shape{
		rect(t, "walls", shape.Rect{X: 10, Y: 20, Width: 100, Height: 50}, shape.WithID("r1"),
			shape.WithStyle(style.Default().Filled("#ff0000"))),
		circle(t, "decor", shape.Circle{CX: 200, CY: 100, Radius: 10}, shape.WithID("c1"),
			shape.WithInitialTransform(geom.ScaleAbout(2, 1, geom.Pt(200, 100)))),
		rect(t, "walls", shape.Rect{X: 0, Y: 0, Width: 5, Height: 5}, shape.WithID("hidden"),
			shape.WithVisible(false), shape.WithLocked(true)),
	} {
		if err := d.AddShape(s); err != nil {
			t.Fatal(err)
		}
	}
	return d
}

func TestNewWithCanvas(t *testing.T) {
	d, err := NewWithCanvas(1000, 800, "")
	if err != nil {
		t.Fatal(err)
	}
	if d.Units != Pixels {
		t.Errorf("Units = %q", d.Units)
	}
	for _, size := range [][2]float64{{0, 10}, {10, 100001}, {-1, -1}} {
		_, err := NewWithCanvas(size[0], size[1], Pixels)
		var de *caderr.DocumentError
		if !errors.As(err, &de) {
			t.Errorf("NewWithCanvas(%v) err = %v, want DocumentError", size, err)
		}
	}
}

func TestShapeOperations(t *testing.T) {
	d := sampleDoc(t)
	if d.Len() != 3 {
		t.Fatalf("Len = %d", d.Len())
	}

	dup := rect(t, "x", shape.Rect{Width: 1, Height: 1}, shape.WithID("r1"))
	if err := d.AddShape(dup); err == nil {
		t.Error("duplicate id should be rejected")
	}
	if err := d.AddShape(shape.Shape{}); err == nil {
		t.Error("zero shape should be rejected")
	}

	list := d.Shapes()
	list[0] = dup
	if s, _ := d.Shape("r1"); s.LayerID() != "walls" {
		t.Error("Shapes() returned an aliased slice")
	}

	if got := d.Layers(); len(got) != 2 || got[0] != "walls" || got[1] != "decor" {
		t.Errorf("Layers = %v", got)
	}
	if got := d.ShapesOnLayer("walls"); len(got) != 2 {
		t.Errorf("ShapesOnLayer = %d shapes", len(got))
	}
	counts := d.CountByKind()
	if counts[shape.KindRectangle] != 2 || counts[shape.KindCircle] != 1 {
		t.Errorf("CountByKind = %v", counts)
	}

	if err := d.RemoveShape("c1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Shape("c1"); ok || d.Len() != 2 {
		t.Error("RemoveShape did not remove")
	}
	var de *caderr.DocumentError
	if err := d.RemoveShape("c1"); !errors.As(err, &de) {
		t.Errorf("second remove err = %v", err)
	}
}

func TestReplaceKeepsOrder(t *testing.T) {
	d := sampleDoc(t)
	s, _ := d.Shape("c1")
	if err := d.ReplaceShape(s.WithTransform(geom.Translation(1, 1))); err != nil {
		t.Fatal(err)
	}
	if d.Shapes()[1].ID() != "c1" {
		t.Error("replaced shape moved")
	}
	if err := d.ReplaceShape(circle(t, "l", shape.Circle{Radius: 1})); err == nil {
		t.Error("replacing an unknown id should fail")
	}
}

func TestDocumentBounds(t *testing.T) {
	d := sampleDoc(t)
	b, ok := d.Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	// circle stretched 2x about its centre spans 180..220; hidden shape ignored
	want := geom.Bounds{Min: geom.Pt(10, 20), Max: geom.Pt(220, 110)}
	if b != want {
		t.Errorf("Bounds = %v, want %v", b, want)
	}

	if _, ok := New().Bounds(); ok {
		t.Error("empty document should have no bounds")
	}
}

func TestTransform(t *testing.T) {
	d := sampleDoc(t)
	before, _ := d.Shape("r1")
	if err := d.TransformShape("r1", geom.Translation(5, 0)); err != nil {
		t.Fatal(err)
	}
	after, _ := d.Shape("r1")
	if after.Bounds().Min.X != before.Bounds().Min.X+5 {
		t.Errorf("TransformShape: %v -> %v", before.Bounds(), after.Bounds())
	}
	if !before.Transform().IsIdentity() {
		t.Error("earlier reference changed")
	}

	var de *caderr.DocumentError
	if err := d.TransformShape("hidden", geom.Scale(2)); !errors.As(err, &de) {
		t.Errorf("locked shape err = %v", err)
	}
	if err := d.TransformShape("nope", geom.Scale(2)); !errors.As(err, &de) {
		t.Errorf("unknown shape err = %v", err)
	}
	if n := d.TransformAll(geom.Scale(2)); n != 2 {
		t.Errorf("TransformAll moved %d shapes, want 2", n)
	}
}

func TestDictRoundTrip(t *testing.T) {
	d := sampleDoc(t)
	d.Units = Millimeters
	back, err := FromDict(d.ToDict())
	if err != nil {
		t.Fatal(err)
	}
	assertSameDoc(t, back, d)
}

func assertSameDoc(t *testing.T, got, want *Document) {
	t.Helper()
	if got.CanvasWidth != want.CanvasWidth || got.CanvasHeight != want.CanvasHeight || got.Units != want.Units {
		t.Errorf("canvas %gx%g %s, want %gx%g %s", got.CanvasWidth, got.CanvasHeight, got.Units,
			want.CanvasWidth, want.CanvasHeight, want.Units)
	}
	gs, ws := got.Shapes(), want.Shapes()
	if len(gs) != len(ws) {
		t.Fatalf("%d shapes, want %d", len(gs), len(ws))
	}
	for i := range ws {
		if !gs[i].Equal(ws[i]) {
			t.Errorf("shape %d:\n got %+v\nwant %+v", i, gs[i], ws[i])
		}
	}
}

func TestFromDictErrors(t *testing.T) {
	tests := []struct {
		name      string
		m         map[string]any
		wantShape bool
	}{
		{"bad version", map[string]any{"version": "9"}, false},
		{"bad canvas", map[string]any{"canvas": map[string]any{"width": 0}}, false},
		{"bad units", map[string]any{"canvas": map[string]any{"units": "furlong"}}, false},
		{"shapes not list", map[string]any{"shapes": "x"}, false},
		{"bad shape", map[string]any{"shapes": []any{map[string]any{"type": "CIRCLE", "layer_id": "l", "cx": 0, "cy": 0, "radius": -1}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDict(tt.m)
			var se *caderr.SerializationError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v, want SerializationError", err)
			}
			var ve *caderr.ValidationError
			if got := errors.As(err, &ve); got != tt.wantShape {
				t.Errorf("ValidationError reachable = %v, want %v", got, tt.wantShape)
			}
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := sampleDoc(t)
	for _, name := range []string{"doc.json", "doc.cad", "doc.yaml", "doc.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, d); err != nil {
				t.Fatal(err)
			}
			back, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			assertSameDoc(t, back, d)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{bad, filepath.Join(dir, "missing.json"), filepath.Join(dir, "doc.txt")} {
		_, err := Load(path)
		var se *caderr.SerializationError
		if !errors.As(err, &se) {
			t.Errorf("Load(%s) err = %v, want SerializationError", path, err)
		}
	}
	if err := Save(filepath.Join(dir, "out.svg"), New()); err == nil {
		t.Error("Save with unknown extension should fail")
	}
}

func TestDecodeYAMLLiteral(t *testing.T) {
	src := `
version: "1.0"
canvas: {width: 200, height: 100, units: mm}
shapes:
  - type: RECTANGLE
    id: a
    layer_id: base
    x: 1
    y: 2
    width: 3
    height: 4
    transform:
      - [1, 0, 10]
      - [0, 1, 0]
      - [0, 0, 1]
  - type: circle
    layer_id: base
    cx: 0
    cy: 0
    radius: 2.5
    style: {fill_color: green}
`
	d, err := Decode(bytes.NewBufferString(src), YAML)
	if err != nil {
		t.Fatal(err)
	}
	if d.CanvasWidth != 200 || d.Units != Millimeters || d.Len() != 2 {
		t.Fatalf("decoded %+v", d)
	}
	a, _ := d.Shape("a")
	if got := a.Bounds().Min; got != geom.Pt(11, 2) {
		t.Errorf("translated min = %v", got)
	}
	if c := d.Shapes()[1]; c.Style().FillColor != "green" {
		t.Errorf("circle style = %+v", c.Style())
	}
}

func TestHouse(t *testing.T) {
	d, err := House()
	if err != nil {
		t.Fatal(err)
	}
	if d.CanvasWidth != 1000 || d.CanvasHeight != 800 {
		t.Errorf("canvas %gx%g", d.CanvasWidth, d.CanvasHeight)
	}
	layers := d.Layers()
	for _, want := range []string{"ground", "house", "nature", "sky"} {
		found := false
		for _, l := range layers {
			found = found || l == want
		}
		if !found {
			t.Errorf("layer %q missing from %v", want, layers)
		}
	}
	walls := geom.Bounds{Min: geom.Pt(300, 300), Max: geom.Pt(700, 600)}
	door := geom.Bounds{Min: geom.Pt(450, 450), Max: geom.Pt(550, 600)}
	for _, s := range d.Shapes() {
		if s.Style().StrokeColor != "#8b0000" {
			continue
		}
		b := s.Bounds()
		if !walls.ContainsPoint(b.Min) || !walls.ContainsPoint(b.Max) {
			t.Errorf("brick %v outside walls", b)
		}
		if b.Min.X < door.Max.X && b.Max.X > door.Min.X && b.Min.Y > door.Min.Y {
			t.Errorf("brick %v overlaps door", b)
		}
	}
	b, ok := d.Bounds()
	if !ok || !d.Canvas().ContainsPoint(b.Min) || !d.Canvas().ContainsPoint(b.Max) {
		t.Errorf("drawing bounds %v exceed canvas", b)
	}
}
