package style

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", RGB(255, 0, 0), false},
		{"00ff80", RGB(0, 255, 128), false},
		{"#FF804080", Color{R: 255, G: 128, B: 64, A: 128}, false},
		{"#FFF", Color{}, true},
		{"#GG0000", Color{}, true},
		{"#FF0000ZZ", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	c, err := ParseHex("#FF804080")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Hex(true); got != "#ff804080" {
		t.Errorf("Hex(true) = %q", got)
	}
	if got := c.Hex(false); got != "#ff8040" {
		t.Errorf("Hex(false) = %q", got)
	}
	for name, c := range Named {
		back, err := ParseHex(c.Hex(true))
		if err != nil || back != c {
			t.Errorf("%s: round trip %+v -> %+v (%v)", name, c, back, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"green", RGB(0, 255, 0)},
		{"Red", RGB(255, 0, 0)},
		{"transparent", Color{}},
		{"forestgreen", RGB(34, 139, 34)},
		{"#8B4513", RGB(139, 69, 19)},
		{"8b4513", RGB(139, 69, 19)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("nosuchcolor"); err == nil {
		t.Error("unknown name should fail")
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(1, 2, 3)
	d := c.WithAlpha(9)
	if c.A != 255 || d.A != 9 || d.R != 1 {
		t.Errorf("WithAlpha: %+v -> %+v", c, d)
	}
	r, g, b, a := d.RGBA()
	if r != 1 || g != 2 || b != 3 || a != 9 {
		t.Errorf("RGBA = %d %d %d %d", r, g, b, a)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a, b := RGB(255, 0, 0), RGB(0, 0, 255)
	if got := a.Blend(b, 0); got != a {
		t.Errorf("Blend(0) = %+v", got)
	}
	if got := a.Blend(b, 1); got != b {
		t.Errorf("Blend(1) = %+v", got)
	}
}

func TestStyleDict(t *testing.T) {
	s := Default().Filled("#ff0000")
	d := s.ToDict()
	if d["stroke_color"] != nil {
		t.Errorf("unset stroke should be nil, got %v", d["stroke_color"])
	}
	back, err := FromDict(d)
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Errorf("round trip %+v -> %+v", s, back)
	}

	empty, err := FromDict(map[string]any{})
	if err != nil || empty != Default() {
		t.Errorf("FromDict(empty) = %+v, %v", empty, err)
	}

	bad := []map[string]any{
		{"stroke_width": -1},
		{"fill_opacity": 1.5},
		{"stroke_opacity": "x"},
		{"fill_color": 3},
	}
	for _, m := range bad {
		if _, err := FromDict(m); err == nil {
			t.Errorf("FromDict(%v) should fail", m)
		}
	}
}

func TestResolve(t *testing.T) {
	s := Default()
	if got := s.Stroke(Black); got != Black {
		t.Errorf("Stroke default = %+v", got)
	}
	if _, ok := s.Fill(); ok {
		t.Error("Fill should be unset")
	}
	s = s.Stroked("blue", 2).Filled("yellow")
	if got := s.Stroke(Black); got != RGB(0, 0, 255) {
		t.Errorf("Stroke = %+v", got)
	}
	if c, ok := s.Fill(); !ok || c != RGB(255, 255, 0) {
		t.Errorf("Fill = %+v, %v", c, ok)
	}
}
