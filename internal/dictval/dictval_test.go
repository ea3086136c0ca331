package dictval

import (
	"encoding/json"
	"testing"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		in      any
		want    float64
		wantErr bool
	}{
		{float64(1.5), 1.5, false},
		{int(3), 3, false},
		{int64(-4), -4, false},
		{uint8(7), 7, false},
		{float32(0.5), 0.5, false},
		{json.Number("12.25"), 12.25, false},
		{"  8 ", 8, false},
		{"abc", 0, true},
		{true, 0, true},
		{nil, 0, true},
		{[]any{1}, 0, true},
	}
	for _, tt := range tests {
		got, err := ToFloat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ToFloat(%#v) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ToFloat(%#v) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestFieldReaders(t *testing.T) {
	m := map[string]any{
		"w":    10,
		"name": "layer",
		"on":   false,
		"null": nil,
		"bad":  "x",
		"sub":  map[any]any{"k": 1},
	}
	if f, err := Float(m, "w"); err != nil || f != 10 {
		t.Errorf("Float = %g, %v", f, err)
	}
	if _, err := Float(m, "missing"); err == nil {
		t.Error("Float(missing) should fail")
	}
	if _, err := Float(m, "bad"); err == nil {
		t.Error("Float(bad) should fail")
	}
	if f, err := FloatOr(m, "null", 2); err != nil || f != 2 {
		t.Errorf("FloatOr(null) = %g, %v", f, err)
	}
	if s, err := String(m, "name"); err != nil || s != "layer" {
		t.Errorf("String = %q, %v", s, err)
	}
	if _, err := String(m, "w"); err == nil {
		t.Error("String(w) should fail")
	}
	if b, err := Bool(m, "on", true); err != nil || b {
		t.Errorf("Bool = %v, %v", b, err)
	}
	if b, err := Bool(m, "missing", true); err != nil || !b {
		t.Errorf("Bool default = %v, %v", b, err)
	}
	sub, err := Map(m, "sub")
	if err != nil || sub["k"] != 1 {
		t.Errorf("Map = %v, %v", sub, err)
	}
}

func TestRows(t *testing.T) {
	rows, err := Rows([]any{[]any{1, 0, 2.5}, []any{0, "1", 3}, []any{0, 0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if rows[0][2] != 2.5 || rows[1][1] != 1 || rows[1][2] != 3 {
		t.Errorf("Rows = %v", rows)
	}
	if _, err := Rows("nope"); err == nil {
		t.Error("Rows(string) should fail")
	}
	if _, err := Rows([]any{[]any{"x"}}); err == nil {
		t.Error("Rows with bad cell should fail")
	}
}
