package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"caddraw/internal/document"
	"caddraw/internal/shape"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.BoundsMode() != shape.BoundsExact {
		t.Errorf("default bounds mode = %v", cfg.BoundsMode())
	}
	d, err := cfg.NewDocument()
	if err != nil {
		t.Fatal(err)
	}
	if d.CanvasWidth != 800 || d.CanvasHeight != 600 || d.Units != document.Pixels {
		t.Errorf("document canvas %gx%g %s", d.CanvasWidth, d.CanvasHeight, d.Units)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
default_layer = "sketch"

[canvas]
width = 297
height = 210
units = "mm"

[svg]
decimals = 2
group_by_layer = true

[bounds]
circle = "cardinal"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 297 || cfg.Canvas.Units != "mm" || cfg.DefaultLayer != "sketch" {
		t.Errorf("loaded %+v", cfg)
	}
	if cfg.BoundsMode() != shape.BoundsCardinal {
		t.Errorf("bounds mode = %v", cfg.BoundsMode())
	}
	opts := cfg.SVGOptions()
	if opts.Decimals != 2 || !opts.GroupByLayer {
		t.Errorf("svg options = %+v", opts)
	}
	// untouched sections keep their defaults
	if cfg.Viewer.MaxZoom != Default().Viewer.MaxZoom {
		t.Errorf("viewer defaults lost: %+v", cfg.Viewer)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "default_layer = ", "config"},
		{"unknown key", "colour = \"red\"\n", "unknown keys colour"},
		{"bad canvas", "[canvas]\nwidth = 0\n", "canvas"},
		{"bad units", "[canvas]\nunits = \"ft\"\n", "units"},
		{"bad mode", "[bounds]\ncircle = \"loose\"\n", "bounds mode"},
		{"bad zoom", "[viewer]\nzoom_step = 1\n", "zoom_step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing explicit file should fail")
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("LoadDefault = %+v", cfg)
	}
}
