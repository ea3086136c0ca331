// Package config loads caddraw settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"caddraw/internal/document"
	"caddraw/internal/export"
	"caddraw/internal/shape"
)

type Config struct {
	Canvas       Canvas `toml:"canvas"`
	DefaultLayer string `toml:"default_layer"`
	SVG          SVG    `toml:"svg"`
	Bounds       Bounds `toml:"bounds"`
	Viewer       Viewer `toml:"viewer"`
}

type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Units  string  `toml:"units"`
}

type SVG struct {
	Decimals     int    `toml:"decimals"`
	GroupByLayer bool   `toml:"group_by_layer"`
	Title        string `toml:"title"`
}

type Bounds struct {
	// Circle is "exact" or "cardinal".
	Circle string `toml:"circle"`
}

type Viewer struct {
	MaxZoom      float64 `toml:"max_zoom"`
	ZoomStep     float64 `toml:"zoom_step"`
	FillShapes   bool    `toml:"fill_shapes"`
	CurveSegment int     `toml:"curve_segments"`
}

func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  document.DefaultCanvasWidth,
			Height: document.DefaultCanvasHeight,
			Units:  string(document.Pixels),
		},
		DefaultLayer: "default",
		SVG:          SVG{Decimals: export.DefaultDecimals},
		Bounds:       Bounds{Circle: shape.BoundsExact.String()},
		Viewer: Viewer{
			MaxZoom:      64,
			ZoomStep:     1.25,
			CurveSegment: 48,
		},
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath is config.toml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "caddraw", "config.toml"), nil
}

// LoadDefault loads DefaultPath when it exists and falls back to Default.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	if c.Canvas.Width < document.MinCanvasSize || c.Canvas.Width > document.MaxCanvasSize ||
		c.Canvas.Height < document.MinCanvasSize || c.Canvas.Height > document.MaxCanvasSize {
		return fmt.Errorf("canvas %gx%g outside [%g, %g]", c.Canvas.Width, c.Canvas.Height,
			document.MinCanvasSize, document.MaxCanvasSize)
	}
	if _, err := document.ParseUnits(c.Canvas.Units); err != nil {
		return err
	}
	if c.DefaultLayer == "" {
		return errors.New("default_layer cannot be empty")
	}
	if c.SVG.Decimals < 0 || c.SVG.Decimals > 12 {
		return fmt.Errorf("svg.decimals must be within [0, 12], got %d", c.SVG.Decimals)
	}
	if _, err := shape.ParseBoundsMode(c.Bounds.Circle); err != nil {
		return err
	}
	if c.Viewer.MaxZoom < 1 {
		return fmt.Errorf("viewer.max_zoom must be at least 1, got %g", c.Viewer.MaxZoom)
	}
	if c.Viewer.ZoomStep <= 1 {
		return fmt.Errorf("viewer.zoom_step must exceed 1, got %g", c.Viewer.ZoomStep)
	}
	if c.Viewer.CurveSegment < 8 {
		return fmt.Errorf("viewer.curve_segments must be at least 8, got %d", c.Viewer.CurveSegment)
	}
	return nil
}

// BoundsMode is the parsed circle bounds setting.
func (c Config) BoundsMode() shape.BoundsMode {
	m, _ := shape.ParseBoundsMode(c.Bounds.Circle)
	return m
}

// NewDocument returns an empty document with the configured canvas.
func (c Config) NewDocument() (*document.Document, error) {
	u, err := document.ParseUnits(c.Canvas.Units)
	if err != nil {
		return nil, err
	}
	return document.NewWithCanvas(c.Canvas.Width, c.Canvas.Height, u)
}

// SVGOptions maps the svg section onto exporter options.
func (c Config) SVGOptions() export.SVGOptions {
	return export.SVGOptions{
		Title:        c.SVG.Title,
		GroupByLayer: c.SVG.GroupByLayer,
		Decimals:     c.SVG.Decimals,
	}
}
