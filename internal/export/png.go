package export

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"caddraw/internal/document"
	"caddraw/internal/style"
)

// MaxRasterSide caps either dimension of a rendered image.
const MaxRasterSide = 16384

type PNGOptions struct {
	Scale      float64 // pixels per canvas unit; 0 means 1
	Background style.Color
}

// Render rasterizes doc by drawing its SVG form.
func Render(doc *document.Document, opts PNGOptions) (*image.RGBA, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(doc.CanvasWidth * scale))
	h := int(math.Ceil(doc.CanvasHeight * scale))
	if w > MaxRasterSide || h > MaxRasterSide {
		return nil, fmt.Errorf("raster %dx%d exceeds %d pixels per side", w, h, MaxRasterSide)
	}

	var buf bytes.Buffer
	if err := SVG(&buf, doc, SVGOptions{Decimals: 6}); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background.Std()), image.Point{}, draw.Src)
	}
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// PNG renders doc and encodes it.
func PNG(out io.Writer, doc *document.Document, opts PNGOptions) error {
	img, err := Render(doc, opts)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}
