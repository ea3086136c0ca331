package document

import (
	"fmt"

	"caddraw/internal/caderr"
	"caddraw/internal/dictval"
	"caddraw/internal/shape"
)

// FormatVersion is written to every serialized document.
const FormatVersion = "1.0"

func (d *Document) ToDict() map[string]any {
	shapes := make([]any, len(d.shapes))
	for i, s := range d.shapes {
		shapes[i] = s.ToDict()
	}
	return map[string]any{
		"version": FormatVersion,
		"canvas": map[string]any{
			"width":  d.CanvasWidth,
			"height": d.CanvasHeight,
			"units":  string(d.Units),
		},
		"shapes": shapes,
	}
}

// FromDict decodes with the default shape factory.
func FromDict(m map[string]any) (*Document, error) {
	return FromDictWith(m, shape.DefaultFactory())
}

// FromDictWith decodes a document, delegating shapes to f. Failures are
// *caderr.SerializationError; a shape failure also unwraps to its
// *caderr.ValidationError.
func FromDictWith(m map[string]any, f *shape.Factory) (*Document, error) {
	fail := func(err error) (*Document, error) {
		return nil, &caderr.SerializationError{Op: "deserialize", Format: "dict", Entity: "document", Err: err}
	}

	if v, err := dictval.String(m, "version"); err != nil {
		return fail(err)
	} else if v != "" && v != FormatVersion {
		return fail(fmt.Errorf("unsupported version %q", v))
	}

	doc := New()
	canvas, err := dictval.Map(m, "canvas")
	if err != nil {
		return fail(fmt.Errorf("canvas: %w", err))
	}
	if canvas != nil {
		if doc.CanvasWidth, err = dictval.FloatOr(canvas, "width", DefaultCanvasWidth); err != nil {
			return fail(fmt.Errorf("canvas: %w", err))
		}
		if doc.CanvasHeight, err = dictval.FloatOr(canvas, "height", DefaultCanvasHeight); err != nil {
			return fail(fmt.Errorf("canvas: %w", err))
		}
		u, err := dictval.String(canvas, "units")
		if err != nil {
			return fail(fmt.Errorf("canvas: %w", err))
		}
		if doc.Units, err = ParseUnits(u); err != nil {
			return fail(fmt.Errorf("canvas: %w", err))
		}
	}
	if err := checkCanvas(doc.CanvasWidth, doc.CanvasHeight); err != nil {
		return fail(err)
	}

	raw, ok := m["shapes"]
	if !ok || raw == nil {
		return doc, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return fail(fmt.Errorf("shapes: %v (%T) is not a list", raw, raw))
	}
	for i, item := range list {
		sd, err := dictval.AsMap(item)
		if err != nil {
			return fail(fmt.Errorf("shape %d: %w", i, err))
		}
		s, err := f.FromDict(sd)
		if err != nil {
			return fail(fmt.Errorf("shape %d: %w", i, err))
		}
		if err := doc.AddShape(s); err != nil {
			return fail(fmt.Errorf("shape %d: %w", i, err))
		}
	}
	return doc, nil
}
