package shape

import (
	"fmt"
	"maps"

	"caddraw/internal/caderr"
	"caddraw/internal/dictval"
	"caddraw/internal/geom"
	"caddraw/internal/style"
)

// Dict is the plain-map form of a shape, as decoded from JSON or YAML.
type Dict = map[string]any

// ToDict flattens the envelope and the geometry fields into one map.
// The zero Shape yields nil.
func (s Shape) ToDict() Dict {
	if s.geometry == nil {
		return nil
	}
	var group any
	if s.groupID != "" {
		group = s.groupID
	}
	d := Dict{
		"id":        s.id,
		"type":      s.Kind().String(),
		"layer_id":  s.layerID,
		"group_id":  group,
		"visible":   s.visible,
		"locked":    s.locked,
		"style":     s.style.ToDict(),
		"transform": s.transform.Rows(),
		"metadata":  maps.Clone(s.metadata),
	}
	switch g := s.geometry.(type) {
	case Rect:
		d["x"] = g.X
		d["y"] = g.Y
		d["width"] = g.Width
		d["height"] = g.Height
		d["corner_radius"] = g.CornerRadius
	case Circle:
		d["cx"] = g.CX
		d["cy"] = g.CY
		d["radius"] = g.Radius
	default:
		panic(fmt.Sprintf("shape: unhandled geometry %T", g))
	}
	return d
}

// number reads a required geometry field.
func number(d Dict, kind Kind, id, key string) (float64, error) {
	f, err := dictval.Float(d, key)
	if err != nil {
		return 0, &caderr.ValidationError{
			ShapeKind: kind.String(),
			Field:     key,
			ShapeID:   id,
			Message:   fmt.Sprintf("invalid %s data: %v", kindNoun(kind), err),
			Err:       err,
		}
	}
	return f, nil
}

func kindNoun(k Kind) string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	}
	return "shape"
}

// DecodeRect reads x, y, width, height and the optional corner_radius.
func DecodeRect(d Dict, id string) (Geometry, error) {
	var r Rect
	var err error
	if r.X, err = number(d, KindRectangle, id, "x"); err != nil {
		return nil, err
	}
	if r.Y, err = number(d, KindRectangle, id, "y"); err != nil {
		return nil, err
	}
	if r.Width, err = number(d, KindRectangle, id, "width"); err != nil {
		return nil, err
	}
	if r.Height, err = number(d, KindRectangle, id, "height"); err != nil {
		return nil, err
	}
	if v, ok := d["corner_radius"]; ok && v != nil {
		if r.CornerRadius, err = number(d, KindRectangle, id, "corner_radius"); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DecodeCircle reads cx, cy and radius.
func DecodeCircle(d Dict, id string) (Geometry, error) {
	var c Circle
	var err error
	if c.CX, err = number(d, KindCircle, id, "cx"); err != nil {
		return nil, err
	}
	if c.CY, err = number(d, KindCircle, id, "cy"); err != nil {
		return nil, err
	}
	if c.Radius, err = number(d, KindCircle, id, "radius"); err != nil {
		return nil, err
	}
	return c, nil
}

// envelope decodes the attributes shared by every kind into options. The
// layer id is returned separately because New takes it positionally.
func envelope(d Dict, kind Kind, id string) (string, []Option, error) {
	fail := func(field string, err error) (string, []Option, error) {
		return "", nil, &caderr.ValidationError{
			ShapeKind: kind.String(),
			Field:     field,
			ShapeID:   id,
			Message:   fmt.Sprintf("invalid %s: %v", field, err),
			Err:       err,
		}
	}

	layer, err := dictval.String(d, "layer_id")
	if err != nil {
		return fail("layer_id", err)
	}
	group, err := dictval.String(d, "group_id")
	if err != nil {
		return fail("group_id", err)
	}
	visible, err := dictval.Bool(d, "visible", true)
	if err != nil {
		return fail("visible", err)
	}
	locked, err := dictval.Bool(d, "locked", false)
	if err != nil {
		return fail("locked", err)
	}
	md, err := dictval.Map(d, "metadata")
	if err != nil {
		return fail("metadata", err)
	}

	st := style.Default()
	sd, err := dictval.Map(d, "style")
	if err != nil {
		return fail("style", err)
	}
	if sd != nil {
		if st, err = style.FromDict(sd); err != nil {
			return fail("style", err)
		}
	}

	t := geom.Identity()
	if raw, ok := d["transform"]; ok && raw != nil {
		rows, err := dictval.Rows(raw)
		if err != nil {
			return fail("transform", err)
		}
		if t, err = geom.FromRows(rows); err != nil {
			return fail("transform", err)
		}
	}

	opts := []Option{
		WithID(id),
		WithGroup(group),
		WithVisible(visible),
		WithLocked(locked),
		WithStyle(st),
		WithInitialTransform(t),
		WithMetadata(md),
	}
	return layer, opts, nil
}
